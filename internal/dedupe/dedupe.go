// Package dedupe provides the shared singleflight group used to coalesce
// concurrent reads of the same battle. Watch clients tend to refetch in
// bursts right after a snapshot; a centralized singleflight.Group keeps
// one database load in flight per battle code while other callers wait
// for its result.
package dedupe

import "golang.org/x/sync/singleflight"

// BattleReadGroup deduplicates battle lookups keyed by battle code.
var BattleReadGroup singleflight.Group
