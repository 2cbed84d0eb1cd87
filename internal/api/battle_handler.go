package api

import (
	"encoding/json"

	"github.com/xieyx/turn-based-battle/internal/config"
	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/game"
	"github.com/xieyx/turn-based-battle/internal/live"
	"github.com/xieyx/turn-based-battle/internal/logging"
	"github.com/xieyx/turn-based-battle/internal/storage"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo storage.Repository
	cfg  *config.LoadedConfig
	feed *live.Broadcaster
}

// NewBattleHandler creates a new BattleHandler with the given repository,
// loaded configuration and live feed.
func NewBattleHandler(repo storage.Repository, cfg *config.LoadedConfig, feed *live.Broadcaster) *BattleHandler {
	return &BattleHandler{repo: repo, cfg: cfg, feed: feed}
}

// publishSnapshot pushes the battle's current state to its watchers.
// Failures only cost watchers a snapshot, so they are logged, not surfaced.
func (h *BattleHandler) publishSnapshot(b *game.Battle) {
	if h.feed == nil || b == nil {
		return
	}
	payload, err := json.Marshal(b)
	if err != nil {
		logging.Error("failed to marshal battle snapshot", err, logging.Fields{constants.LogFieldBattleCode: b.Code})
		return
	}
	h.feed.Publish(b.Code, payload)
}
