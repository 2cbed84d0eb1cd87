// Package ids generates the stable entity identifiers used to reference
// characters, soldier stacks and items across rounds and API payloads.
// The prefix makes ids self-describing in logs and damage records.
package ids

import "github.com/google/uuid"

// NewCharacterID returns a fresh character entity id.
func NewCharacterID() string { return "chr_" + uuid.NewString() }

// NewSoldierStackID returns a fresh soldier-stack entity id.
func NewSoldierStackID() string { return "stk_" + uuid.NewString() }

// NewItemID returns a fresh item entity id.
func NewItemID() string { return "itm_" + uuid.NewString() }
