package storage

import "github.com/xieyx/turn-based-battle/internal/game"

type Repository interface {
	CreateBattle(b *game.Battle) error
	GetBattleByID(id uint) (*game.Battle, error)
	FindBattleByCode(code string) (*game.Battle, error)
	// ListRecentBattles returns the newest battles first, capped at limit.
	ListRecentBattles(limit int) ([]game.Battle, error)
	UpdateBattle(b *game.Battle) error
	// ReplaceBattle persists a battle whose child entities were rebuilt
	// from scratch (reset): stale character/item/log rows are removed
	// before the new ones are written.
	ReplaceBattle(b *game.Battle) error
	// FindPreparationBattles returns the battles the preparation scanner
	// should tick: still running and currently in the preparation phase.
	FindPreparationBattles() ([]game.Battle, error)
	// UpdateStatsOnBattleEnd upserts the player's aggregate record for a
	// finished battle.
	UpdateStatsOnBattleEnd(b *game.Battle) error
	GetTopPlayers(limit int) ([]game.PlayerRecord, error)
}
