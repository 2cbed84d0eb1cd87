package service

import (
	"errors"

	"github.com/xieyx/turn-based-battle/internal/game"
)

var ErrBattleNotFound = errors.New("battle not found")

// BattleRepo is the narrow persistence surface the use-case functions
// need. storage.Repository satisfies it; tests provide hand-rolled mocks.
type BattleRepo interface {
	CreateBattle(*game.Battle) error
	GetBattleByID(uint) (*game.Battle, error)
	FindBattleByCode(string) (*game.Battle, error)
	UpdateBattle(*game.Battle) error
	ReplaceBattle(*game.Battle) error
	UpdateStatsOnBattleEnd(*game.Battle) error
}

// getBattle loads a battle or maps any lookup failure onto the
// service-level not-found sentinel.
func getBattle(repo BattleRepo, battleID uint) (*game.Battle, error) {
	b, err := repo.GetBattleByID(battleID)
	if err != nil || b == nil {
		return nil, ErrBattleNotFound
	}
	return b, nil
}

// recordOutcome tallies the player's aggregate stats exactly once per
// finished battle.
func recordOutcome(repo BattleRepo, b *game.Battle) {
	if !b.IsGameOver || b.StatsCounted {
		return
	}
	_ = repo.UpdateStatsOnBattleEnd(b)
	b.StatsCounted = true
}
