package service

import (
	"github.com/xieyx/turn-based-battle/internal/engine"
	"github.com/xieyx/turn-based-battle/internal/game"
)

// TickPreparation drives one wall-clock tick into a battle's preparation
// countdown. When the countdown is exhausted the round is run
// automatically, which matches the engine's auto-advance notice. The
// second return value reports whether the round was run.
func TickPreparation(repo BattleRepo, battleID uint) (*game.Battle, bool, error) {
	b, err := getBattle(repo, battleID)
	if err != nil {
		return nil, false, err
	}
	if b.IsGameOver || b.Phase != game.PhasePreparation {
		return b, false, nil
	}

	nb, err := engine.DecreasePreparationTimer(b)
	if err != nil {
		return nil, false, err
	}

	advanced := false
	if nb.PreparationLeft == 0 {
		nb, err = engine.StartBattlePhase(nb)
		if err != nil {
			return nil, false, err
		}
		recordOutcome(repo, nb)
		advanced = true
	}

	if err := repo.UpdateBattle(nb); err != nil {
		return nil, advanced, err
	}
	return nb, advanced, nil
}
