package service

import (
	"github.com/xieyx/turn-based-battle/internal/engine"
	"github.com/xieyx/turn-based-battle/internal/game"
)

// Fight translates the player's fight intent into a full round: enter
// the battle, mark the preparation action as taken and run the battle
// phase through resolution. The returned battle is either back in
// preparation for the next round or terminal.
func Fight(repo BattleRepo, battleID uint) (*game.Battle, error) {
	b, err := getBattle(repo, battleID)
	if err != nil {
		return nil, err
	}

	nb, err := engine.EnterBattle(b)
	if err != nil {
		return nil, err
	}
	nb, err = engine.MarkPreparationActionTaken(nb)
	if err != nil {
		return nil, err
	}
	nb, err = engine.StartBattlePhase(nb)
	if err != nil {
		return nil, err
	}

	recordOutcome(repo, nb)
	if err := repo.UpdateBattle(nb); err != nil {
		return nil, err
	}
	return nb, nil
}

// UseItem records the round's single item selection. The heal itself is
// executed when the battle phase runs.
func UseItem(repo BattleRepo, battleID uint, itemID string) (*game.Battle, error) {
	b, err := getBattle(repo, battleID)
	if err != nil {
		return nil, err
	}

	nb, err := engine.SelectItem(b, itemID)
	if err != nil {
		return nil, err
	}
	nb, err = engine.MarkPreparationActionTaken(nb)
	if err != nil {
		return nil, err
	}

	if err := repo.UpdateBattle(nb); err != nil {
		return nil, err
	}
	return nb, nil
}
