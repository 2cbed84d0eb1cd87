package engine

import (
	"fmt"

	"github.com/xieyx/turn-based-battle/internal/game"
)

// ExecutePendingItemUse applies the round's pending item selection, if
// any. StartBattlePhase runs this internally at the top of the round; the
// standalone operation exists for callers driving phases by hand.
func ExecutePendingItemUse(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhaseBattle {
		return nil, ErrInvalidPhase
	}
	nb := b.Clone()
	bc := &battleContext{b: nb}
	if err := bc.executePendingItemUse(); err != nil {
		return nil, err
	}
	return nb, nil
}

// executePendingItemUse resolves and applies the pending heal in place.
// No-op when nothing is pending. With a soldiers-first player formation
// the heal is redirected to the front unit of the first living stack:
// that unit is projected as a character-shaped value, healed, and its HP
// written back (quantity never changes on a heal).
func (bc *battleContext) executePendingItemUse() error {
	nb := bc.b
	if nb.PendingItemID == "" {
		return nil
	}
	item := nb.ItemByEntityID(nb.PendingItemID)
	if item == nil {
		return fmt.Errorf("%w: unknown item %q", ErrInvalidAction, nb.PendingItemID)
	}
	if !item.Usable() {
		return ErrInsufficientItems
	}
	if item.Type != game.ItemTypeHealingPotion || item.HealAmount <= 0 {
		return fmt.Errorf("%w: item %s has no heal effect", ErrInvalidAction, item.Name)
	}

	healedName := ""
	healed := 0
	player := nb.PlayerCharacter()
	if player != nil && player.Formation == game.FormationSoldiersFirst {
		if s := firstAliveStack(player); s != nil {
			front := game.Character{MaxHitPoints: s.UnitMaxHitPoints, CurrentHitPoints: s.UnitHitPoints}
			front = healCharacter(front, item.HealAmount)
			healed = front.CurrentHitPoints - s.UnitHitPoints
			s.UnitHitPoints = front.CurrentHitPoints
			healedName = s.Name
		}
	}
	if healedName == "" {
		target := nb.CharacterByEntityID(nb.PendingItemTargetID)
		if target == nil {
			return fmt.Errorf("%w: cannot resolve heal target %q", ErrInvalidAction, nb.PendingItemTargetID)
		}
		before := target.CurrentHitPoints
		*target = healCharacter(*target, item.HealAmount)
		healed = target.CurrentHitPoints - before
		healedName = target.Name
	}

	item.Quantity--
	nb.PendingItemID = ""
	nb.PendingItemTargetID = ""
	bc.log(fmt.Sprintf("%s restores %d HP to %s.", item.Name, healed, healedName))
	return nil
}

// healCharacter returns a copy with HP raised, capped at the maximum.
func healCharacter(c game.Character, amount int) game.Character {
	c.CurrentHitPoints += amount
	if c.CurrentHitPoints > c.MaxHitPoints {
		c.CurrentHitPoints = c.MaxHitPoints
	}
	return c
}
