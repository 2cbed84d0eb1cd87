package engine

import "github.com/xieyx/turn-based-battle/internal/game"

// Target is the small tagged union returned by target resolution: either
// the defending lead character or one soldier stack. Exactly one of the
// two pointers is set, matching Type.
type Target struct {
	Type      string
	Character *game.Character
	Stack     *game.SoldierStack
}

// Defense returns the resolved target's defense stat.
func (t Target) Defense() int {
	if t.Type == game.TargetSoldier {
		return t.Stack.Defense
	}
	return t.Character.Defense
}

// ResolveTarget decides where an attack on the given defender lands. With
// a soldiers-first formation the first alive stack (declaration order)
// screens the lead character; otherwise, or once every stack is down, the
// lead character is hit directly.
//
// The stacks argument is passed separately from the defender because the
// battle phase resolves each attacker against a running simulation of the
// defender's stacks, not the start-of-round snapshot: an earlier attacker
// in the same round may already have depleted the stack this one would
// have hit.
func ResolveTarget(defender *game.Character, stacks []game.SoldierStack) Target {
	if defender.Formation == game.FormationSoldiersFirst {
		for i := range stacks {
			if stacks[i].Alive() {
				return Target{Type: game.TargetSoldier, Stack: &stacks[i]}
			}
		}
	}
	return Target{Type: game.TargetCharacter, Character: defender}
}
