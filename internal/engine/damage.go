package engine

import "github.com/xieyx/turn-based-battle/internal/game"

// BaseDamage computes attack minus defense with a floor of 1. The floor
// guarantees every round makes progress: over-defense can never stall a
// battle.
func BaseDamage(attack, defense int) int {
	raw := attack - defense
	if raw < 1 {
		raw = 1
	}
	return raw
}

// ApplyCharacterDamage returns a copy of the character with the damage
// applied, HP floored at 0. No other field changes.
func ApplyCharacterDamage(c game.Character, dmg int) game.Character {
	c.CurrentHitPoints -= dmg
	if c.CurrentHitPoints < 0 {
		c.CurrentHitPoints = 0
	}
	return c
}

// ApplyStackDamage returns a copy of the stack with the damage absorbed
// unit by unit from the front. When a hit exceeds the front unit's HP the
// excess carries over to kill further whole units; the next surviving
// unit keeps whatever remains of its full HP. A wiped stack holds no
// partial health.
func ApplyStackDamage(s game.SoldierStack, dmg int) game.SoldierStack {
	if dmg < s.UnitHitPoints {
		s.UnitHitPoints -= dmg
		return s
	}
	excess := dmg - s.UnitHitPoints
	unitsLost := 1 + excess/s.UnitMaxHitPoints
	s.Quantity -= unitsLost
	if s.Quantity < 0 {
		s.Quantity = 0
	}
	if s.Quantity == 0 {
		s.UnitHitPoints = 0
		return s
	}
	s.UnitHitPoints = s.UnitMaxHitPoints - excess%s.UnitMaxHitPoints
	return s
}
