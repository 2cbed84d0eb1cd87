package game

import "github.com/xieyx/turn-based-battle/internal/ids"

// NewCharacter builds a combat-ready character from base stats: a fresh
// entity id is generated and current HP starts at the maximum.
func NewCharacter(name string, maxHP, attack, defense int, side, formation string, soldiers []SoldierStack) Character {
	return Character{
		EntityID:         ids.NewCharacterID(),
		Name:             name,
		MaxHitPoints:     maxHP,
		CurrentHitPoints: maxHP,
		Attack:           attack,
		Defense:          defense,
		Side:             side,
		Formation:        formation,
		Soldiers:         soldiers,
	}
}

// NewSoldierStack builds a full stack: every unit present, front unit at
// full HP.
func NewSoldierStack(name string, unitMaxHP, attack, defense, quantity int) SoldierStack {
	return SoldierStack{
		EntityID:         ids.NewSoldierStackID(),
		Name:             name,
		UnitMaxHitPoints: unitMaxHP,
		UnitHitPoints:    unitMaxHP,
		Attack:           attack,
		Defense:          defense,
		Quantity:         quantity,
		MaxQuantity:      quantity,
	}
}

// NewItem builds an inventory item with a fresh entity id.
func NewItem(itemType, name string, healAmount, quantity int) Item {
	return Item{
		EntityID:   ids.NewItemID(),
		Type:       itemType,
		Name:       name,
		HealAmount: healAmount,
		Quantity:   quantity,
	}
}
