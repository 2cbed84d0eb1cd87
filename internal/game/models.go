package game

import (
	"gorm.io/gorm"
)

// Battle phases. A round always walks preparation -> battle -> resolution;
// resolution either ends the battle or rolls straight into the next
// preparation phase.
const (
	PhasePreparation = "preparation"
	PhaseBattle      = "battle"
	PhaseResolution  = "resolution"
)

// Side tags for the two combatants.
const (
	SidePlayer = "player"
	SideEnemy  = "enemy"
)

// Formation preferences. With FormationSoldiersFirst the side's soldier
// stacks screen the lead character from incoming attacks; with
// FormationLeaderFirst the lead character is always the target.
const (
	FormationSoldiersFirst = "soldiers_first"
	FormationLeaderFirst   = "leader_first"
)

// Damage record target kinds.
const (
	TargetCharacter = "character"
	TargetSoldier   = "soldier"
)

// ItemTypeHealingPotion is the only consumable type currently defined.
const ItemTypeHealingPotion = "healing_potion"

// PreparationSeconds is the countdown a preparation phase starts with.
// The engine only stores and decrements the integer; wall-clock ticking
// is the collaborator's job.
const PreparationSeconds = 30

// SoldierStack is a fungible group of identical units fighting as one
// participant. Damage is absorbed front unit first: UnitHitPoints tracks
// the front unit only, every unit behind it is at full UnitMaxHitPoints.
type SoldierStack struct {
	gorm.Model
	CharacterID      uint   `json:"-"`
	EntityID         string `json:"entity_id" gorm:"index"`
	Name             string `json:"name"`
	UnitMaxHitPoints int    `json:"unit_max_hp"`
	UnitHitPoints    int    `json:"unit_hp"`
	Attack           int    `json:"attack"`
	Defense          int    `json:"defense"`
	Quantity         int    `json:"quantity"`
	MaxQuantity      int    `json:"max_quantity"`
}

// Alive reports whether the stack still fields at least one unit.
func (s *SoldierStack) Alive() bool {
	return s.UnitHitPoints > 0 && s.Quantity > 0
}

// Character is a side's lead combatant plus its optional soldier stacks.
type Character struct {
	gorm.Model
	BattleID         uint           `json:"-"`
	EntityID         string         `json:"entity_id" gorm:"index"`
	Name             string         `json:"name"`
	MaxHitPoints     int            `json:"max_hp"`
	CurrentHitPoints int            `json:"current_hp"`
	Attack           int            `json:"attack"`
	Defense          int            `json:"defense"`
	Side             string         `json:"side"`
	Formation        string         `json:"formation"`
	Soldiers         []SoldierStack `json:"soldiers"`
}

// Alive reports whether the lead character itself is still standing.
func (c *Character) Alive() bool {
	return c.CurrentHitPoints > 0
}

// SideAlive is the authoritative end-of-battle predicate: a side stays in
// the fight while its lead character or any of its soldier stacks lives.
func (c *Character) SideAlive() bool {
	if c.Alive() {
		return true
	}
	for i := range c.Soldiers {
		if c.Soldiers[i].Alive() {
			return true
		}
	}
	return false
}

// SoldierByEntityID returns the stack with the given entity id, or nil.
func (c *Character) SoldierByEntityID(id string) *SoldierStack {
	for i := range c.Soldiers {
		if c.Soldiers[i].EntityID == id {
			return &c.Soldiers[i]
		}
	}
	return nil
}

// Item is a single-use consumable held in the battle inventory.
type Item struct {
	gorm.Model
	BattleID   uint   `json:"-"`
	EntityID   string `json:"entity_id" gorm:"index"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	HealAmount int    `json:"heal_amount"`
	Quantity   int    `json:"quantity"`
}

// Usable reports whether the item can still be consumed.
func (it *Item) Usable() bool { return it.Quantity > 0 }

// DamageRecord is a computed-but-not-yet-applied unit of damage. The
// battle phase produces one per live attacker; the resolution phase
// consumes them in the same order. Records stay on the battle until the
// next battle phase replaces them so clients can show the latest round.
type DamageRecord struct {
	gorm.Model
	BattleID     uint   `json:"-"`
	AttackerID   string `json:"attacker_id"`
	AttackerName string `json:"attacker_name"`
	TargetID     string `json:"target_id"`
	TargetType   string `json:"target_type"`
	Amount       int    `json:"amount"`
	StackID      string `json:"stack_id"`
	StackName    string `json:"stack_name"`
}

// LogEntry is one line of the append-only battle log.
type LogEntry struct {
	gorm.Model
	BattleID uint   `json:"-"`
	Round    int    `json:"round"`
	Phase    string `json:"phase"`
	Message  string `json:"message"`
}

// Battle is the whole battle state. Engine operations never mutate a
// published Battle: they deep-clone it, transform the clone and return it.
type Battle struct {
	gorm.Model
	Code       string `json:"code" gorm:"uniqueIndex"`
	PlayerName string `json:"player_name"`

	Round      int    `json:"round"`
	Phase      string `json:"phase"`
	IsGameOver bool   `json:"is_game_over"`
	Winner     string `json:"winner"`

	PreparationLeft int  `json:"preparation_left"`
	ActionTaken     bool `json:"action_taken"`

	// PendingItemID/PendingItemTargetID hold the single item selection a
	// preparation phase allows; execution is deferred to the battle phase.
	PendingItemID       string `json:"pending_item_id"`
	PendingItemTargetID string `json:"pending_item_target_id"`

	StatsCounted bool `json:"-"`

	Characters    []Character    `json:"characters"`
	Items         []Item         `json:"items"`
	Log           []LogEntry     `json:"battle_log"`
	DamageRecords []DamageRecord `json:"damage_records"`
}

// BySide returns the character fighting for the given side, or nil.
func (b *Battle) BySide(side string) *Character {
	for i := range b.Characters {
		if b.Characters[i].Side == side {
			return &b.Characters[i]
		}
	}
	return nil
}

// PlayerCharacter returns the player-side character.
func (b *Battle) PlayerCharacter() *Character { return b.BySide(SidePlayer) }

// EnemyCharacter returns the enemy-side character.
func (b *Battle) EnemyCharacter() *Character { return b.BySide(SideEnemy) }

// CharacterByEntityID returns the character with the given entity id, or nil.
func (b *Battle) CharacterByEntityID(id string) *Character {
	for i := range b.Characters {
		if b.Characters[i].EntityID == id {
			return &b.Characters[i]
		}
	}
	return nil
}

// ItemByEntityID returns the inventory item with the given entity id, or nil.
func (b *Battle) ItemByEntityID(id string) *Item {
	for i := range b.Items {
		if b.Items[i].EntityID == id {
			return &b.Items[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the battle. Slices of owned entities are
// copied element by element so the clone shares no memory with the
// original; gorm bookkeeping fields are carried over so saving the clone
// updates the same rows.
func (b *Battle) Clone() *Battle {
	out := *b
	out.Characters = make([]Character, len(b.Characters))
	for i := range b.Characters {
		out.Characters[i] = b.Characters[i]
		out.Characters[i].Soldiers = append([]SoldierStack(nil), b.Characters[i].Soldiers...)
	}
	out.Items = append([]Item(nil), b.Items...)
	out.Log = append([]LogEntry(nil), b.Log...)
	out.DamageRecords = append([]DamageRecord(nil), b.DamageRecords...)
	return &out
}

// PlayerRecord stores one player's aggregate outcomes across battles.
type PlayerRecord struct {
	gorm.Model
	PlayerName string `json:"player_name" gorm:"uniqueIndex"`
	Battles    int    `json:"battles"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
	Rounds     int    `json:"rounds"`
}

// TableName keeps the aggregate table name aligned with what it stores.
func (PlayerRecord) TableName() string { return "player_records" }
