package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/xieyx/turn-based-battle/internal/game"
)

// SoldierTemplate describes one soldier stack template in the config file.
type SoldierTemplate struct {
	Name          string `json:"name"`
	UnitHitPoints int    `json:"unit_hit_points"`
	Attack        int    `json:"attack"`
	Defense       int    `json:"defense"`
	Quantity      int    `json:"quantity"`
}

// characterEntry describes a lead character template in the config file.
type characterEntry struct {
	Name      string            `json:"name"`
	HitPoints int               `json:"hit_points"`
	Attack    int               `json:"attack"`
	Defense   int               `json:"defense"`
	Formation string            `json:"formation"`
	Soldiers  []SoldierTemplate `json:"soldiers"`
}

// itemEntry describes one inventory item template in the config file.
type itemEntry struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	HealAmount int    `json:"heal_amount"`
	Quantity   int    `json:"quantity"`
}

type rawConfig struct {
	Player *characterEntry `json:"player"`
	Enemy  *characterEntry `json:"enemy"`
	Items  []itemEntry     `json:"items"`
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	TickIntervalSeconds int `json:"tick_interval_seconds"`
}

// CharacterTemplate is a validated, replaceable character configuration.
// Battles instantiate fresh characters from it on create and reset.
type CharacterTemplate struct {
	Name      string
	HitPoints int
	Attack    int
	Defense   int
	Formation string
	Soldiers  []SoldierTemplate
}

// Build instantiates a combat-ready character for the given side.
func (t CharacterTemplate) Build(side string) game.Character {
	soldiers := make([]game.SoldierStack, 0, len(t.Soldiers))
	for _, s := range t.Soldiers {
		soldiers = append(soldiers, game.NewSoldierStack(s.Name, s.UnitHitPoints, s.Attack, s.Defense, s.Quantity))
	}
	return game.NewCharacter(t.Name, t.HitPoints, t.Attack, t.Defense, side, t.Formation, soldiers)
}

// ItemTemplate is a validated item configuration.
type ItemTemplate struct {
	Type       string
	Name       string
	HealAmount int
	Quantity   int
}

// Build instantiates a fresh inventory item.
func (t ItemTemplate) Build() game.Item {
	return game.NewItem(t.Type, t.Name, t.HealAmount, t.Quantity)
}

// LoadedConfig carries the server address, the preparation tick cadence
// and the replaceable numeric content (character and item templates).
type LoadedConfig struct {
	ServerAddress string
	TickInterval  time.Duration
	Player        CharacterTemplate
	Enemy         CharacterTemplate
	Items         []ItemTemplate
}

// BuildItems instantiates the whole configured inventory.
func (c *LoadedConfig) BuildItems() []game.Item {
	items := make([]game.Item, 0, len(c.Items))
	for _, t := range c.Items {
		items = append(items, t.Build())
	}
	return items
}

// LoadConfig reads and validates the configuration file at path. It
// requires the `player` and `enemy` template blocks (snake_case keys).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	player, err := buildCharacterTemplate(path, "player", rc.Player)
	if err != nil {
		return nil, err
	}
	enemy, err := buildCharacterTemplate(path, "enemy", rc.Enemy)
	if err != nil {
		return nil, err
	}

	items := make([]ItemTemplate, 0, len(rc.Items))
	for _, it := range rc.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("config file %s: item entry missing 'name'", path)
		}
		if it.Type != game.ItemTypeHealingPotion {
			return nil, fmt.Errorf("config file %s: item '%s' has unknown type '%s'", path, it.Name, it.Type)
		}
		if it.HealAmount <= 0 {
			return nil, fmt.Errorf("config file %s: item '%s' must have a positive 'heal_amount'", path, it.Name)
		}
		if it.Quantity < 0 {
			return nil, fmt.Errorf("config file %s: item '%s' has negative 'quantity'", path, it.Name)
		}
		items = append(items, ItemTemplate{Type: it.Type, Name: it.Name, HealAmount: it.HealAmount, Quantity: it.Quantity})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	tick := 1 * time.Second
	if rc.TickIntervalSeconds > 0 {
		tick = time.Duration(rc.TickIntervalSeconds) * time.Second
	}

	return &LoadedConfig{
		ServerAddress: addr,
		TickInterval:  tick,
		Player:        player,
		Enemy:         enemy,
		Items:         items,
	}, nil
}

func buildCharacterTemplate(path, key string, e *characterEntry) (CharacterTemplate, error) {
	var t CharacterTemplate
	if e == nil {
		return t, fmt.Errorf("config file %s: missing '%s' block", path, key)
	}
	if e.Name == "" {
		return t, fmt.Errorf("config file %s: %s entry missing 'name'", path, key)
	}
	if e.HitPoints <= 0 {
		return t, fmt.Errorf("config file %s: %s '%s' must have positive 'hit_points'", path, key, e.Name)
	}
	formation := e.Formation
	if formation == "" {
		formation = game.FormationLeaderFirst
	}
	if formation != game.FormationLeaderFirst && formation != game.FormationSoldiersFirst {
		return t, fmt.Errorf("config file %s: %s '%s' has unknown formation '%s'", path, key, e.Name, e.Formation)
	}
	for _, s := range e.Soldiers {
		if s.Name == "" {
			return t, fmt.Errorf("config file %s: %s '%s' has a soldier stack missing 'name'", path, key, e.Name)
		}
		if s.UnitHitPoints <= 0 || s.Quantity <= 0 {
			return t, fmt.Errorf("config file %s: soldier stack '%s' must have positive 'unit_hit_points' and 'quantity'", path, s.Name)
		}
	}
	return CharacterTemplate{
		Name:      e.Name,
		HitPoints: e.HitPoints,
		Attack:    e.Attack,
		Defense:   e.Defense,
		Formation: formation,
		Soldiers:  e.Soldiers,
	}, nil
}
