package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xieyx/turn-based-battle/internal/game"
)

const validConfig = `{
  "server": {"address": ":9090"},
  "tick_interval_seconds": 2,
  "player": {
    "name": "Hero", "hit_points": 100, "attack": 20, "defense": 5,
    "formation": "leader_first",
    "soldiers": [{"name": "Spearmen", "unit_hit_points": 30, "attack": 6, "defense": 2, "quantity": 3}]
  },
  "enemy": {
    "name": "Warlord", "hit_points": 80, "attack": 15, "defense": 3,
    "formation": "soldiers_first",
    "soldiers": [{"name": "Goblin Grunts", "unit_hit_points": 20, "attack": 4, "defense": 1, "quantity": 5}]
  },
  "items": [{"type": "healing_potion", "name": "Healing Potion", "heal_amount": 30, "quantity": 2}]
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle_config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.ServerAddress)
	}
	if cfg.TickInterval != 2*time.Second {
		t.Fatalf("expected 2s tick interval, got %v", cfg.TickInterval)
	}

	player := cfg.Player.Build(game.SidePlayer)
	if player.CurrentHitPoints != 100 || len(player.Soldiers) != 1 || player.Soldiers[0].Quantity != 3 {
		t.Fatalf("unexpected player build: %+v", player)
	}
	enemy := cfg.Enemy.Build(game.SideEnemy)
	if enemy.Formation != game.FormationSoldiersFirst || enemy.Side != game.SideEnemy {
		t.Fatalf("unexpected enemy build: %+v", enemy)
	}
	items := cfg.BuildItems()
	if len(items) != 1 || items[0].HealAmount != 30 || !items[0].Usable() {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name, content string
	}{
		{"missing player", `{"enemy": {"name": "W", "hit_points": 1}}`},
		{"zero hit points", `{"player": {"name": "H", "hit_points": 0}, "enemy": {"name": "W", "hit_points": 1}}`},
		{"bad formation", `{"player": {"name": "H", "hit_points": 1, "formation": "circle"}, "enemy": {"name": "W", "hit_points": 1}}`},
		{"empty soldier stack", `{"player": {"name": "H", "hit_points": 1, "soldiers": [{"name": "S", "unit_hit_points": 10, "quantity": 0}]}, "enemy": {"name": "W", "hit_points": 1}}`},
		{"unknown item type", `{"player": {"name": "H", "hit_points": 1}, "enemy": {"name": "W", "hit_points": 1}, "items": [{"type": "bomb", "name": "B", "heal_amount": 1, "quantity": 1}]}`},
		{"item without heal", `{"player": {"name": "H", "hit_points": 1}, "enemy": {"name": "W", "hit_points": 1}, "items": [{"type": "healing_potion", "name": "P", "heal_amount": 0, "quantity": 1}]}`},
		{"not json", `not json`},
	}
	for _, c := range cases {
		if _, err := LoadConfig(writeConfig(t, c.content)); err == nil {
			t.Fatalf("%s: expected an error", c.name)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"player": {"name": "H", "hit_points": 1}, "enemy": {"name": "W", "hit_points": 1}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %s", cfg.ServerAddress)
	}
	if cfg.TickInterval != time.Second {
		t.Fatalf("expected default 1s tick, got %v", cfg.TickInterval)
	}
	if cfg.Player.Formation != game.FormationLeaderFirst {
		t.Fatalf("expected leader-first default formation, got %s", cfg.Player.Formation)
	}
}
