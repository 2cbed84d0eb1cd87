package service

import (
	"github.com/xieyx/turn-based-battle/internal/config"
	"github.com/xieyx/turn-based-battle/internal/engine"
	"github.com/xieyx/turn-based-battle/internal/game"
)

// CreateBattle instantiates a fresh battle from the configured templates
// and persists it. An empty playerName keeps the template's display name.
func CreateBattle(repo BattleRepo, cfg *config.LoadedConfig, playerName, code string) (*game.Battle, error) {
	player := cfg.Player.Build(game.SidePlayer)
	if playerName != "" {
		player.Name = playerName
	}
	enemy := cfg.Enemy.Build(game.SideEnemy)

	b := engine.NewBattle(player, enemy, cfg.BuildItems())
	b.Code = code
	b.PlayerName = player.Name
	if err := repo.CreateBattle(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ResetBattle rebuilds the battle's sides and inventory from the
// templates and restores round 1, preserving the battle identity.
func ResetBattle(repo BattleRepo, cfg *config.LoadedConfig, battleID uint) (*game.Battle, error) {
	b, err := getBattle(repo, battleID)
	if err != nil {
		return nil, err
	}
	player := cfg.Player.Build(game.SidePlayer)
	if b.PlayerName != "" {
		player.Name = b.PlayerName
	}
	enemy := cfg.Enemy.Build(game.SideEnemy)

	nb := engine.ResetBattle(b, player, enemy, cfg.BuildItems())
	if err := repo.ReplaceBattle(nb); err != nil {
		return nil, err
	}
	return nb, nil
}
