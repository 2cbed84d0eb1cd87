package main

import (
	"github.com/xieyx/turn-based-battle/internal/config"
	"github.com/xieyx/turn-based-battle/internal/logging"
	"github.com/xieyx/turn-based-battle/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid battle configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a battle_config.json with 'player' and 'enemy' template blocks (name,hit_points,attack,defense,formation,soldiers) and optional keys: items, server.address, tick_interval_seconds",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
