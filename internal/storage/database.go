package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xieyx/turn-based-battle/internal/game"
)

// OpenAndMigrate opens (creating parent directories if needed) the SQLite
// database at dataSourceName and keeps the schema updated via
// AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&game.Battle{},
		&game.Character{},
		&game.SoldierStack{},
		&game.Item{},
		&game.LogEntry{},
		&game.DamageRecord{},
		&game.PlayerRecord{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
