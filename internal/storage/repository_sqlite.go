package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xieyx/turn-based-battle/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBattleByID(id uint) (*game.Battle, error) {
	var b game.Battle
	err := r.db.
		Preload("Characters.Soldiers").
		Preload("Items").
		Preload("Log", func(db *gorm.DB) *gorm.DB { return db.Order("log_entries.id ASC") }).
		Preload("DamageRecords", func(db *gorm.DB) *gorm.DB { return db.Order("damage_records.id ASC") }).
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) FindBattleByCode(code string) (*game.Battle, error) {
	var b game.Battle
	if err := r.db.Where("code = ?", code).First(&b).Error; err != nil {
		return nil, err
	}
	return r.GetBattleByID(b.ID)
}

func (r *sqliteRepository) ListRecentBattles(limit int) ([]game.Battle, error) {
	var battles []game.Battle
	if err := r.db.Order("id DESC").Limit(limit).Find(&battles).Error; err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *sqliteRepository) UpdateBattle(b *game.Battle) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Damage records are replaced wholesale each round: drop the old
		// rows and let Save insert the fresh ones.
		if err := tx.Where("battle_id = ?", b.ID).Delete(&game.DamageRecord{}).Error; err != nil {
			return err
		}
		for i := range b.DamageRecords {
			b.DamageRecords[i].ID = 0
			b.DamageRecords[i].BattleID = b.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
	})
}

func (r *sqliteRepository) ReplaceBattle(b *game.Battle) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var charIDs []uint
		if err := tx.Model(&game.Character{}).Where("battle_id = ?", b.ID).Pluck("id", &charIDs).Error; err != nil {
			return err
		}
		if len(charIDs) > 0 {
			if err := tx.Where("character_id IN ?", charIDs).Delete(&game.SoldierStack{}).Error; err != nil {
				return err
			}
		}
		for _, model := range []interface{}{&game.Character{}, &game.Item{}, &game.LogEntry{}, &game.DamageRecord{}} {
			if err := tx.Where("battle_id = ?", b.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
	})
}

func (r *sqliteRepository) FindPreparationBattles() ([]game.Battle, error) {
	var battles []game.Battle
	err := r.db.
		Where("is_game_over = ? AND phase = ?", false, game.PhasePreparation).
		Find(&battles).Error
	if err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(b *game.Battle) error {
	if b.PlayerName == "" || !b.IsGameOver {
		return nil
	}
	rec := game.PlayerRecord{PlayerName: b.PlayerName, Battles: 1, Rounds: b.Round}
	switch b.Winner {
	case game.SidePlayer:
		rec.Wins = 1
	case game.SideEnemy:
		rec.Losses = 1
	default:
		rec.Draws = 1
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"battles": gorm.Expr("battles + ?", rec.Battles),
			"wins":    gorm.Expr("wins + ?", rec.Wins),
			"losses":  gorm.Expr("losses + ?", rec.Losses),
			"draws":   gorm.Expr("draws + ?", rec.Draws),
			"rounds":  gorm.Expr("rounds + ?", rec.Rounds),
		}),
	}).Create(&rec).Error
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerRecord, error) {
	var records []game.PlayerRecord
	err := r.db.Order("wins DESC, battles ASC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
