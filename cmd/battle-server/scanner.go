package main

import (
	"encoding/json"
	"time"

	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/live"
	"github.com/xieyx/turn-based-battle/internal/logging"
	"github.com/xieyx/turn-based-battle/internal/service"
	"github.com/xieyx/turn-based-battle/internal/storage"
)

// startPreparationScanner ticks every running preparation phase once per
// interval and pushes a snapshot to watchers whenever a tick changed the
// battle. Battles are processed sequentially, which keeps SQLite happy.
func startPreparationScanner(repo storage.Repository, feed *live.Broadcaster, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			battles, err := repo.FindPreparationBattles()
			if err != nil {
				logging.Error("preparation scanner failed to list battles", err, nil)
				continue
			}
			for _, short := range battles {
				b, advanced, err := service.TickPreparation(repo, short.ID)
				if err != nil {
					logging.Error("preparation tick failed", err, logging.Fields{constants.LogFieldBattleID: short.ID})
					continue
				}
				if advanced {
					logging.Info("preparation expired; round auto-resolved", logging.Fields{
						constants.LogFieldBattleCode: b.Code,
						constants.LogFieldRound:      b.Round,
					})
				}
				if payload, err := json.Marshal(b); err == nil {
					feed.Publish(b.Code, payload)
				}
			}
		}
	}()
}
