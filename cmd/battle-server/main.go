package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/xieyx/turn-based-battle/internal/api"
	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/live"
	"github.com/xieyx/turn-based-battle/internal/logging"
)

func main() {
	// Battle configuration file (required). Path may be provided via
	// BATTLE_CONFIG or defaults to ./battle_config.json in the current
	// working directory.
	configPath := os.Getenv(constants.EnvBattleConfig)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvBattleDB)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)

	feed := live.NewBroadcaster()
	handler := api.NewBattleHandler(repo, cfg, feed)

	// Background scanner: drives wall-clock ticks into every running
	// preparation phase. The engine itself never self-schedules.
	startPreparationScanner(repo, feed, cfg.TickInterval)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteBattles, handler.CreateBattle)
		apiRoutes.GET(constants.RouteBattles, handler.ListBattles)
		apiRoutes.GET(constants.RouteBattleByCode, handler.GetBattle)
		apiRoutes.POST(constants.RouteBattleFight, handler.Fight)
		apiRoutes.POST(constants.RouteBattleItems, handler.UseItem)
		apiRoutes.POST(constants.RouteBattleReset, handler.ResetBattle)
		apiRoutes.GET(constants.RouteBattleWatch, handler.WatchBattle)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
