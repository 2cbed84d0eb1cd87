package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/dedupe"
	"github.com/xieyx/turn-based-battle/internal/game"
)

// ListBattles returns the most recent battles (summary rows only).
func (h *BattleHandler) ListBattles(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	battles, err := h.repo.ListRecentBattles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	c.JSON(http.StatusOK, battles)
}

// GetBattle returns the full battle state for a code. Concurrent reads
// of the same battle are coalesced into one repository load.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	code, ok := battleCodeParam(c)
	if !ok {
		return
	}
	v, err, _ := dedupe.BattleReadGroup.Do(code, func() (interface{}, error) {
		return h.repo.FindBattleByCode(code)
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, v.(*game.Battle))
}

// ListLeaderboard returns the top player records by wins.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	records, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, records)
}
