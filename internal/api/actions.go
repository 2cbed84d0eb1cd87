package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/logging"
	"github.com/xieyx/turn-based-battle/internal/service"
)

type useItemRequest struct {
	ItemID string `json:"item_id"`
}

// Fight runs one full round for the player's fight intent and returns
// the post-round battle state.
func (h *BattleHandler) Fight(c *gin.Context) {
	code, ok := battleCodeParam(c)
	if !ok {
		return
	}
	short, err := h.repo.FindBattleByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}

	b, err := service.Fight(h.repo, short.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	fields := logging.Fields{
		constants.LogFieldBattleCode: b.Code,
		constants.LogFieldRound:      b.Round,
	}
	if b.IsGameOver {
		fields[constants.LogFieldWinner] = b.Winner
	}
	logging.Info("round resolved", fields)
	h.publishSnapshot(b)
	c.JSON(http.StatusOK, b)
}

// UseItem records the round's item selection; the heal executes when the
// battle phase runs.
func (h *BattleHandler) UseItem(c *gin.Context) {
	code, ok := battleCodeParam(c)
	if !ok {
		return
	}
	var req useItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	short, err := h.repo.FindBattleByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}

	b, err := service.UseItem(h.repo, short.ID, req.ItemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.publishSnapshot(b)
	c.JSON(http.StatusOK, b)
}
