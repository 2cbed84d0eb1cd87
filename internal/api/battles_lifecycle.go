package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/logging"
	"github.com/xieyx/turn-based-battle/internal/service"
)

type createBattleRequest struct {
	PlayerName string `json:"player_name"`
}

// CreateBattle starts a new battle from the configured templates. The
// optional player_name overrides the template's display name.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req createBattleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
	}

	// Retry on the (unlikely) event of a code collision.
	code := ""
	for attempt := 0; attempt < 5; attempt++ {
		candidate := generateBattleCode()
		if _, err := h.repo.FindBattleByCode(candidate); err != nil {
			code = candidate
			break
		}
	}
	if code == "" {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle})
		return
	}

	b, err := service.CreateBattle(h.repo, h.cfg, req.PlayerName, code)
	if err != nil {
		logging.Error("failed to create battle", err, logging.Fields{constants.LogFieldPlayerName: req.PlayerName})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle})
		return
	}
	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleID:   b.ID,
		constants.LogFieldBattleCode: b.Code,
		constants.LogFieldPlayerName: b.PlayerName,
	})
	c.JSON(http.StatusCreated, b)
}

// ResetBattle restores an existing battle to round 1 with fresh template
// configuration, keeping its code and player name.
func (h *BattleHandler) ResetBattle(c *gin.Context) {
	code, ok := battleCodeParam(c)
	if !ok {
		return
	}
	short, err := h.repo.FindBattleByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}

	b, err := service.ResetBattle(h.repo, h.cfg, short.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logging.Info("battle reset", logging.Fields{constants.LogFieldBattleCode: b.Code})
	h.publishSnapshot(b)
	c.JSON(http.StatusOK, b)
}
