package api

import (
	"crypto/rand"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xieyx/turn-based-battle/internal/constants"
	"github.com/xieyx/turn-based-battle/internal/engine"
	"github.com/xieyx/turn-based-battle/internal/service"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// generateBattleCode creates a short alphanumeric code identifying a
// battle to clients.
func generateBattleCode() string {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; there is no useful recovery at this call site.
		panic(err)
	}
	for i := range b {
		b[i] = codeCharset[int(b[i])%len(codeCharset)]
	}
	return string(b)
}

var battleCodeRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

func normalizeBattleCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// battleCodeParam extracts and validates the battle code path parameter,
// answering 400 itself when the code is malformed.
func battleCodeParam(c *gin.Context) (string, bool) {
	code := normalizeBattleCode(c.Param("battleCode"))
	if code == "" || !battleCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return "", false
	}
	return code, true
}

// respondServiceError maps engine and service failures onto HTTP
// statuses: phase conflicts and exhausted resources are 409, malformed
// references 400, unknown battles 404, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case errors.Is(err, engine.ErrBattleEnded):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyEnded})
	case errors.Is(err, engine.ErrInvalidPhase):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrActionNotInPreparation})
	case errors.Is(err, engine.ErrInsufficientItems):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrItemUnavailable})
	case errors.Is(err, engine.ErrCharacterDead):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrLeadCharacterDead})
	case errors.Is(err, engine.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateBattle})
	}
}
