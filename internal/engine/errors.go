package engine

import "errors"

var (
	ErrInvalidPhase      = errors.New("operation not allowed in the current phase")
	ErrBattleEnded       = errors.New("battle has already ended")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInsufficientItems = errors.New("item has no remaining uses")
	ErrCharacterDead     = errors.New("lead character is dead")
)
