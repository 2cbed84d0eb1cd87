package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvBattleConfig = "BATTLE_CONFIG"
	EnvBattleDB     = "BATTLE_DB"

	// Defaults used when the env vars above are unset
	DefaultConfigPath = "./battle_config.json"
	DefaultDBPath     = "./data/battle.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteBattles      = "/battles"
	RouteBattleByCode = "/battles/:battleCode"
	RouteBattleFight  = "/battles/:battleCode/fight"
	RouteBattleItems  = "/battles/:battleCode/items"
	RouteBattleReset  = "/battles/:battleCode/reset"
	RouteBattleWatch  = "/battles/:battleCode/watch"
	RouteLeaderboard  = "/leaderboard"
	RouteVersion      = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidBattleCode      = "Invalid battle code"
	ErrBattleNotFound         = "Battle not found"
	ErrFailedCreateBattle     = "Failed to create battle"
	ErrFailedFetchBattles     = "Failed to fetch battles"
	ErrFailedUpdateBattle     = "Failed to update battle"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrBattleAlreadyEnded     = "Battle has already ended"
	ErrActionNotInPreparation = "Action is only allowed during the preparation phase"
	ErrLeadCharacterDead      = "Lead character is dead"
	ErrItemUnavailable        = "Item has no remaining uses"
)

// Logging field names
const (
	LogFieldAddr       = "addr"
	LogFieldBattleID   = "battle_id"
	LogFieldBattleCode = "battle_code"
	LogFieldPlayerName = "player_name"
	LogFieldRound      = "round"
	LogFieldWinner     = "winner"
)
