package service

import (
	"time"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
)

// Machine-friendly codes explaining why an action did not apply.
const (
	ReasonInvalidRoll       = "invalid_roll"
	ReasonWrongPhase        = "wrong_phase"
	ReasonGameFinished      = "game_finished"
	ReasonGameNotStarted    = "game_not_started"
	ReasonUnknownPlayer     = "unknown_player"
	ReasonUnknownAsset      = "unknown_asset"
	ReasonUnknownLiability  = "unknown_liability"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonNotOwned          = "not_owned"
	ReasonInvalidAmount     = "invalid_amount"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// RollResult contains the result of a dice roll
type RollResult struct {
	Applied   bool              `json:"applied"`
	Reason    string            `json:"reason,omitempty"` // Machine-friendly code when not applied
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`

	// Roll snapshot
	Roll         int    `json:"roll,omitempty"`
	PlayerID     string `json:"player_id,omitempty"`
	FromPosition int    `json:"from_position"`
	ToPosition   int    `json:"to_position"`
	PassedGo     bool   `json:"passed_go,omitempty"`
	LandedTile   string `json:"landed_tile,omitempty"`
	CashDelta    int    `json:"cash_delta"`
	GameOver     bool   `json:"game_over"`
	Winner       string `json:"winner,omitempty"`
}

// TradeResult contains the result of an asset buy or sell
type TradeResult struct {
	Applied   bool              `json:"applied"`
	Reason    string            `json:"reason,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`

	PlayerID      string `json:"player_id,omitempty"`
	AssetID       string `json:"asset_id,omitempty"`
	CashDelta     int    `json:"cash_delta"`
	PassiveIncome int    `json:"passive_income"`
}

// DebtResult contains the result of a debt payment
type DebtResult struct {
	Applied   bool              `json:"applied"`
	Reason    string            `json:"reason,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`

	PlayerID    string  `json:"player_id,omitempty"`
	LiabilityID string  `json:"liability_id,omitempty"`
	AmountPaid  int     `json:"amount_paid"`
	Remaining   float64 `json:"remaining"`
	Cleared     bool    `json:"cleared,omitempty"`
}

// EndTurnResult contains the result of an end-of-turn settlement
type EndTurnResult struct {
	Applied   bool              `json:"applied"`
	Reason    string            `json:"reason,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`

	SettledPlayerID string                 `json:"settled_player_id,omitempty"`
	CashDelta       int                    `json:"cash_delta"`
	NextPlayerID    string                 `json:"next_player_id,omitempty"`
	NewRound        bool                   `json:"new_round,omitempty"`
	Round           int                    `json:"round"`
	MarketCondition engine.MarketCondition `json:"market_condition"`
	Bankrupted      bool                   `json:"bankrupted,omitempty"`
	GameOver        bool                   `json:"game_over"`
	Winner          string                 `json:"winner,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "roll", "passed_go", "trade", "debt", "bankrupt", "new_round", "victory", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	PlayerID  string    `json:"player_id,omitempty"`
}

// HistoryOptions configures turn history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated turn history
type HistoryResponse struct {
	Events      []engine.HistoryEvent `json:"events"`
	TotalEvents int                   `json:"total_events"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	TotalPages  int                   `json:"total_pages"`
	HasNext     bool                  `json:"has_next"`
	HasPrevious bool                  `json:"has_previous"`
}

// ConfigInfo provides information about a rule set
type ConfigInfo struct {
	Filename      string `json:"filename"`
	ConfigID      string `json:"config_id"` // The identifier to use for session creation
	Name          string `json:"name"`      // Display name
	Description   string `json:"description"`
	StartingCash  int    `json:"starting_cash"`
	FreedomAmount int    `json:"freedom_amount"`
	MaxPlayers    int    `json:"max_players"`
}

// SaveInfo describes a named save slot
type SaveInfo struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Version int       `json:"version"`
	Round   int       `json:"round"`
	Players int       `json:"players"`
}
