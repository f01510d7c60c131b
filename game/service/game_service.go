package service

import (
	"context"
	"time"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	StartGame(ctx context.Context, sessionID string, playerNames []string) (*engine.GameState, error)
	RollDice(ctx context.Context, sessionID string, roll int) (*RollResult, error)
	BuyAsset(ctx context.Context, sessionID, playerID, assetID string) (*TradeResult, error)
	SellAsset(ctx context.Context, sessionID, playerID, assetID string) (*TradeResult, error)
	PayDebt(ctx context.Context, sessionID, playerID, liabilityID string, amount int) (*DebtResult, error)
	EndTurn(ctx context.Context, sessionID string) (*EndTurnResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetTurnHistory(ctx context.Context, sessionID, playerID string, opts HistoryOptions) (*HistoryResponse, error)

	// Saved Games
	SaveGame(ctx context.Context, sessionID, name string) (*SaveInfo, error)
	LoadGame(ctx context.Context, sessionID, saveID string) (*engine.GameState, error)
	ListSaves(ctx context.Context) ([]*SaveInfo, error)
	DeleteSave(ctx context.Context, saveID string) error

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles rule-set loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// SlotManager handles named save slots
type SlotManager interface {
	Save(name string, state *engine.GameState) (*SaveInfo, error)
	Load(saveID string) (*engine.GameState, error)
	List() ([]*SaveInfo, error)
	Delete(saveID string) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
