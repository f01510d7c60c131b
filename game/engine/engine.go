package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Initialize(playerNames []string) error
	Reset() *GameState
	IsGameOver() bool
	GetWinner() *Player
	GetRound() int
	GetMarketCondition() MarketCondition
	GetCurrentPlayer() *Player
	FindPlayer(playerID string) *Player

	// Player actions
	RollDice(roll int) bool
	BuyAsset(playerID, assetID string) bool
	SellAsset(playerID, assetID string) bool
	PayDebt(playerID, liabilityID string, amount int) bool
	EndTurn() bool

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetTurnHistory(playerID string) []HistoryEvent
	GetEvents() []HistoryEvent
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
}

// NewEngine creates a new game engine with the provided rule set
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with the classic rule set
func NewEngineWithDefaults() *GameEngine {
	engine := &GameEngine{
		config: DefaultGameConfig(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	engine.state = InitGameStateFromConfig(engine.config)
	return engine
}

// NewEngineWithRand creates a new game engine with the provided rule
// set and random source. A seeded source makes market rollovers
// reproducible.
func NewEngineWithRand(config *GameConfig, rng *rand.Rand) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
		rng:    rng,
	}, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Initialize starts a new game with the given player names. Names are
// trimmed and empty ones dropped; at least the rule set's minimum
// player count must survive. Extra names beyond the maximum are
// silently ignored.
func (e *GameEngine) Initialize(playerNames []string) error {
	names := make([]string, 0, len(playerNames))
	for _, name := range playerNames {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) < e.config.MinPlayers {
		return fmt.Errorf("need at least %d players, got %d", e.config.MinPlayers, len(names))
	}
	if len(names) > e.config.MaxPlayers {
		names = names[:e.config.MaxPlayers]
	}

	state := InitGameStateFromConfig(e.config)
	state.Players = make([]Player, 0, len(names))
	for i, name := range names {
		state.Players = append(state.Players, Player{
			ID:          fmt.Sprintf("player-%d", i+1),
			Name:        name,
			Cash:        e.config.StartingCash,
			Position:    0,
			Salary:      e.config.StartingSalary,
			Expenses:    e.config.BaselineExpenses,
			Assets:      []Asset{},
			Liabilities: []Liability{},
			TurnHistory: []HistoryEvent{},
		})
	}
	state.GameStarted = true

	e.state = state
	return nil
}

// Reset clears the session back to a not-started game
func (e *GameEngine) Reset() *GameState {
	e.state = InitGameStateFromConfig(e.config)
	return e.state
}

// IsGameOver returns whether the game has finished
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameFinished
}

// GetWinner returns the winning player, or nil while the game runs
func (e *GameEngine) GetWinner() *Player {
	return e.state.Winner
}

// GetRound returns the current round number
func (e *GameEngine) GetRound() int {
	return e.state.Round
}

// GetMarketCondition returns the session-wide market condition
func (e *GameEngine) GetMarketCondition() MarketCondition {
	return e.state.MarketCondition
}

// GetCurrentPlayer returns the player whose turn it is, or nil before
// the game starts
func (e *GameEngine) GetCurrentPlayer() *Player {
	if !e.state.GameStarted || len(e.state.Players) == 0 {
		return nil
	}
	return &e.state.Players[e.state.CurrentPlayerIndex]
}

// FindPlayer returns the player with the given id, or nil
func (e *GameEngine) FindPlayer(playerID string) *Player {
	for i := range e.state.Players {
		if e.state.Players[i].ID == playerID {
			return &e.state.Players[i]
		}
	}
	return nil
}

// RollDice resolves the current player's dice roll
func (e *GameEngine) RollDice(roll int) bool {
	return e.state.ResolveRoll(roll)
}

// BuyAsset buys one unit of a catalog asset for the identified player.
// Purchases are allowed at any point while the game runs, not only on
// the buyer's turn.
func (e *GameEngine) BuyAsset(playerID, assetID string) bool {
	idx := e.playerIndex(playerID)
	if idx == -1 {
		return false
	}

	updated, ok := BuyAsset(e.state.Players[idx], e.state.AvailableAssets, assetID)
	if !ok {
		return false
	}
	e.state.Players[idx] = updated
	return true
}

// SellAsset sells one unit of an owned asset at the current market rate
func (e *GameEngine) SellAsset(playerID, assetID string) bool {
	idx := e.playerIndex(playerID)
	if idx == -1 {
		return false
	}

	updated, ok := SellAsset(e.state.Players[idx], assetID, e.state.MarketCondition)
	if !ok {
		return false
	}
	e.state.Players[idx] = updated
	return true
}

// PayDebt pays down one of the identified player's liabilities
func (e *GameEngine) PayDebt(playerID, liabilityID string, amount int) bool {
	idx := e.playerIndex(playerID)
	if idx == -1 {
		return false
	}

	updated, ok := PayDebt(e.state.Players[idx], liabilityID, amount)
	if !ok {
		return false
	}
	e.state.Players[idx] = updated
	return true
}

// EndTurn settles the current player's books and rotates the turn
func (e *GameEngine) EndTurn() bool {
	return e.state.SettleEndTurn(e.rng)
}

// GetConfig returns the current rule set
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new rule set and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitGameStateFromConfig(config)
	return nil
}

// GetTurnHistory returns the identified player's turn history, or nil
// for an unknown player
func (e *GameEngine) GetTurnHistory(playerID string) []HistoryEvent {
	p := e.FindPlayer(playerID)
	if p == nil {
		return nil
	}
	return p.TurnHistory
}

// GetEvents returns the session-wide event feed
func (e *GameEngine) GetEvents() []HistoryEvent {
	return e.state.Events
}

func (e *GameEngine) playerIndex(playerID string) int {
	for i := range e.state.Players {
		if e.state.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}
