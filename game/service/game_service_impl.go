package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	slots    SlotManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, slots SlotManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		slots:    slots,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load rule set
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID, // Return the config_id, not the display name
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// StartGame starts a new game in the session with the given player names
func (s *gameServiceImpl) StartGame(ctx context.Context, sessionID string, playerNames []string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if err := sess.Engine.Initialize(playerNames); err != nil {
		return nil, err
	}

	s.persist(sessionID, "start")
	return sess.Engine.GetState(), nil
}

// RollDice resolves the current player's dice roll
func (s *gameServiceImpl) RollDice(ctx context.Context, sessionID string, roll int) (*RollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	result := &RollResult{GameState: state, Roll: roll}

	var before engine.Player
	if current := sess.Engine.GetCurrentPlayer(); current != nil {
		before = *current
		result.PlayerID = current.ID
		result.FromPosition = current.Position
	}

	if !sess.Engine.RollDice(roll) {
		result.Reason = diagnoseRoll(state, roll)
		result.Message = fmt.Sprintf("roll not applied: %s", result.Reason)
		return result, nil
	}

	after := state.Players[state.CurrentPlayerIndex]
	result.Applied = true
	result.ToPosition = after.Position
	result.PassedGo = after.Position < before.Position
	result.LandedTile = state.Tiles[after.Position].Name
	result.CashDelta = after.Cash - before.Cash
	result.GameOver = state.GameFinished
	result.Message = fmt.Sprintf("%s rolled %d and landed on %s", after.Name, roll, result.LandedTile)

	result.Events = append(result.Events, GameEvent{
		Type:      "roll",
		Message:   result.Message,
		Timestamp: time.Now(),
		PlayerID:  after.ID,
	})
	if result.PassedGo {
		result.Events = append(result.Events, GameEvent{
			Type:      "passed_go",
			Message:   fmt.Sprintf("%s passed GO and collected %d", after.Name, state.PassingGoAmount),
			Timestamp: time.Now(),
			PlayerID:  after.ID,
		})
	}
	if state.GameFinished && state.Winner != nil {
		result.Winner = state.Winner.ID
		result.Events = append(result.Events, GameEvent{
			Type:      "victory",
			Message:   fmt.Sprintf("%s reached financial freedom!", state.Winner.Name),
			Timestamp: time.Now(),
			PlayerID:  state.Winner.ID,
		})
	}

	s.persist(sessionID, "roll")
	return result, nil
}

// BuyAsset buys one unit of a catalog asset for a player
func (s *gameServiceImpl) BuyAsset(ctx context.Context, sessionID, playerID, assetID string) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	result := &TradeResult{GameState: state, PlayerID: playerID, AssetID: assetID}

	player := sess.Engine.FindPlayer(playerID)
	cashBefore := 0
	if player != nil {
		cashBefore = player.Cash
	}

	if !sess.Engine.BuyAsset(playerID, assetID) {
		result.Reason = diagnoseBuy(sess.Engine, state, playerID, assetID)
		result.Message = fmt.Sprintf("purchase not applied: %s", result.Reason)
		return result, nil
	}

	player = sess.Engine.FindPlayer(playerID)
	result.Applied = true
	result.CashDelta = player.Cash - cashBefore
	result.PassiveIncome = player.PassiveIncome
	result.Message = fmt.Sprintf("%s bought %s", player.Name, assetName(state, assetID))
	result.Events = append(result.Events, GameEvent{
		Type:      "trade",
		Message:   result.Message,
		Timestamp: time.Now(),
		PlayerID:  playerID,
	})

	s.persist(sessionID, "buy")
	return result, nil
}

// SellAsset sells one unit of an owned asset at the current market rate
func (s *gameServiceImpl) SellAsset(ctx context.Context, sessionID, playerID, assetID string) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	result := &TradeResult{GameState: state, PlayerID: playerID, AssetID: assetID}

	player := sess.Engine.FindPlayer(playerID)
	cashBefore := 0
	if player != nil {
		cashBefore = player.Cash
	}

	if !sess.Engine.SellAsset(playerID, assetID) {
		result.Reason = diagnoseSell(sess.Engine, playerID)
		result.Message = fmt.Sprintf("sale not applied: %s", result.Reason)
		return result, nil
	}

	player = sess.Engine.FindPlayer(playerID)
	result.Applied = true
	result.CashDelta = player.Cash - cashBefore
	result.PassiveIncome = player.PassiveIncome
	result.Message = fmt.Sprintf("%s sold %s for %d", player.Name, assetName(state, assetID), result.CashDelta)
	result.Events = append(result.Events, GameEvent{
		Type:      "trade",
		Message:   result.Message,
		Timestamp: time.Now(),
		PlayerID:  playerID,
	})

	s.persist(sessionID, "sell")
	return result, nil
}

// PayDebt pays down one of a player's liabilities
func (s *gameServiceImpl) PayDebt(ctx context.Context, sessionID, playerID, liabilityID string, amount int) (*DebtResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	result := &DebtResult{GameState: state, PlayerID: playerID, LiabilityID: liabilityID}

	if !sess.Engine.PayDebt(playerID, liabilityID, amount) {
		result.Reason = diagnosePayDebt(sess.Engine, playerID, liabilityID, amount)
		result.Message = fmt.Sprintf("payment not applied: %s", result.Reason)
		return result, nil
	}

	player := sess.Engine.FindPlayer(playerID)
	result.Applied = true
	result.AmountPaid = amount
	result.Cleared = true
	for _, l := range player.Liabilities {
		if l.ID == liabilityID {
			result.Remaining = l.Amount
			result.Cleared = false
		}
	}
	if result.Cleared {
		result.Message = fmt.Sprintf("%s paid off a liability", player.Name)
	} else {
		result.Message = fmt.Sprintf("%s paid %d toward a liability, %.2f remaining", player.Name, amount, result.Remaining)
	}
	result.Events = append(result.Events, GameEvent{
		Type:      "debt",
		Message:   result.Message,
		Timestamp: time.Now(),
		PlayerID:  playerID,
	})

	s.persist(sessionID, "pay-debt")
	return result, nil
}

// EndTurn settles the current player's books and rotates the turn
func (s *gameServiceImpl) EndTurn(ctx context.Context, sessionID string) (*EndTurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	result := &EndTurnResult{GameState: state, Round: state.Round, MarketCondition: state.MarketCondition}

	settledIndex := state.CurrentPlayerIndex
	var before engine.Player
	if state.GameStarted && len(state.Players) > 0 {
		before = state.Players[settledIndex]
	}
	roundBefore := state.Round

	if !sess.Engine.EndTurn() {
		result.Reason = diagnoseEndTurn(state)
		result.Message = fmt.Sprintf("end turn not applied: %s", result.Reason)
		return result, nil
	}

	settled := state.Players[settledIndex]
	result.Applied = true
	result.SettledPlayerID = settled.ID
	result.CashDelta = settled.Cash - before.Cash
	result.NextPlayerID = state.Players[state.CurrentPlayerIndex].ID
	result.NewRound = state.Round > roundBefore
	result.Round = state.Round
	result.MarketCondition = state.MarketCondition
	result.Bankrupted = settled.Bankrupt && !before.Bankrupt
	result.GameOver = state.GameFinished
	result.Message = fmt.Sprintf("%s settled their turn", settled.Name)

	if result.Bankrupted {
		result.Events = append(result.Events, GameEvent{
			Type:      "bankrupt",
			Message:   fmt.Sprintf("%s went bankrupt", settled.Name),
			Timestamp: time.Now(),
			PlayerID:  settled.ID,
		})
	}
	if result.NewRound {
		result.Events = append(result.Events, GameEvent{
			Type:      "new_round",
			Message:   fmt.Sprintf("Round %d begins, the market turns %s", state.Round, state.MarketCondition),
			Timestamp: time.Now(),
		})
	}
	if state.GameFinished && state.Winner != nil {
		result.Winner = state.Winner.ID
		result.Events = append(result.Events, GameEvent{
			Type:      "victory",
			Message:   fmt.Sprintf("%s wins as the last solvent player", state.Winner.Name),
			Timestamp: time.Now(),
			PlayerID:  state.Winner.ID,
		})
	}

	s.persist(sessionID, "end-turn")
	return result, nil
}

// Reset clears the session back to a not-started game
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.Reset()
	s.persist(sessionID, "reset")
	return state, nil
}

// GetGameState returns the current state of a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.GetState(), nil
}

// GetTurnHistory returns a page of a player's turn history
func (s *gameServiceImpl) GetTurnHistory(ctx context.Context, sessionID, playerID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	player := sess.Engine.FindPlayer(playerID)
	if player == nil {
		return nil, fmt.Errorf("player not found: %s", playerID)
	}

	events := player.TurnHistory

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 || opts.Limit > 100 {
		opts.Limit = 20
	}

	// Newest-first unless ascending was requested
	ordered := make([]engine.HistoryEvent, len(events))
	copy(ordered, events)
	if opts.Order != "asc" {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	total := len(ordered)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Events:      ordered[start:end],
		TotalEvents: total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// SaveGame snapshots the session's game state into a named save slot
func (s *gameServiceImpl) SaveGame(ctx context.Context, sessionID, name string) (*SaveInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	info, err := s.slots.Save(name, sess.Engine.GetState())
	if err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	return info, nil
}

// LoadGame replaces the session's game state with a saved slot
func (s *gameServiceImpl) LoadGame(ctx context.Context, sessionID, saveID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state, err := s.slots.Load(saveID)
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	if err := sess.Engine.SetState(state); err != nil {
		return nil, err
	}

	s.persist(sessionID, "load")
	return state, nil
}

// ListSaves lists all save slots
func (s *gameServiceImpl) ListSaves(ctx context.Context) ([]*SaveInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots.List()
}

// DeleteSave removes a save slot
func (s *gameServiceImpl) DeleteSave(ctx context.Context, saveID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots.Delete(saveID)
}

// ListConfigs returns all available rule sets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a rule set by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a rule set
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// persist auto-saves the session after a mutating action. Persistence
// failures are logged, never surfaced: the in-memory session is the
// source of truth.
func (s *gameServiceImpl) persist(sessionID, action string) {
	if err := s.sessions.Save(sessionID); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Str("action", action).Msg("failed to persist session")
	}
}

func assetName(state *engine.GameState, assetID string) string {
	for _, a := range state.AvailableAssets {
		if a.ID == assetID {
			return a.Name
		}
	}
	return assetID
}

func diagnoseRoll(state *engine.GameState, roll int) string {
	switch {
	case roll < engine.MinRoll || roll > engine.MaxRoll:
		return ReasonInvalidRoll
	case !state.GameStarted:
		return ReasonGameNotStarted
	case state.GameFinished:
		return ReasonGameFinished
	default:
		return ReasonWrongPhase
	}
}

func diagnoseBuy(e *engine.GameEngine, state *engine.GameState, playerID, assetID string) string {
	if e.FindPlayer(playerID) == nil {
		return ReasonUnknownPlayer
	}
	for _, a := range state.AvailableAssets {
		if a.ID == assetID {
			return ReasonInsufficientFunds
		}
	}
	return ReasonUnknownAsset
}

func diagnoseSell(e *engine.GameEngine, playerID string) string {
	if e.FindPlayer(playerID) == nil {
		return ReasonUnknownPlayer
	}
	return ReasonNotOwned
}

func diagnosePayDebt(e *engine.GameEngine, playerID, liabilityID string, amount int) string {
	player := e.FindPlayer(playerID)
	if player == nil {
		return ReasonUnknownPlayer
	}
	if amount <= 0 {
		return ReasonInvalidAmount
	}
	for _, l := range player.Liabilities {
		if l.ID == liabilityID {
			return ReasonInsufficientFunds
		}
	}
	return ReasonUnknownLiability
}

func diagnoseEndTurn(state *engine.GameState) string {
	switch {
	case !state.GameStarted:
		return ReasonGameNotStarted
	case state.GameFinished:
		return ReasonGameFinished
	default:
		return ReasonWrongPhase
	}
}
