package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
	"github.com/playcashflow/cashflow-tycoon/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, exists := m.sessions[id]; exists {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultGameConfig()
	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{"classic": classic},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	if config, exists := m.configs[name]; exists {
		return config, nil
	}
	return nil, errors.New("configuration not found")
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	var infos []*service.ConfigInfo
	for id, config := range m.configs {
		infos = append(infos, &service.ConfigInfo{
			Filename:      id + ".json",
			ConfigID:      id,
			Name:          config.Name,
			Description:   config.Description,
			StartingCash:  config.StartingCash,
			FreedomAmount: config.FreedomAmount,
			MaxPlayers:    config.MaxPlayers,
		})
	}
	return infos, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	m.configs[name] = config
	return nil
}

// MockSlotManager implements service.SlotManager for testing
type MockSlotManager struct {
	slots map[string]*engine.GameState
}

func NewMockSlotManager() *MockSlotManager {
	return &MockSlotManager{slots: make(map[string]*engine.GameState)}
}

func (m *MockSlotManager) Save(name string, state *engine.GameState) (*service.SaveInfo, error) {
	// Snapshot through JSON like the real store, so later session
	// mutations cannot reach into the saved copy
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var snapshot engine.GameState
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	id := fmt.Sprintf("save_%d", len(m.slots)+1)
	m.slots[id] = &snapshot
	return &service.SaveInfo{ID: id, Name: name, Date: time.Now(), Version: engine.SnapshotVersion}, nil
}

func (m *MockSlotManager) Load(saveID string) (*engine.GameState, error) {
	state, exists := m.slots[saveID]
	if !exists {
		return nil, errors.New("save slot not found")
	}
	return state, nil
}

func (m *MockSlotManager) List() ([]*service.SaveInfo, error) {
	var infos []*service.SaveInfo
	for id := range m.slots {
		infos = append(infos, &service.SaveInfo{ID: id})
	}
	return infos, nil
}

func (m *MockSlotManager) Delete(saveID string) error {
	if _, exists := m.slots[saveID]; !exists {
		return errors.New("save slot not found")
	}
	delete(m.slots, saveID)
	return nil
}

func newTestService(t *testing.T) (service.GameService, string) {
	t.Helper()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager(), NewMockSlotManager())

	info, err := svc.CreateSession(context.Background(), "classic")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return svc, info.ID
}

func startTestGame(t *testing.T, svc service.GameService, sessionID string) {
	t.Helper()
	if _, err := svc.StartGame(context.Background(), sessionID, []string{"Alice", "Bob"}); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
}

func TestCreateSession(t *testing.T) {
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager(), NewMockSlotManager())
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if info.ID == "" {
		t.Error("session must get an id")
	}
	if info.GameState == nil || info.GameState.GameStarted {
		t.Error("new session must hold a fresh, not-started game")
	}

	if _, err := svc.CreateSession(ctx, "no-such-config"); err == nil {
		t.Error("expected error for unknown config")
	}

	// Empty name falls back to the default rule set
	if _, err := svc.CreateSession(ctx, ""); err != nil {
		t.Errorf("default config session failed: %v", err)
	}
}

func TestStartGame(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()

	state, err := svc.StartGame(ctx, sessionID, []string{"Alice", "Bob", "Carol"})
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if !state.GameStarted || len(state.Players) != 3 {
		t.Errorf("unexpected state after start: started=%v players=%d", state.GameStarted, len(state.Players))
	}

	if _, err := svc.StartGame(ctx, sessionID, []string{"OnlyOne"}); err == nil {
		t.Error("expected error for a single player")
	}
	if _, err := svc.StartGame(ctx, "missing", []string{"A", "B"}); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestRollDiceResult(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()
	startTestGame(t, svc, sessionID)

	result, err := svc.RollDice(ctx, sessionID, 4)
	if err != nil {
		t.Fatalf("RollDice failed: %v", err)
	}
	if !result.Applied {
		t.Fatalf("roll not applied: %s", result.Reason)
	}
	if result.ToPosition != 4 {
		t.Errorf("expected landing position 4, got %d", result.ToPosition)
	}
	if result.LandedTile == "" {
		t.Error("result must name the landed tile")
	}
	if len(result.Events) == 0 {
		t.Error("applied roll must emit events")
	}

	// Rolling again in the same turn fails with a phase reason
	again, err := svc.RollDice(ctx, sessionID, 3)
	if err != nil {
		t.Fatalf("RollDice failed: %v", err)
	}
	if again.Applied {
		t.Error("second roll in one turn must not apply")
	}
	if again.Reason != service.ReasonWrongPhase {
		t.Errorf("expected reason %s, got %s", service.ReasonWrongPhase, again.Reason)
	}

	bad, err := svc.RollDice(ctx, sessionID, 9)
	if err != nil {
		t.Fatalf("RollDice failed: %v", err)
	}
	if bad.Applied || bad.Reason != service.ReasonInvalidRoll {
		t.Errorf("expected %s, got applied=%v reason=%s", service.ReasonInvalidRoll, bad.Applied, bad.Reason)
	}
}

func TestRollBeforeStart(t *testing.T) {
	svc, sessionID := newTestService(t)

	result, err := svc.RollDice(context.Background(), sessionID, 3)
	if err != nil {
		t.Fatalf("RollDice failed: %v", err)
	}
	if result.Applied || result.Reason != service.ReasonGameNotStarted {
		t.Errorf("expected %s, got applied=%v reason=%s", service.ReasonGameNotStarted, result.Applied, result.Reason)
	}
}

func TestBuyAndSell(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()
	startTestGame(t, svc, sessionID)

	buy, err := svc.BuyAsset(ctx, sessionID, "player-1", "asset-re-1")
	if err != nil {
		t.Fatalf("BuyAsset failed: %v", err)
	}
	if !buy.Applied {
		t.Fatalf("buy not applied: %s", buy.Reason)
	}
	if buy.CashDelta != -1000 {
		t.Errorf("expected cash delta -1000, got %d", buy.CashDelta)
	}
	if buy.PassiveIncome != 100 {
		t.Errorf("expected passive income 100, got %d", buy.PassiveIncome)
	}

	unknown, _ := svc.BuyAsset(ctx, sessionID, "player-1", "nope")
	if unknown.Applied || unknown.Reason != service.ReasonUnknownAsset {
		t.Errorf("expected %s, got %s", service.ReasonUnknownAsset, unknown.Reason)
	}
	ghost, _ := svc.BuyAsset(ctx, sessionID, "ghost", "asset-re-1")
	if ghost.Applied || ghost.Reason != service.ReasonUnknownPlayer {
		t.Errorf("expected %s, got %s", service.ReasonUnknownPlayer, ghost.Reason)
	}

	// Broke player: drain with an expensive purchase attempt
	broke, _ := svc.BuyAsset(ctx, sessionID, "player-1", "asset-biz-3")
	if broke.Applied || broke.Reason != service.ReasonInsufficientFunds {
		t.Errorf("expected %s, got %s", service.ReasonInsufficientFunds, broke.Reason)
	}

	sell, err := svc.SellAsset(ctx, sessionID, "player-1", "asset-re-1")
	if err != nil {
		t.Fatalf("SellAsset failed: %v", err)
	}
	if !sell.Applied {
		t.Fatalf("sell not applied: %s", sell.Reason)
	}
	if sell.CashDelta != 650 {
		t.Errorf("expected neutral-market sale of 650, got %d", sell.CashDelta)
	}

	notOwned, _ := svc.SellAsset(ctx, sessionID, "player-2", "asset-re-1")
	if notOwned.Applied || notOwned.Reason != service.ReasonNotOwned {
		t.Errorf("expected %s, got %s", service.ReasonNotOwned, notOwned.Reason)
	}
}

func TestPayDebtResult(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()
	startTestGame(t, svc, sessionID)

	// Give player-1 a liability through session state
	state, err := svc.GetGameState(ctx, sessionID)
	if err != nil {
		t.Fatal(err)
	}
	state.Players[0].Liabilities = []engine.Liability{{ID: "liability-1", Name: "Credit Card", Amount: 1000, InterestRate: 18, MinimumPayment: 100}}
	state.Players[0].Expenses += 100
	state.Players[0].IsInDebt = true

	partial, err := svc.PayDebt(ctx, sessionID, "player-1", "liability-1", 400)
	if err != nil {
		t.Fatalf("PayDebt failed: %v", err)
	}
	if !partial.Applied || partial.Cleared {
		t.Fatalf("expected applied partial payment, got %+v", partial)
	}
	if partial.Remaining != 600 {
		t.Errorf("expected 600 remaining, got %v", partial.Remaining)
	}

	full, err := svc.PayDebt(ctx, sessionID, "player-1", "liability-1", 600)
	if err != nil {
		t.Fatalf("PayDebt failed: %v", err)
	}
	if !full.Applied || !full.Cleared {
		t.Errorf("expected cleared liability, got %+v", full)
	}

	gone, _ := svc.PayDebt(ctx, sessionID, "player-1", "liability-1", 100)
	if gone.Applied || gone.Reason != service.ReasonUnknownLiability {
		t.Errorf("expected %s, got %s", service.ReasonUnknownLiability, gone.Reason)
	}

	zero, _ := svc.PayDebt(ctx, sessionID, "player-1", "liability-1", 0)
	if zero.Applied || zero.Reason != service.ReasonInvalidAmount {
		t.Errorf("expected %s, got %s", service.ReasonInvalidAmount, zero.Reason)
	}
}

func TestEndTurnResult(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()
	startTestGame(t, svc, sessionID)

	premature, err := svc.EndTurn(ctx, sessionID)
	if err != nil {
		t.Fatalf("EndTurn failed: %v", err)
	}
	if premature.Applied || premature.Reason != service.ReasonWrongPhase {
		t.Errorf("expected %s, got %s", service.ReasonWrongPhase, premature.Reason)
	}

	if _, err := svc.RollDice(ctx, sessionID, 2); err != nil {
		t.Fatal(err)
	}
	result, err := svc.EndTurn(ctx, sessionID)
	if err != nil {
		t.Fatalf("EndTurn failed: %v", err)
	}
	if !result.Applied {
		t.Fatalf("end turn not applied: %s", result.Reason)
	}
	if result.SettledPlayerID != "player-1" {
		t.Errorf("expected player-1 settled, got %s", result.SettledPlayerID)
	}
	if result.NextPlayerID != "player-2" {
		t.Errorf("expected player-2 next, got %s", result.NextPlayerID)
	}
	if result.NewRound {
		t.Error("round must not roll over mid-rotation")
	}
}

func TestTurnHistoryPagination(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()
	startTestGame(t, svc, sessionID)

	// Accumulate some history
	for i := 0; i < 3; i++ {
		if _, err := svc.RollDice(ctx, sessionID, 2); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.EndTurn(ctx, sessionID); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.RollDice(ctx, sessionID, 2); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.EndTurn(ctx, sessionID); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := svc.GetTurnHistory(ctx, sessionID, "player-1", service.HistoryOptions{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("GetTurnHistory failed: %v", err)
	}
	if len(resp.Events) > 2 {
		t.Errorf("page size 2 exceeded: %d", len(resp.Events))
	}
	if resp.TotalEvents < 3 {
		t.Errorf("expected at least 3 events, got %d", resp.TotalEvents)
	}
	if resp.TotalEvents > 2 && !resp.HasNext {
		t.Error("expected a next page")
	}

	if _, err := svc.GetTurnHistory(ctx, sessionID, "ghost", service.HistoryOptions{}); err == nil {
		t.Error("expected error for unknown player")
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	svc, sessionID := newTestService(t)
	ctx := context.Background()
	startTestGame(t, svc, sessionID)

	if _, err := svc.RollDice(ctx, sessionID, 5); err != nil {
		t.Fatal(err)
	}

	info, err := svc.SaveGame(ctx, sessionID, "before the crash")
	if err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	if info.ID == "" || info.Name != "before the crash" {
		t.Errorf("unexpected save info: %+v", info)
	}

	stateBefore, _ := svc.GetGameState(ctx, sessionID)
	cashBefore := stateBefore.Players[0].Cash

	// Mutate further, then load the snapshot back
	if _, err := svc.EndTurn(ctx, sessionID); err != nil {
		t.Fatal(err)
	}

	loaded, err := svc.LoadGame(ctx, sessionID, info.ID)
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if loaded.Players[0].Cash != cashBefore {
		t.Errorf("expected restored cash %d, got %d", cashBefore, loaded.Players[0].Cash)
	}

	if _, err := svc.LoadGame(ctx, sessionID, "no-such-save"); err == nil {
		t.Error("expected error for unknown save")
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager(), NewMockSlotManager())
	ctx := context.Background()

	a, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateSession(ctx, "classic"); err != nil {
		t.Fatal(err)
	}

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(sessions))
	}

	got, err := svc.GetSession(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("expected session %s, got %s", a.ID, got.ID)
	}

	if err := svc.DeleteSession(ctx, a.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(ctx, a.ID); err == nil {
		t.Error("expected error after delete")
	}
}
