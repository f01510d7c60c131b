package engine

import (
	"math/rand"
	"testing"
)

func createTestConfig() *GameConfig {
	return &GameConfig{
		Name:             "Engine Test Config",
		Description:      "Configuration for engine integration tests",
		StartingCash:     2000,
		StartingSalary:   1000,
		BaselineExpenses: 500,
		PassingGoAmount:  1000,
		FreedomAmount:    5000,
		MinPlayers:       2,
		MaxPlayers:       6,
	}
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func createTestEngine(t *testing.T, names ...string) *GameEngine {
	t.Helper()
	eng, err := NewEngineWithRand(createTestConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngineWithRand failed: %v", err)
	}
	if len(names) == 0 {
		names = []string{"Alice", "Bob"}
	}
	if err := eng.Initialize(names); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return eng
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig()
	eng, err := NewEngine(config)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	state := eng.GetState()
	if state.GameStarted {
		t.Error("game should not be started before Initialize")
	}
	if len(state.Tiles) != BoardSize {
		t.Errorf("expected %d tiles, got %d", BoardSize, len(state.Tiles))
	}
	if len(state.AvailableAssets) == 0 {
		t.Error("asset catalog should not be empty")
	}
	if state.MarketCondition != MarketNeutral {
		t.Errorf("expected neutral market, got %s", state.MarketCondition)
	}
	if state.Round != 1 {
		t.Errorf("expected round 1, got %d", state.Round)
	}
}

func TestNewEngineInvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Name = ""
	if _, err := NewEngine(config); err == nil {
		t.Error("expected error for config without name")
	}

	config = createTestConfig()
	config.FreedomAmount = 0
	if _, err := NewEngine(config); err == nil {
		t.Error("expected error for zero freedom_amount")
	}

	config = createTestConfig()
	config.StartingCash = 0
	config.StartingSalary = 0
	config.BaselineExpenses = 500
	if _, err := NewEngine(config); err == nil {
		t.Error("expected error for economy that bankrupts players on turn one")
	}
}

func TestInitialize(t *testing.T) {
	eng := createTestEngine(t, "Alice", "Bob", "Carol")

	state := eng.GetState()
	if !state.GameStarted {
		t.Error("game should be started")
	}
	if len(state.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(state.Players))
	}

	for i, p := range state.Players {
		if p.Cash != 2000 {
			t.Errorf("player %d: expected cash 2000, got %d", i, p.Cash)
		}
		if p.Salary != 1000 {
			t.Errorf("player %d: expected salary 1000, got %d", i, p.Salary)
		}
		if p.Expenses != 500 {
			t.Errorf("player %d: expected expenses 500, got %d", i, p.Expenses)
		}
		if p.Position != 0 {
			t.Errorf("player %d: expected position 0, got %d", i, p.Position)
		}
		if len(p.Assets) != 0 || len(p.Liabilities) != 0 {
			t.Errorf("player %d: expected empty portfolio", i)
		}
	}
	if state.Players[0].ID == state.Players[1].ID {
		t.Error("player ids must be unique")
	}
}

func TestInitializeTrimsAndRejects(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	if err := eng.Initialize([]string{"  ", "Alice", ""}); err == nil {
		t.Error("expected error with only one valid name")
	}
	if eng.GetState().GameStarted {
		t.Error("failed Initialize must not start the game")
	}

	if err := eng.Initialize([]string{" Alice ", "Bob"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if eng.GetState().Players[0].Name != "Alice" {
		t.Errorf("expected trimmed name Alice, got %q", eng.GetState().Players[0].Name)
	}
}

func TestInitializeCapsPlayers(t *testing.T) {
	names := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"}
	eng := createTestEngine(t, names...)

	if got := len(eng.GetState().Players); got != MaxPlayers {
		t.Errorf("expected player count capped at %d, got %d", MaxPlayers, got)
	}
}

func TestRollDiceMovesAndGates(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()

	if eng.RollDice(0) || eng.RollDice(7) {
		t.Error("out-of-range rolls must be rejected")
	}
	if state.Players[0].Position != 0 {
		t.Error("rejected roll must not move the player")
	}

	if !eng.RollDice(3) {
		t.Fatal("valid roll rejected")
	}
	if state.Players[0].Position != 3 {
		t.Errorf("expected position 3, got %d", state.Players[0].Position)
	}
	if state.Phase != PhaseAwaitingEndTurn {
		t.Errorf("expected phase %s, got %s", PhaseAwaitingEndTurn, state.Phase)
	}

	// Second roll in the same turn must be a no-op
	if eng.RollDice(2) {
		t.Error("roll must be rejected while awaiting end turn")
	}
	if state.Players[0].Position != 3 {
		t.Error("rejected roll must not move the player")
	}
}

func TestEndTurnRotatesPlayers(t *testing.T) {
	eng := createTestEngine(t, "Alice", "Bob", "Carol")
	state := eng.GetState()

	if eng.EndTurn() {
		t.Error("end turn must be rejected before rolling")
	}

	eng.RollDice(3)
	if !eng.EndTurn() {
		t.Fatal("end turn rejected")
	}
	if state.CurrentPlayerIndex != 1 {
		t.Errorf("expected turn to pass to player 1, got %d", state.CurrentPlayerIndex)
	}
	if state.Round != 1 {
		t.Errorf("round must not advance mid-rotation, got %d", state.Round)
	}
	if state.Phase != PhaseAwaitingRoll {
		t.Errorf("expected phase %s, got %s", PhaseAwaitingRoll, state.Phase)
	}
}

func TestEndTurnSettlement(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()

	eng.RollDice(1) // Side Hustle: +200
	cashAfterRoll := state.Players[0].Cash
	eng.EndTurn()

	// salary 1000 + passive 0 - expenses 500
	want := cashAfterRoll + 1000 - 500
	if state.Players[0].Cash != want {
		t.Errorf("expected cash %d after settlement, got %d", want, state.Players[0].Cash)
	}
}

func TestNewRoundRollsMarket(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()

	eng.RollDice(1)
	eng.EndTurn()
	eng.RollDice(1)
	eng.EndTurn() // wraps back to player 0

	if state.Round != 2 {
		t.Errorf("expected round 2 after full rotation, got %d", state.Round)
	}
	switch state.MarketCondition {
	case MarketBull, MarketBear, MarketNeutral:
	default:
		t.Errorf("unexpected market condition %q", state.MarketCondition)
	}
}

func TestPassingGoBonus(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()
	state.Players[0].Position = 22
	before := state.Players[0].Cash

	eng.RollDice(3) // wraps to position 1 (Side Hustle: +200)

	p := state.Players[0]
	if p.Position != 1 {
		t.Fatalf("expected position 1 after wrap, got %d", p.Position)
	}
	if p.Cash != before+1000+200 {
		t.Errorf("expected GO bonus plus tile income, got cash %d (was %d)", p.Cash, before)
	}

	found := false
	for _, e := range p.TurnHistory {
		if e.Type == EventPassedGo {
			found = true
		}
	}
	if !found {
		t.Error("expected passed_go history event")
	}
}

func TestWinByPassiveIncome(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()
	state.Players[0].PassiveIncome = 4999
	state.Players[0].Assets = []Asset{{ID: "asset-re-3", Name: "Commercial Property", Category: AssetRealEstate, Cost: 3000, CashFlow: 4999, Owned: 1}}

	// Buying alone must not finish the game
	state.Players[0].Cash = 10000
	if !eng.BuyAsset("player-1", "asset-stock-1") {
		t.Fatal("buy rejected")
	}
	if state.GameFinished {
		t.Error("win must only be checked at roll resolution")
	}

	if !eng.RollDice(1) {
		t.Fatal("roll rejected")
	}
	if !state.GameFinished {
		t.Fatal("expected game to finish once passive income exceeds the target")
	}
	if state.Winner == nil || state.Winner.ID != "player-1" {
		t.Error("expected player-1 as winner")
	}
	if state.Phase != PhaseGameOver {
		t.Errorf("expected phase %s, got %s", PhaseGameOver, state.Phase)
	}
	if eng.RollDice(1) || eng.EndTurn() {
		t.Error("roll and end turn must be rejected after the game finished")
	}
}

func TestWinByAttrition(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()

	// Drain player 0 so settlement bankrupts them
	state.Players[0].Cash = 0
	state.Players[0].Salary = 0
	state.Players[0].Expenses = 5000

	eng.RollDice(1)
	state.Players[0].Cash = 0 // undo tile income
	eng.EndTurn()

	if !state.Players[0].Bankrupt {
		t.Fatal("expected player 0 to go bankrupt")
	}
	if !state.GameFinished {
		t.Fatal("expected attrition win with one solvent player left")
	}
	if state.Winner == nil || state.Winner.ID != "player-2" {
		t.Error("expected player-2 as winner")
	}
}

func TestBankruptcySparedByLiquidation(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()

	// Deficit of 4000 after settlement; portfolio liquidates for 4000
	state.Players[0].Cash = 0
	state.Players[0].Salary = 0
	state.Players[0].Expenses = 4000
	state.Players[0].Assets = []Asset{{ID: "asset-re-2", Name: "Duplex", Category: AssetRealEstate, Cost: 2000, CashFlow: 200, Owned: 4}}
	state.Players[0].PassiveIncome = 800

	eng.RollDice(1)
	state.Players[0].Cash = 0
	state.Players[0].PassiveIncome = 0
	eng.EndTurn()

	p := state.Players[0]
	if p.Bankrupt {
		t.Error("player with sufficient liquidation value must not go bankrupt")
	}
	if !p.IsInDebt {
		t.Error("negative cash must flag the player as in debt")
	}
}

func TestBuySellRoundTrip(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()

	if eng.BuyAsset("ghost", "asset-re-1") {
		t.Error("unknown player must be a no-op")
	}
	if eng.BuyAsset("player-1", "no-such-asset") {
		t.Error("unknown asset must be a no-op")
	}

	if !eng.BuyAsset("player-1", "asset-re-1") {
		t.Fatal("buy rejected")
	}
	p := state.Players[0]
	if p.Cash != 1000 {
		t.Errorf("expected cash 1000 after buying for 1000, got %d", p.Cash)
	}
	if p.PassiveIncome != 100 {
		t.Errorf("expected passive income 100, got %d", p.PassiveIncome)
	}

	// Second unit of the same asset stacks on the existing holding
	if !eng.BuyAsset("player-1", "asset-re-1") {
		t.Fatal("second buy rejected")
	}
	p = state.Players[0]
	if len(p.Assets) != 1 || p.Assets[0].Owned != 2 {
		t.Fatalf("expected one holding with 2 units, got %+v", p.Assets)
	}
	if p.PassiveIncome != 200 {
		t.Errorf("expected passive income 200, got %d", p.PassiveIncome)
	}

	// Third buy cannot be afforded (cash 0)
	if eng.BuyAsset("player-1", "asset-re-1") {
		t.Error("unaffordable buy must be a no-op")
	}

	// Neutral market sells at 65% of cost
	if !eng.SellAsset("player-1", "asset-re-1") {
		t.Fatal("sell rejected")
	}
	p = state.Players[0]
	if p.Cash != 650 {
		t.Errorf("expected cash 650 after neutral sale, got %d", p.Cash)
	}
	if p.Assets[0].Owned != 1 {
		t.Errorf("expected 1 unit left, got %d", p.Assets[0].Owned)
	}
	if p.PassiveIncome != 100 {
		t.Errorf("expected passive income 100 after sale, got %d", p.PassiveIncome)
	}

	// Selling the last unit removes the holding
	if !eng.SellAsset("player-1", "asset-re-1") {
		t.Fatal("final sell rejected")
	}
	if len(state.Players[0].Assets) != 0 {
		t.Error("expected empty portfolio after selling last unit")
	}
	if eng.SellAsset("player-1", "asset-re-1") {
		t.Error("selling an unowned asset must be a no-op")
	}
}

func TestSellPriceTracksMarket(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()
	state.MarketCondition = MarketBull
	state.Players[0].Assets = []Asset{{ID: "asset-stock-2", Name: "Dividend Stocks", Category: AssetStock, Cost: 800, CashFlow: 50, Owned: 1}}
	state.Players[0].Cash = 0

	eng.SellAsset("player-1", "asset-stock-2")
	if state.Players[0].Cash != 640 {
		t.Errorf("expected bull sale at 640, got %d", state.Players[0].Cash)
	}
}

func TestReset(t *testing.T) {
	eng := createTestEngine(t)
	eng.RollDice(4)
	eng.EndTurn()

	state := eng.Reset()
	if state.GameStarted || state.GameFinished {
		t.Error("reset must clear started and finished flags")
	}
	if len(state.Players) != 0 {
		t.Error("reset must clear players")
	}
	if state.Round != 1 {
		t.Errorf("reset must restore round 1, got %d", state.Round)
	}
}

func TestSetConfigResets(t *testing.T) {
	eng := createTestEngine(t)

	newConfig := createTestConfig()
	newConfig.FreedomAmount = 9000
	if err := eng.SetConfig(newConfig); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	if eng.GetState().GameStarted {
		t.Error("SetConfig must reset the session")
	}
	if eng.GetState().FreedomAmount != 9000 {
		t.Errorf("expected freedom amount 9000, got %d", eng.GetState().FreedomAmount)
	}

	bad := createTestConfig()
	bad.MinPlayers = 0
	if err := eng.SetConfig(bad); err == nil {
		t.Error("expected error for invalid config")
	}
}
