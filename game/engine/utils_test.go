package engine

import "testing"

func TestNetWorth(t *testing.T) {
	p := Player{
		Cash: 1200,
		Assets: []Asset{
			{ID: "asset-re-1", Cost: 1000, CashFlow: 100, Owned: 2},
			{ID: "asset-stock-1", Cost: 500, CashFlow: 25, Owned: 1},
		},
		Liabilities: []Liability{
			{ID: "liability-1", Amount: 1000.4},
		},
	}

	// 1200 + 2000 + 500 - round(1000.4)
	if got := NetWorth(p); got != 2700 {
		t.Errorf("expected net worth 2700, got %d", got)
	}

	if got := NetWorth(Player{Cash: -300}); got != -300 {
		t.Errorf("expected net worth -300 for an indebted player with no holdings, got %d", got)
	}
}

func TestTotalDebt(t *testing.T) {
	p := Player{
		Liabilities: []Liability{
			{ID: "liability-1", Amount: 1000},
			{ID: "liability-2", Amount: 512.5},
		},
	}
	if got := TotalDebt(p); got != 1512.5 {
		t.Errorf("expected total debt 1512.5, got %v", got)
	}
	if got := TotalDebt(Player{}); got != 0 {
		t.Errorf("expected zero debt for a clean player, got %v", got)
	}
}

func TestSolventPlayers(t *testing.T) {
	gs := &GameState{
		Players: []Player{
			{ID: "player-1", Name: "Alice"},
			{ID: "player-2", Name: "Bob", Bankrupt: true},
			{ID: "player-3", Name: "Cora"},
		},
	}

	active := SolventPlayers(gs)
	if len(active) != 2 {
		t.Fatalf("expected 2 solvent players, got %d", len(active))
	}
	if active[0].ID != "player-1" || active[1].ID != "player-3" {
		t.Errorf("unexpected solvent players: %v", active)
	}
}

func TestMonthlyCashFlow(t *testing.T) {
	p := Player{
		Salary:        1000,
		PassiveIncome: 300,
		Expenses:      500,
		Liabilities: []Liability{
			{ID: "liability-1", MinimumPayment: 100},
			{ID: "liability-2", MinimumPayment: 50},
		},
	}
	if got := MonthlyCashFlow(p); got != 650 {
		t.Errorf("expected monthly flow 650, got %d", got)
	}

	broke := Player{Salary: 400, Expenses: 500}
	if got := MonthlyCashFlow(broke); got != -100 {
		t.Errorf("expected negative flow -100, got %d", got)
	}
}
