package engine

import "math"

// NetWorth is cash plus portfolio cost basis minus outstanding debt,
// used for standings displays and economy analysis.
func NetWorth(p Player) int {
	worth := p.Cash
	for _, a := range p.Assets {
		worth += a.Cost * a.Owned
	}
	for _, l := range p.Liabilities {
		worth -= int(math.Round(l.Amount))
	}
	return worth
}

// TotalDebt is the sum of a player's outstanding liability principals.
func TotalDebt(p Player) float64 {
	total := 0.0
	for _, l := range p.Liabilities {
		total += l.Amount
	}
	return total
}

// SolventPlayers returns the players still in the game.
func SolventPlayers(gs *GameState) []Player {
	active := make([]Player, 0, len(gs.Players))
	for _, p := range gs.Players {
		if !p.Bankrupt {
			active = append(active, p)
		}
	}
	return active
}

// MonthlyCashFlow is the net cash a player gains or loses at each
// settlement before interest accrual: salary plus passive income minus
// recurring expenses and minimum payments.
func MonthlyCashFlow(p Player) int {
	flow := p.Salary + p.PassiveIncome - p.Expenses
	for _, l := range p.Liabilities {
		flow -= l.MinimumPayment
	}
	return flow
}
