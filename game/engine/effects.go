package engine

import (
	"fmt"
	"math"
)

// EffectKind tags the behavior a tile applies on landing. Tiles carry
// only the tag and its parameters; the behavior lives in the dispatch
// table below and is never serialized.
type EffectKind string

const (
	// EffectNone is the identity effect (the GO tile). The passing-GO
	// bonus is granted by movement, not by landing.
	EffectNone EffectKind = "none"

	// EffectCashCredit credits Amount to the player's cash.
	EffectCashCredit EffectKind = "cash_credit"

	// EffectCashDebit debits Amount from the player's cash.
	EffectCashDebit EffectKind = "cash_debit"

	// EffectCategoryCredit credits PerHolding for each owned-asset
	// record of Category (distinct holdings, not units).
	EffectCategoryCredit EffectKind = "category_credit"

	// EffectCategoryDebit debits PerHolding per owned-asset record of
	// Category.
	EffectCategoryDebit EffectKind = "category_debit"

	// EffectOpportunity records an opportunity event only; the actual
	// purchase happens through the asset store, decoupled from landing.
	EffectOpportunity EffectKind = "opportunity"

	// EffectInvestmentOutlay debits Amount and logs an investment event.
	EffectInvestmentOutlay EffectKind = "investment_outlay"

	// EffectMarketScale scales every owned asset's cash flow by Factor
	// and recomputes passive income.
	EffectMarketScale EffectKind = "market_scale"

	// EffectSalaryLoss zeroes the player's salary.
	EffectSalaryLoss EffectKind = "salary_loss"

	// EffectSalaryRaise raises salary by Rate (fraction, rounded).
	EffectSalaryRaise EffectKind = "salary_raise"

	// EffectCashPenaltyRate debits Rate of current cash (rounded).
	EffectCashPenaltyRate EffectKind = "cash_penalty_rate"

	// EffectGrantLiability appends a new liability with the tile's
	// terms and adds its minimum payment to recurring expenses.
	EffectGrantLiability EffectKind = "grant_liability"

	// EffectLoanPayments debits the sum of all active liabilities'
	// minimum payments.
	EffectLoanPayments EffectKind = "loan_payments"
)

// EffectSpec parameterizes a tile effect. Unused fields stay zero.
type EffectSpec struct {
	Kind           EffectKind    `json:"kind"`
	Amount         int           `json:"amount,omitempty"`
	Rate           float64       `json:"rate,omitempty"`
	Factor         float64       `json:"factor,omitempty"`
	PerHolding     int           `json:"per_holding,omitempty"`
	Category       AssetCategory `json:"category,omitempty"`
	LiabilityName  string        `json:"liability_name,omitempty"`
	MinimumPayment int           `json:"minimum_payment,omitempty"`
}

// effectFunc applies one tile's effect to a player copy. The game state
// is consulted for shared context (and the liability sequence counter);
// players other than the copy are never touched.
type effectFunc func(p Player, tile Tile, gs *GameState) Player

var effectTable = map[EffectKind]effectFunc{
	EffectNone:             applyNone,
	EffectCashCredit:       applyCashCredit,
	EffectCashDebit:        applyCashDebit,
	EffectCategoryCredit:   applyCategoryCredit,
	EffectCategoryDebit:    applyCategoryDebit,
	EffectOpportunity:      applyOpportunity,
	EffectInvestmentOutlay: applyInvestmentOutlay,
	EffectMarketScale:      applyMarketScale,
	EffectSalaryLoss:       applySalaryLoss,
	EffectSalaryRaise:      applySalaryRaise,
	EffectCashPenaltyRate:  applyCashPenaltyRate,
	EffectGrantLiability:   applyGrantLiability,
	EffectLoanPayments:     applyLoanPayments,
}

// ApplyTileEffect applies tile's effect to a copy of p and returns the
// updated player. Effects run exactly once per landing, synchronously,
// with no player choice involved. An unknown effect kind is an identity
// transformation.
func ApplyTileEffect(p Player, tile Tile, gs *GameState) Player {
	fn, ok := effectTable[tile.Effect.Kind]
	if !ok {
		return p
	}
	return fn(clonePlayer(p), tile, gs)
}

func applyNone(p Player, _ Tile, _ *GameState) Player {
	return p
}

func applyCashCredit(p Player, tile Tile, _ *GameState) Player {
	p.Cash += tile.Effect.Amount
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventIncome, Name: tile.Name, Amount: tile.Effect.Amount})
	return p
}

func applyCashDebit(p Player, tile Tile, _ *GameState) Player {
	p.Cash -= tile.Effect.Amount
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventExpense, Name: tile.Name, Amount: tile.Effect.Amount})
	return p
}

func applyCategoryCredit(p Player, tile Tile, _ *GameState) Player {
	amount := CountHoldings(p, tile.Effect.Category) * tile.Effect.PerHolding
	p.Cash += amount
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventIncome, Name: tile.Name, Amount: amount})
	return p
}

func applyCategoryDebit(p Player, tile Tile, _ *GameState) Player {
	amount := CountHoldings(p, tile.Effect.Category) * tile.Effect.PerHolding
	p.Cash -= amount
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventExpense, Name: tile.Name, Amount: amount})
	return p
}

func applyOpportunity(p Player, tile Tile, _ *GameState) Player {
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventOpportunity, Name: tile.Name})
	return p
}

func applyInvestmentOutlay(p Player, tile Tile, _ *GameState) Player {
	p.Cash -= tile.Effect.Amount
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventInvestment, Name: tile.Name, Amount: tile.Effect.Amount})
	return p
}

func applyMarketScale(p Player, tile Tile, _ *GameState) Player {
	for i := range p.Assets {
		p.Assets[i].CashFlow = int(math.Round(float64(p.Assets[i].CashFlow) * tile.Effect.Factor))
	}
	p = RecomputePassiveIncome(p)

	eventType := EventEvent
	if tile.Category == TileRisk {
		eventType = EventRisk
	}
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: eventType, Name: tile.Name})
	return p
}

func applySalaryLoss(p Player, tile Tile, _ *GameState) Player {
	oldSalary := p.Salary
	p.Salary = 0
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventRisk, Name: tile.Name, Amount: oldSalary})
	return p
}

func applySalaryRaise(p Player, tile Tile, _ *GameState) Player {
	increase := int(math.Round(float64(p.Salary) * tile.Effect.Rate))
	p.Salary += increase
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventOpportunity, Name: tile.Name, Amount: increase})
	return p
}

func applyCashPenaltyRate(p Player, tile Tile, _ *GameState) Player {
	penalty := int(math.Round(float64(p.Cash) * tile.Effect.Rate))
	p.Cash -= penalty
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventEvent, Name: tile.Name, Amount: penalty})
	return p
}

func applyGrantLiability(p Player, tile Tile, gs *GameState) Player {
	gs.LiabilitySeq++
	debt := Liability{
		ID:             fmt.Sprintf("liability-%d", gs.LiabilitySeq),
		Name:           tile.Effect.LiabilityName,
		Amount:         float64(tile.Effect.Amount),
		InterestRate:   tile.Effect.Rate,
		MinimumPayment: tile.Effect.MinimumPayment,
	}

	p.Liabilities = append(p.Liabilities, debt)
	p.Expenses += debt.MinimumPayment
	p.IsInDebt = true
	p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventLiability, Name: tile.Name, Amount: tile.Effect.Amount})
	return p
}

func applyLoanPayments(p Player, tile Tile, _ *GameState) Player {
	amount := 0
	for _, l := range p.Liabilities {
		amount += l.MinimumPayment
	}
	if amount > 0 {
		p.Cash -= amount
		p.TurnHistory = append(p.TurnHistory, HistoryEvent{Type: EventExpense, Name: tile.Name, Amount: amount})
	}
	return p
}
