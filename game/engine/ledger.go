package engine

import "math"

// RecomputePassiveIncome derives the player's passive income from the
// owned portfolio. Passive income is never adjusted incrementally;
// every mutation of the portfolio re-derives it here so the figure can
// not drift from the holdings.
func RecomputePassiveIncome(p Player) Player {
	total := 0
	for _, a := range p.Assets {
		total += a.CashFlow * a.Owned
	}
	p.PassiveIncome = total
	return p
}

// CountHoldings returns the number of distinct owned-asset records of
// the given category. Multiple units of the same asset count once;
// category tiles pay per holding, not per unit.
func CountHoldings(p Player, category AssetCategory) int {
	count := 0
	for _, a := range p.Assets {
		if a.Category == category {
			count++
		}
	}
	return count
}

// SaleMultiplier returns the fraction of an asset's cost recovered on
// sale under the given market condition.
func SaleMultiplier(mc MarketCondition) float64 {
	switch mc {
	case MarketBull:
		return BullSaleMultiplier
	case MarketBear:
		return BearSaleMultiplier
	default:
		return NeutralSaleMultiplier
	}
}

// LiquidationValue is the total cash a player could raise by forced
// liquidation of the whole portfolio at the liquidation rate.
func LiquidationValue(p Player) int {
	total := 0.0
	for _, a := range p.Assets {
		total += float64(a.Cost*a.Owned) * LiquidationRate
	}
	return int(math.Round(total))
}

// BuyAsset buys one unit of the catalog asset for a copy of p. It
// returns the updated player and true when the purchase applied, or the
// input unchanged and false when the asset is unknown or the player
// cannot afford it.
func BuyAsset(p Player, catalog []Asset, assetID string) (Player, bool) {
	var asset *Asset
	for i := range catalog {
		if catalog[i].ID == assetID {
			asset = &catalog[i]
			break
		}
	}
	if asset == nil {
		return p, false
	}
	if p.Cash < asset.Cost {
		return p, false
	}

	updated := clonePlayer(p)
	updated.Cash -= asset.Cost

	found := false
	for i := range updated.Assets {
		if updated.Assets[i].ID == assetID {
			updated.Assets[i].Owned++
			found = true
			break
		}
	}
	if !found {
		holding := *asset
		holding.Owned = 1
		updated.Assets = append(updated.Assets, holding)
	}

	updated = RecomputePassiveIncome(updated)
	updated.TurnHistory = append(updated.TurnHistory, HistoryEvent{Type: EventInvestment, Name: "Bought " + asset.Name, Amount: asset.Cost})
	return updated, true
}

// SellAsset sells one unit of an owned asset at the market-dependent
// multiple of its cost. The last unit removes the holding record. It
// returns the input unchanged and false when the player does not own
// the asset.
func SellAsset(p Player, assetID string, mc MarketCondition) (Player, bool) {
	idx := -1
	for i := range p.Assets {
		if p.Assets[i].ID == assetID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return p, false
	}

	updated := clonePlayer(p)
	asset := updated.Assets[idx]
	saleValue := int(math.Round(float64(asset.Cost) * SaleMultiplier(mc)))

	updated.Assets[idx].Owned--
	updated.Cash += saleValue
	if updated.Assets[idx].Owned <= 0 {
		updated.Assets = append(updated.Assets[:idx], updated.Assets[idx+1:]...)
	}

	updated = RecomputePassiveIncome(updated)
	updated.TurnHistory = append(updated.TurnHistory, HistoryEvent{Type: EventIncome, Name: "Sold " + asset.Name, Amount: saleValue})
	return updated, true
}

// PayDebt pays amount toward the identified liability. Overpayment is
// allowed; a principal driven to zero or below removes the liability
// and takes its minimum payment out of the player's recurring expenses.
// It returns the input unchanged and false when the liability is
// unknown, the amount is not positive, or cash cannot cover it.
func PayDebt(p Player, liabilityID string, amount int) (Player, bool) {
	if amount <= 0 {
		return p, false
	}
	idx := -1
	for i := range p.Liabilities {
		if p.Liabilities[i].ID == liabilityID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return p, false
	}
	if p.Cash < amount {
		return p, false
	}

	updated := clonePlayer(p)
	liability := &updated.Liabilities[idx]

	updated.Cash -= amount
	liability.Amount -= float64(amount)

	name := liability.Name
	if liability.Amount <= 0 {
		updated.Expenses -= liability.MinimumPayment
		updated.Liabilities = append(updated.Liabilities[:idx], updated.Liabilities[idx+1:]...)
	}
	updated.IsInDebt = len(updated.Liabilities) > 0

	updated.TurnHistory = append(updated.TurnHistory, HistoryEvent{Type: EventExpense, Name: "Paid debt: " + name, Amount: amount})
	return updated, true
}

// clonePlayer deep-copies a player so callers can mutate the copy
// without aliasing the slices of the original.
func clonePlayer(p Player) Player {
	out := p
	if p.Assets != nil {
		out.Assets = make([]Asset, len(p.Assets))
		copy(out.Assets, p.Assets)
	}
	if p.Liabilities != nil {
		out.Liabilities = make([]Liability, len(p.Liabilities))
		copy(out.Liabilities, p.Liabilities)
	}
	if p.TurnHistory != nil {
		out.TurnHistory = make([]HistoryEvent, len(p.TurnHistory))
		copy(out.TurnHistory, p.TurnHistory)
	}
	return out
}
