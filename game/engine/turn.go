package engine

import "math/rand"

// ResolveRoll advances the current player by roll tiles, grants the
// passing-GO bonus when the position wraps, applies the landed tile's
// effect, and checks the financial-freedom win condition. It reports
// whether the roll applied; rolls outside [MinRoll, MaxRoll], rolls in
// the wrong phase, and rolls after the game finished leave the state
// untouched.
//
// Winning by passive income is only checked here: trades and debt
// payments alone never finish the game until the player's next roll.
func (gs *GameState) ResolveRoll(roll int) bool {
	if roll < MinRoll || roll > MaxRoll {
		return false
	}
	if !gs.GameStarted || gs.GameFinished || gs.Phase != PhaseAwaitingRoll {
		return false
	}

	player := clonePlayer(gs.Players[gs.CurrentPlayerIndex])
	oldPosition := player.Position
	player.Position = (player.Position + roll) % gs.BoardSize

	if player.Position < oldPosition {
		player.Cash += gs.PassingGoAmount
		player.TurnHistory = append(player.TurnHistory, HistoryEvent{Type: EventPassedGo, Name: "Passed GO", Amount: gs.PassingGoAmount})
	}

	tile := gs.Tiles[player.Position]
	player = ApplyTileEffect(player, tile, gs)

	gs.Players[gs.CurrentPlayerIndex] = player
	gs.Phase = PhaseAwaitingEndTurn

	if player.PassiveIncome >= gs.FreedomAmount {
		winner := clonePlayer(player)
		gs.GameFinished = true
		gs.Winner = &winner
		gs.Phase = PhaseGameOver
		gs.Events = append(gs.Events, HistoryEvent{Type: EventVictory, Name: player.Name, Amount: player.PassiveIncome})
	}
	return true
}

// SettleEndTurn settles the current player's books and hands the turn
// to the next solvent player. Settlement credits salary and passive
// income, debits recurring expenses, accrues one month of interest on
// every liability and debits its minimum payment, then checks for
// bankruptcy: a player whose negative cash exceeds the liquidation
// value of their portfolio is permanently out.
//
// Rotation skips bankrupt players. When the turn wraps back to the
// start of the order a new round begins and the market condition is
// re-rolled from rng. If only one solvent player remains the game ends
// with that player as winner. It reports whether the settlement
// applied; the wrong phase or a finished game is a no-op.
func (gs *GameState) SettleEndTurn(rng *rand.Rand) bool {
	if !gs.GameStarted || gs.GameFinished || gs.Phase != PhaseAwaitingEndTurn {
		return false
	}

	player := clonePlayer(gs.Players[gs.CurrentPlayerIndex])

	player.Cash += MonthlyCashFlow(player)

	for i := range player.Liabilities {
		liability := &player.Liabilities[i]
		liability.Amount += liability.Amount * (liability.InterestRate / 100 / 12)
	}

	if player.Cash < 0 {
		player.IsInDebt = true
		if -player.Cash > LiquidationValue(player) {
			player.Bankrupt = true
			player.TurnHistory = append(player.TurnHistory, HistoryEvent{Type: EventBankrupt, Name: player.Name})
			gs.Events = append(gs.Events, HistoryEvent{Type: EventBankrupt, Name: player.Name})
		}
	}

	gs.Players[gs.CurrentPlayerIndex] = player

	nextIndex := (gs.CurrentPlayerIndex + 1) % len(gs.Players)
	for nextIndex != gs.CurrentPlayerIndex && gs.Players[nextIndex].Bankrupt {
		nextIndex = (nextIndex + 1) % len(gs.Players)
	}

	if nextIndex <= gs.CurrentPlayerIndex {
		gs.Round++
		gs.MarketCondition = rollMarketCondition(rng)
		gs.Events = append(gs.Events, HistoryEvent{Type: EventNewRound, Name: string(gs.MarketCondition), Amount: gs.Round})
	}
	gs.CurrentPlayerIndex = nextIndex
	gs.Phase = PhaseAwaitingRoll

	active := SolventPlayers(gs)
	if len(active) == 1 {
		winner := clonePlayer(active[0])
		gs.GameFinished = true
		gs.Winner = &winner
		gs.Phase = PhaseGameOver
		gs.Events = append(gs.Events, HistoryEvent{Type: EventVictory, Name: winner.Name, Amount: winner.PassiveIncome})
	}
	return true
}

// rollMarketCondition picks the next round's market condition uniformly
// at random.
func rollMarketCondition(rng *rand.Rand) MarketCondition {
	conditions := []MarketCondition{MarketBull, MarketBear, MarketNeutral}
	return conditions[rng.Intn(len(conditions))]
}
