// Package engine provides the core game logic for Cashflow Tycoon.
//
// The engine package implements the game mechanics including:
//   - Board movement, the passing-GO bonus, and tile effects
//   - The per-player ledger: cash, salary, passive income, expenses,
//     assets, and liabilities
//   - Turn phases, end-of-turn settlement, and interest accrual
//   - Market conditions, bankruptcy, and the two win conditions
//   - Rule-set loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines the economy rule set loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := gameEngine.Initialize([]string{"Ada", "Grace"}); err != nil {
//		log.Fatal(err)
//	}
//	gameEngine.RollDice(4)
//	gameEngine.EndTurn()
//
// Game Rules:
//
// Players race around a 24-tile board buying income-generating assets and
// servicing debt. Landing tiles credit or debit cash, shift the market, or
// grant liabilities. A player wins by raising passive income to the
// financial-freedom target, or by being the last solvent player once
// everyone else has gone bankrupt.
package engine
