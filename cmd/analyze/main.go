// Command analyze prints quick, human-readable heuristics about rule-set
// files in the project's configs directory. It summarizes the economy, asset
// payback periods, the cheapest route to the freedom target, and the net
// cash effect of one lap around the board.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
)

// AnalysisConfig is a light struct for reading rule-set files used by analysis.
type AnalysisConfig struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	StartingCash     int    `json:"starting_cash"`
	StartingSalary   int    `json:"starting_salary"`
	BaselineExpenses int    `json:"baseline_expenses"`
	PassingGoAmount  int    `json:"passing_go_amount"`
	FreedomAmount    int    `json:"freedom_amount"`
	MinPlayers       int    `json:"min_players"`
	MaxPlayers       int    `json:"max_players"`
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No rule sets found in %s\n", configDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeConfig(file)
	}

	fmt.Printf("\n=== Asset Catalog ===\n")
	analyzeCatalog()

	fmt.Printf("\n=== Board ===\n")
	analyzeBoard()
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Starting Cash: %d, Salary: %d, Expenses: %d\n",
		config.StartingCash, config.StartingSalary, config.BaselineExpenses)
	fmt.Printf("Passing GO: %d, Freedom Target: %d\n", config.PassingGoAmount, config.FreedomAmount)
	fmt.Printf("Players: %d-%d\n", config.MinPlayers, config.MaxPlayers)

	starter := engine.Player{Salary: config.StartingSalary, Expenses: config.BaselineExpenses}
	surplus := engine.MonthlyCashFlow(starter)
	fmt.Printf("Monthly surplus before investments: %d\n", surplus)
	if surplus <= 0 {
		fmt.Printf("⚠️  WARNING: players lose cash every settlement until they buy assets\n")
	}

	// Cheapest route to the freedom target using the best income-per-cost asset
	catalog := engine.GenerateAssetCatalog()
	var best engine.Asset
	bestRatio := 0.0
	for _, asset := range catalog {
		if asset.Cost > 0 && float64(asset.CashFlow)/float64(asset.Cost) > bestRatio {
			bestRatio = float64(asset.CashFlow) / float64(asset.Cost)
			best = asset
		}
	}
	if best.CashFlow > 0 {
		units := (config.FreedomAmount + best.CashFlow - 1) / best.CashFlow
		fmt.Printf("Fastest freedom: %d units of %s (capital %d)\n", units, best.Name, units*best.Cost)
	}
}

func analyzeCatalog() {
	catalog := engine.GenerateAssetCatalog()

	// Sort by payback period, best investments first
	sort.Slice(catalog, func(i, j int) bool {
		return float64(catalog[i].Cost)/float64(catalog[i].CashFlow) <
			float64(catalog[j].Cost)/float64(catalog[j].CashFlow)
	})

	fmt.Printf("%-12s %-24s %8s %10s %10s\n", "ID", "Name", "Cost", "Cash Flow", "Payback")
	for _, asset := range catalog {
		payback := float64(asset.Cost) / float64(asset.CashFlow)
		fmt.Printf("%-12s %-24s %8d %10d %9.1fr\n",
			asset.ID, asset.Name, asset.Cost, asset.CashFlow, payback)
	}
}

func analyzeBoard() {
	board := engine.GenerateBoard()

	counts := map[engine.TileCategory]int{}
	fixedCredit := 0
	fixedDebit := 0

	for _, tile := range board {
		counts[tile.Category]++
		switch tile.Effect.Kind {
		case engine.EffectCashCredit:
			fixedCredit += tile.Effect.Amount
		case engine.EffectCashDebit, engine.EffectInvestmentOutlay:
			fixedDebit += tile.Effect.Amount
		}
	}

	fmt.Printf("Tiles: %d\n", len(board))
	for _, cat := range []engine.TileCategory{
		engine.TileGo, engine.TileIncome, engine.TileExpense, engine.TileInvestment,
		engine.TileOpportunity, engine.TileRisk, engine.TileEvent,
	} {
		fmt.Printf("  %-12s %d\n", cat, counts[cat])
	}

	fmt.Printf("Fixed cash credits on the board: %d\n", fixedCredit)
	fmt.Printf("Fixed cash debits on the board: %d\n", fixedDebit)
	fmt.Printf("Net fixed cash per full board sweep: %+d\n", fixedCredit-fixedDebit)

	avgRoll := float64(engine.MinRoll+engine.MaxRoll) / 2.0
	tilesPerLap := float64(engine.BoardSize)
	fmt.Printf("Average landings per lap: %.1f (avg roll %.1f)\n", tilesPerLap/avgRoll, avgRoll)
}
