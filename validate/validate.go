// Command validate provides a small CLI that validates rule-set JSON files
// in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Non-negative economy values and a positive freedom target
//   - Player count bounds
//   - Turn-one solvency (baseline expenses covered by starting cash + salary)
//   - Catalog affordability (starting cash buys at least the cheapest asset)
//   - Freedom attainability (the catalog can produce enough passive income)
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
)

// Config mirrors the JSON schema for a rule set.
type Config struct {
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

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single rule-set JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Required fields
	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	// Economy values
	if config.StartingCash < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_cash must not be negative, got %d", config.StartingCash))
	}
	if config.StartingSalary < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_salary must not be negative, got %d", config.StartingSalary))
	}
	if config.BaselineExpenses < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("baseline_expenses must not be negative, got %d", config.BaselineExpenses))
	}
	if config.PassingGoAmount < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("passing_go_amount must not be negative, got %d", config.PassingGoAmount))
	}
	if config.FreedomAmount <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("freedom_amount must be positive, got %d", config.FreedomAmount))
	}

	// Player bounds
	if config.MinPlayers < engine.MinPlayers {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("min_players must be at least %d, got %d", engine.MinPlayers, config.MinPlayers))
	}
	if config.MaxPlayers > engine.MaxPlayers {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_players must be at most %d, got %d", engine.MaxPlayers, config.MaxPlayers))
	}
	if config.MinPlayers > config.MaxPlayers {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("min_players (%d) cannot exceed max_players (%d)", config.MinPlayers, config.MaxPlayers))
	}

	// Playability checks against the board economy
	if config.BaselineExpenses > config.StartingCash+config.StartingSalary {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("baseline_expenses (%d) exceed starting cash + salary (%d): players go broke on turn one",
			config.BaselineExpenses, config.StartingCash+config.StartingSalary))
	}

	catalog := engine.GenerateAssetCatalog()
	if playability := validateCatalogFit(&config, catalog); !playability.Valid {
		result.Valid = false
		result.Errors = append(result.Errors, playability.Errors...)
	} else if result.Valid {
		result.Errors = append(result.Errors, playability.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Economy: cash %d, salary %d, expenses %d", config.StartingCash, config.StartingSalary, config.BaselineExpenses))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Passing GO: %d", config.PassingGoAmount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Freedom target: %d", config.FreedomAmount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d-%d", config.MinPlayers, config.MaxPlayers))
	}

	return result
}

// validateCatalogFit checks the rule set against the shared asset catalog:
// the starting stake must afford at least one asset, and the catalog's best
// income-per-cost asset must make the freedom target attainable in a sane
// number of purchases.
func validateCatalogFit(config *Config, catalog []engine.Asset) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if len(catalog) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Asset catalog is empty")
		return result
	}

	cheapest := catalog[0]
	var best engine.Asset
	bestRatio := 0.0
	for _, asset := range catalog {
		if asset.Cost < cheapest.Cost {
			cheapest = asset
		}
		if asset.Cost > 0 {
			ratio := float64(asset.CashFlow) / float64(asset.Cost)
			if ratio > bestRatio {
				bestRatio = ratio
				best = asset
			}
		}
	}

	if config.StartingCash < cheapest.Cost {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_cash (%d) cannot afford the cheapest asset (%s at %d)",
			config.StartingCash, cheapest.Name, cheapest.Cost))
	}

	if bestRatio <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "No catalog asset produces positive cash flow; freedom target unattainable")
		return result
	}

	// Units of the best asset needed to hit the freedom target
	units := (config.FreedomAmount + best.CashFlow - 1) / best.CashFlow
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Attainability: %d units of %s reach the freedom target (capital %d)",
			units, best.Name, units*best.Cost))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
