// Package config provides rule-set management for Cashflow Tycoon.
//
// The config package handles:
//   - Loading economy rule sets from JSON files
//   - Rule-set validation and verification
//   - Default rule-set management
//   - Rule-set discovery and listing
//
// Rule-Set Format:
//
// Rule sets are stored as JSON files in the configs directory. Each rule
// set defines:
//   - Starting player finances (cash, salary, baseline expenses)
//   - The passing-GO bonus and the financial-freedom target
//   - Player count limits
//
// The board layout and asset catalog are fixed; rule sets only tune the
// economy around them.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific rule set
//	gameConfig, err := manager.LoadConfig("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default rule set
//	defaultConfig := manager.GetDefault()
//
//	// List available rule sets
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All rule sets are validated for:
//   - Non-negative finances and a positive freedom target
//   - Player count limits within the engine's bounds
//   - A survivable first settlement for idle players
//   - At least one affordable catalog asset
package config
