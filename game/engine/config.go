package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GameConfig is a rule set for a game session. Rule sets are stored as
// JSON files in the configs directory and tune the economy without
// touching the board or asset catalog.
type GameConfig struct {
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

// DefaultGameConfig returns the classic rule set.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:             "classic",
		Description:      "The classic race to financial freedom",
		StartingCash:     DefaultStartingCash,
		StartingSalary:   DefaultStartingSalary,
		BaselineExpenses: DefaultBaselineExpenses,
		PassingGoAmount:  DefaultPassingGoAmount,
		FreedomAmount:    DefaultFreedomAmount,
		MinPlayers:       MinPlayers,
		MaxPlayers:       MaxPlayers,
	}
}

// ValidateGameConfig validates a rule set for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate economy settings
	if config.StartingCash < 0 {
		return fmt.Errorf("config validation: starting_cash must not be negative, got %d", config.StartingCash)
	}
	if config.StartingSalary < 0 {
		return fmt.Errorf("config validation: starting_salary must not be negative, got %d", config.StartingSalary)
	}
	if config.BaselineExpenses < 0 {
		return fmt.Errorf("config validation: baseline_expenses must not be negative, got %d", config.BaselineExpenses)
	}
	if config.PassingGoAmount < 0 {
		return fmt.Errorf("config validation: passing_go_amount must not be negative, got %d", config.PassingGoAmount)
	}
	if config.FreedomAmount <= 0 {
		return fmt.Errorf("config validation: freedom_amount must be positive, got %d", config.FreedomAmount)
	}

	// Validate player limits
	if config.MinPlayers < MinPlayers {
		return fmt.Errorf("config validation: min_players must be at least %d, got %d", MinPlayers, config.MinPlayers)
	}
	if config.MaxPlayers > MaxPlayers {
		return fmt.Errorf("config validation: max_players must be at most %d, got %d", MaxPlayers, config.MaxPlayers)
	}
	if config.MinPlayers > config.MaxPlayers {
		return fmt.Errorf("config validation: min_players (%d) must not exceed max_players (%d)", config.MinPlayers, config.MaxPlayers)
	}

	// Validate playability - a player who does nothing on turn one must
	// survive their first settlement, otherwise every game ends in
	// instant mass bankruptcy
	if config.StartingCash+config.StartingSalary < config.BaselineExpenses {
		return fmt.Errorf("config validation: baseline_expenses (%d) exceeds starting_cash + starting_salary (%d) - players go bankrupt on turn one",
			config.BaselineExpenses, config.StartingCash+config.StartingSalary)
	}

	// Validate affordability - at least one catalog asset must be within
	// reach of the starting cash or passive income can never grow
	cheapest := 0
	for _, asset := range GenerateAssetCatalog() {
		if cheapest == 0 || asset.Cost < cheapest {
			cheapest = asset.Cost
		}
	}
	if config.StartingCash < cheapest {
		return fmt.Errorf("config validation: starting_cash (%d) cannot afford any catalog asset (cheapest costs %d)",
			config.StartingCash, cheapest)
	}

	// Validate the target - if a single purchase can cross the freedom
	// threshold the race is over in one move
	biggestFlow := 0
	for _, asset := range GenerateAssetCatalog() {
		if asset.CashFlow > biggestFlow {
			biggestFlow = asset.CashFlow
		}
	}
	if config.FreedomAmount <= biggestFlow {
		return fmt.Errorf("config validation: freedom_amount (%d) must exceed the largest catalog cash flow (%d) or a single purchase wins",
			config.FreedomAmount, biggestFlow)
	}

	return nil
}

// LoadGameConfig loads a rule set from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a rule set by name from the configs directory
func LoadConfigByName(configName string) (*GameConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// InitGameStateFromConfig creates a fresh, not-yet-started game state
// using the provided rule set
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}

	return &GameState{
		Players:            []Player{},
		CurrentPlayerIndex: 0,
		Tiles:              GenerateBoard(),
		BoardSize:          BoardSize,
		GameStarted:        false,
		GameFinished:       false,
		Winner:             nil,
		Round:              1,
		Phase:              PhaseAwaitingRoll,
		PassingGoAmount:    config.PassingGoAmount,
		FreedomAmount:      config.FreedomAmount,
		AvailableAssets:    GenerateAssetCatalog(),
		MarketCondition:    MarketNeutral,
		Events:             []HistoryEvent{},
	}
}
