package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpfile.Write([]byte(body)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func hasError(result ValidationResult, fragment string) bool {
	for _, err := range result.Errors {
		if strings.Contains(err, fragment) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Test Rules",
		"description": "Test rule set",
		"starting_cash": 2000,
		"starting_salary": 1000,
		"baseline_expenses": 500,
		"passing_go_amount": 1000,
		"freedom_amount": 5000,
		"min_players": 2,
		"max_players": 6
	}`)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	if !hasError(result, "✓ Attainability") {
		t.Errorf("Expected attainability info line, got: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	if !hasError(result, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	if !hasError(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_MissingRequiredFields(t *testing.T) {
	path := writeTempConfig(t, `{
		"starting_cash": 2000,
		"starting_salary": 1000,
		"baseline_expenses": 500,
		"passing_go_amount": 1000,
		"freedom_amount": 5000,
		"min_players": 2,
		"max_players": 6
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config without name/description")
	}

	if !hasError(result, "Missing required field: name") {
		t.Errorf("Expected missing name error, got: %v", result.Errors)
	}
	if !hasError(result, "Missing required field: description") {
		t.Errorf("Expected missing description error, got: %v", result.Errors)
	}
}

func TestValidateConfig_NegativeEconomy(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Broken",
		"description": "Negative economy",
		"starting_cash": -100,
		"starting_salary": 1000,
		"baseline_expenses": 500,
		"passing_go_amount": 1000,
		"freedom_amount": 0,
		"min_players": 2,
		"max_players": 6
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config with negative cash")
	}

	if !hasError(result, "starting_cash must not be negative") {
		t.Errorf("Expected negative cash error, got: %v", result.Errors)
	}
	if !hasError(result, "freedom_amount must be positive") {
		t.Errorf("Expected freedom error, got: %v", result.Errors)
	}
}

func TestValidateConfig_PlayerBounds(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Crowded",
		"description": "Too many players",
		"starting_cash": 2000,
		"starting_salary": 1000,
		"baseline_expenses": 500,
		"passing_go_amount": 1000,
		"freedom_amount": 5000,
		"min_players": 5,
		"max_players": 3
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config with min > max players")
	}

	if !hasError(result, "min_players (5) cannot exceed max_players (3)") {
		t.Errorf("Expected player bound error, got: %v", result.Errors)
	}
}

func TestValidateConfig_TurnOneInsolvency(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Crushing",
		"description": "Expenses outrun income",
		"starting_cash": 2000,
		"starting_salary": 1000,
		"baseline_expenses": 4000,
		"passing_go_amount": 1000,
		"freedom_amount": 5000,
		"min_players": 2,
		"max_players": 6
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config when expenses exceed starting income")
	}

	if !hasError(result, "players go broke on turn one") {
		t.Errorf("Expected solvency error, got: %v", result.Errors)
	}
}

func TestValidateConfig_CannotAffordCatalog(t *testing.T) {
	// Cheapest catalog asset costs 300
	path := writeTempConfig(t, `{
		"name": "Pauper",
		"description": "Cannot buy anything",
		"starting_cash": 100,
		"starting_salary": 1000,
		"baseline_expenses": 500,
		"passing_go_amount": 1000,
		"freedom_amount": 5000,
		"min_players": 2,
		"max_players": 6
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config when starting cash affords no asset")
	}

	if !hasError(result, "cannot afford the cheapest asset") {
		t.Errorf("Expected affordability error, got: %v", result.Errors)
	}
}
