// Package service provides the business logic layer for Cashflow Tycoon.
//
// The service package implements:
//   - Multi-session game management
//   - Rule-set management and loading
//   - Player action processing with explicit applied/reason results
//   - Named save slots
//   - Turn history pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages rule-set loading and validation.
// SlotManager stores named game-state snapshots.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, rule-set management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state.
//
// Action results carry an Applied flag plus a machine-friendly Reason code
// when an action did not apply (wrong phase, insufficient funds, unknown
// ids). The engine itself treats those cases as no-ops; the service layer
// diagnoses them so clients can explain what happened.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	slots, _ := session.NewSlotStore("saves")
//	gameService := service.NewGameService(sessionMgr, configMgr, slots)
//
//	// Create a session and start a game
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, err = gameService.StartGame(ctx, sessionInfo.ID, []string{"Ada", "Grace"})
//
//	// Play a turn
//	rollResult, err := gameService.RollDice(ctx, sessionInfo.ID, 4)
//	endResult, err := gameService.EndTurn(ctx, sessionInfo.ID)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different rule
// sets. Sessions track creation time and last access time, and are
// persisted after every mutating action.
package service
