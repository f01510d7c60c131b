// Package api provides HTTP REST API handlers for Cashflow Tycoon.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Configuration listing and selection
//   - Save/load game functionality
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/start - Start game with {"players": ["Alice","Bob"]}
//   - POST /api/sessions/{id}/roll - Roll the dice ({"roll": n} to force a value)
//   - POST /api/sessions/{id}/buy - Buy an asset {"player_id", "asset_id"}
//   - POST /api/sessions/{id}/sell - Sell an asset {"player_id", "asset_id"}
//   - POST /api/sessions/{id}/pay-debt - Pay down a liability {"player_id", "liability_id", "amount"}
//   - POST /api/sessions/{id}/end-turn - Settle income/expenses and advance the turn
//   - POST /api/sessions/{id}/reset - Reset game to fresh state
//   - GET /api/sessions/{id}/players/{playerId}/history - Paginated turn history
//
// Save/Load:
//   - GET /api/saves - List saved games
//   - POST /api/sessions/{id}/saves - Save current game to a named slot
//   - POST /api/sessions/{id}/saves/{saveId} - Load a saved game into the session
//   - DELETE /api/saves/{saveId} - Delete a save slot
//
// Configuration:
//   - GET /api/configs - List available rule sets
//   - GET /api/configs/{name} - Get a specific rule set
//   - POST /api/configs - Save a new rule set
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Action responses carry an
// "applied" flag plus a machine-friendly "reason" code when the engine
// rejected the action without mutating state:
//
//	{
//	  "applied": false,
//	  "reason": "wrong_phase",
//	  "message": "roll not applied: wrong_phase",
//	  "game_state": { ... }
//	}
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Transport-level errors (unknown session, malformed body) are returned
// as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
