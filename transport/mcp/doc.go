// Package mcp provides a Model Context Protocol server for Cashflow Tycoon.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game operation
//   - Session-aware command execution
//
// The client is a thin proxy: every tool call is translated into a REST
// API request against a running game server, and the JSON response is
// rendered as human-readable text for the agent.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session / get_session / list_sessions: Session management
//   - start_game: Start a game with 2-6 named players
//   - game_state: Get current game state with a player-by-player summary
//   - roll_dice: Roll and resolve the landing tile for the current player
//   - buy_asset / sell_asset: Trade catalog assets
//   - pay_debt: Retire liability principal
//   - end_turn: Settle the month and rotate the turn
//   - reset_game: Reset game to initial state
//   - turn_history: Retrieve a player's turn events with pagination
//   - save_game / load_game / list_saves: Named save slots
//   - list_configs: List available rule sets
//   - game_instructions: Comprehensive game rules
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play the game
//   - Develop and test investment strategies
//   - Manage multiple game sessions
//   - Learn from turn history
package mcp
