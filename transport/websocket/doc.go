// Package websocket provides real-time state broadcasting for Cashflow Tycoon.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after each game action
//   - Connection lifecycle management with ping/pong keepalive
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines (readPump/writePump) that manage reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{
//	  "session_id": "ab12",
//	  "event": "state_update",
//	  "game_state": { ... }
//	}
//
// Clients do not send game actions over the socket; actions go through the
// REST API and the resulting state is pushed to every watcher of the session.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12) when
// establishing the connection. State updates are broadcast only to clients
// connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a game action:
//	hub.BroadcastToSession(sessionID, state)
//
// Concurrency:
//
// The hub is safe for concurrent use. Broadcasts from HTTP handlers and
// register/unregister events from connection goroutines may interleave
// freely; a slow client whose send buffer fills is dropped rather than
// blocking the broadcast.
package websocket
