package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
	"github.com/playcashflow/cashflow-tycoon/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Cashflow Tycoon",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Cashflow Tycoon - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Be the first player to reach financial freedom: build enough passive income
from assets to cover the freedom target before your rivals, or outlast them
when debt drives everyone else bankrupt.

AVAILABLE TOOLS:
- create_session: Create a new game session
- start_game: Start a game with a list of player names
- game_state: Get current game state
- roll_dice: Roll and move the current player - requires intent explanation
- buy_asset: Buy an asset from the catalog for a player
- sell_asset: Sell one unit of an owned asset at market price
- pay_debt: Pay down a liability
- end_turn: Settle income/expenses and pass the turn
- reset_game: Reset to initial state
- turn_history: View a player's past turn events
- save_game / load_game / list_saves: Named save slots
- get_session / list_sessions: Session management
- list_configs: List available rule sets
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on roll_dice serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional rule-set selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rule set to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "start_game",
		Description: "Start the game with 2-6 players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Player names in seating order",
				},
			},
			Required: []string{"session_id", "players"},
		},
	}, c.handleStartGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "roll_dice",
		Description: "Roll the dice and move the current player around the board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"roll": map[string]interface{}{
					"type":        "integer",
					"description": "Force a specific roll 1-6 (omit for random)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this turn (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRollDice)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_asset",
		Description: "Buy one unit of a catalog asset for a player",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID (e.g. player-1)",
				},
				"asset_id": map[string]interface{}{
					"type":        "string",
					"description": "Catalog asset ID (e.g. asset-re-1)",
				},
			},
			Required: []string{"session_id", "player_id", "asset_id"},
		},
	}, c.handleBuyAsset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "sell_asset",
		Description: "Sell one unit of an owned asset at the current market price",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
				"asset_id": map[string]interface{}{
					"type":        "string",
					"description": "Owned asset ID",
				},
			},
			Required: []string{"session_id", "player_id", "asset_id"},
		},
	}, c.handleSellAsset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pay_debt",
		Description: "Pay down a liability with cash",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
				"liability_id": map[string]interface{}{
					"type":        "string",
					"description": "Liability ID (e.g. liability-1)",
				},
				"amount": map[string]interface{}{
					"type":        "integer",
					"description": "Amount to pay",
				},
			},
			Required: []string{"session_id", "player_id", "liability_id", "amount"},
		},
	}, c.handlePayDebt)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "end_turn",
		Description: "Settle salary, passive income, expenses and debt, then pass the turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleEndTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "turn_history",
		Description: "Get a player's turn history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id", "player_id"},
		},
	}, c.handleTurnHistory)

	// Saved games
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "save_game",
		Description: "Save the current game to a named slot",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Save slot name (optional)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSaveGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "load_game",
		Description: "Load a saved game into a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"save_id": map[string]interface{}{
					"type":        "string",
					"description": "Save slot ID",
				},
			},
			Required: []string{"session_id", "save_id"},
		},
	}, c.handleLoadGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_saves",
		Description: "List all saved games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSaves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule sets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nRule set: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Rule set: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playersRaw, _ := args["players"].([]interface{})

	players := make([]string, 0, len(playersRaw))
	for _, p := range playersRaw {
		if name, ok := p.(string); ok {
			players = append(players, name)
		}
	}

	body := map[string]interface{}{
		"players": players,
	}

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/start", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRollDice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{}
	if roll, ok := args["roll"].(float64); ok {
		body["roll"] = int(roll)
	}

	var result service.RollResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/roll", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatRollResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBuyAsset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)
	assetID, _ := args["asset_id"].(string)

	body := map[string]interface{}{
		"player_id": playerID,
		"asset_id":  assetID,
	}

	var result service.TradeResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/buy", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTradeResult("Buy", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleSellAsset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)
	assetID, _ := args["asset_id"].(string)

	body := map[string]interface{}{
		"player_id": playerID,
		"asset_id":  assetID,
	}

	var result service.TradeResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/sell", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTradeResult("Sell", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePayDebt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)
	liabilityID, _ := args["liability_id"].(string)
	amount := 0
	if a, ok := args["amount"].(float64); ok {
		amount = int(a)
	}

	body := map[string]interface{}{
		"player_id":    playerID,
		"liability_id": liabilityID,
		"amount":       amount,
	}

	var result service.DebtResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/pay-debt", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatDebtResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.EndTurnResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/end-turn", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatEndTurnResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTurnHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/players/%s/history%s", sessionID, playerID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(playerID, &history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSaveGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	name, _ := args["name"].(string)

	body := map[string]interface{}{}
	if name != "" {
		body["name"] = name
	}

	var info service.SaveInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/saves", sessionID), body, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Saved game: %s\nSlot ID: %s\nRound: %d, Players: %d\n",
		info.Name, info.ID, info.Round, info.Players)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLoadGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	saveID, _ := args["save_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/saves/%s", sessionID, saveID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSaves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                 `json:"count"`
		Saves []*service.SaveInfo `json:"saves"`
	}

	err := c.apiCall("GET", "/api/saves", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Saved Games (%d):\n\n", response.Count)
	for _, s := range response.Saves {
		result += fmt.Sprintf("- %s: %s (Round %d, %d players, %s)\n",
			s.ID, s.Name, s.Round, s.Players, s.Date.Format("2006-01-02 15:04"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Rule Sets:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Starting cash: %d, Freedom target: %d, Max players: %d\n\n",
			config.Name, config.Description, config.StartingCash, config.FreedomAmount, config.MaxPlayers)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎲 Cashflow Tycoon - Complete Instructions

GAME OBJECTIVE:
Circle the 24-tile board building passive income from assets. The first
player whose passive income reaches the freedom target wins. If debt drives
every rival bankrupt, the last solvent player wins instead.

TURN STRUCTURE:
1. roll_dice - Move the current player 1-6 tiles and resolve the landing tile
2. (optional) buy_asset / sell_asset / pay_debt - Manage the portfolio
3. end_turn - Settle the month and pass the turn

MONTHLY SETTLEMENT (at end_turn):
• Cash += salary + passive income - expenses
• Each liability accrues monthly interest (rate/100/12) and charges its
  minimum payment from cash
• A player whose cash deficit exceeds what liquidating every asset at 50%
  of cost would raise goes BANKRUPT and is out of the game

BOARD TILES:
• GO - Collect the passing-GO bonus every time you complete a lap
• Income tiles (Side Hustle, Freelance Gig, Inheritance) - One-time cash
• Expense tiles (Car Repair, Medical Bills, Home Renovation) - One-time cost
• Investment tiles (Rental Income, Property Tax, Dividend Payout) - Pay or
  charge per holding of a given asset category
• Opportunity tiles - Remind you the asset catalog is always open
• Risk tiles (Market Crash, Job Loss, Tax Audit) - Bad surprises
• Event tiles (Economic Boom, New Job Offer, Credit Card Debt) - Market and
  career swings; Credit Card Debt saddles you with a new liability

MARKET CONDITIONS:
The market re-rolls each round: bull, bear, or neutral. It sets the resale
price of assets:
• Bull: sell at 80% of cost
• Neutral: sell at 65% of cost
• Bear: sell at 50% of cost
Market Crash multiplies every held asset's cash flow by 0.8; Economic Boom
multiplies it by 1.15.

ASSETS:
The catalog spans real estate, stocks, businesses and side hustles. Each
asset has a cost and a monthly cash flow. Buying stacks units of the same
asset; selling removes one unit at the market price. Passive income is the
sum of cash flow times units over everything you own.

LIABILITIES:
Debt accrues interest monthly and charges a minimum payment automatically.
Minimum payments never pay the debt off - use pay_debt to retire principal.
Clearing a liability also removes its minimum payment from your expenses.

🤖 AI AGENTS - STRATEGY NOTES:
• Buy early: every round an asset sits in the catalog is passive income lost
• Watch the market before selling - a bear market halves your resale price
• Pay debt down aggressively; 18% APR compounds every settlement
• Track the freedom target vs. your passive income to know how close you are
• Keep a cash buffer for expense and risk tiles (up to -600 in one landing)

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and rule set
- Use save_game/load_game for checkpointing long games

Good luck on the road to financial freedom! 💰📈`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nRule set: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	if !state.GameStarted {
		result.WriteString("Game not started yet. Use start_game with player names.\n")
		result.WriteString(fmt.Sprintf("Freedom target: %d | Passing GO bonus: %d\n",
			state.FreedomAmount, state.PassingGoAmount))
		return result.String()
	}

	result.WriteString(fmt.Sprintf("Round %d | Market: %s | Phase: %s\n\n",
		state.Round, state.MarketCondition, state.Phase))

	for i, p := range state.Players {
		marker := "  "
		if i == state.CurrentPlayerIndex {
			marker = "▶ "
		}
		status := ""
		if p.Bankrupt {
			status = " [BANKRUPT]"
		} else if p.IsInDebt {
			status = " [in debt]"
		}
		tile := ""
		if p.Position < len(state.Tiles) {
			tile = state.Tiles[p.Position].Name
		}
		result.WriteString(fmt.Sprintf("%s%s (%s)%s\n", marker, p.Name, p.ID, status))
		result.WriteString(fmt.Sprintf("  Position: %d (%s) | Cash: %d\n", p.Position, tile, p.Cash))
		result.WriteString(fmt.Sprintf("  Salary: %d | Passive: %d/%d | Expenses: %d\n",
			p.Salary, p.PassiveIncome, state.FreedomAmount, p.Expenses))
		result.WriteString(fmt.Sprintf("  Net worth: %d | Monthly flow: %+d\n",
			engine.NetWorth(p), engine.MonthlyCashFlow(p)))
		if len(p.Assets) > 0 {
			result.WriteString("  Assets:")
			for _, a := range p.Assets {
				result.WriteString(fmt.Sprintf(" %s x%d", a.Name, a.Owned))
			}
			result.WriteString("\n")
		}
		for _, l := range p.Liabilities {
			result.WriteString(fmt.Sprintf("  Debt: %s %.0f at %.0f%% (min %d) [%s]\n",
				l.Name, l.Amount, l.InterestRate, l.MinimumPayment, l.ID))
		}
		if len(p.Liabilities) > 1 {
			result.WriteString(fmt.Sprintf("  Total debt: %.0f\n", engine.TotalDebt(p)))
		}
		result.WriteString("\n")
	}

	if state.GameFinished {
		if state.Winner != nil {
			result.WriteString(fmt.Sprintf("🎉 %s WINS!\n", state.Winner.Name))
		} else {
			result.WriteString("💀 GAME OVER\n")
		}
	}

	return result.String()
}

func formatRollResult(result *service.RollResult) string {
	var b strings.Builder

	if result.Applied {
		b.WriteString("✓ Roll applied\n")
		b.WriteString(fmt.Sprintf("Rolled %d: position %d → %d, landed on %s\n",
			result.Roll, result.FromPosition, result.ToPosition, result.LandedTile))
		if result.PassedGo {
			b.WriteString("Passed GO!\n")
		}
		if result.CashDelta != 0 {
			b.WriteString(fmt.Sprintf("Cash change: %+d\n", result.CashDelta))
		}
	} else {
		b.WriteString(fmt.Sprintf("✗ Roll rejected: %s\n", result.Reason))
	}

	for _, event := range result.Events {
		b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatTradeResult(action string, result *service.TradeResult) string {
	var b strings.Builder

	if result.Applied {
		b.WriteString(fmt.Sprintf("✓ %s applied\n", action))
		b.WriteString(fmt.Sprintf("Cash change: %+d | Passive income now: %d\n",
			result.CashDelta, result.PassiveIncome))
	} else {
		b.WriteString(fmt.Sprintf("✗ %s rejected: %s\n", action, result.Reason))
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatDebtResult(result *service.DebtResult) string {
	var b strings.Builder

	if result.Applied {
		b.WriteString(fmt.Sprintf("✓ Paid %d toward %s\n", result.AmountPaid, result.LiabilityID))
		if result.Cleared {
			b.WriteString("Liability cleared!\n")
		} else {
			b.WriteString(fmt.Sprintf("Remaining: %.2f\n", result.Remaining))
		}
	} else {
		b.WriteString(fmt.Sprintf("✗ Payment rejected: %s\n", result.Reason))
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatEndTurnResult(result *service.EndTurnResult) string {
	var b strings.Builder

	if result.Applied {
		b.WriteString(fmt.Sprintf("✓ Turn ended for %s (cash %+d)\n",
			result.SettledPlayerID, result.CashDelta))
		if result.Bankrupted {
			b.WriteString(fmt.Sprintf("%s went BANKRUPT\n", result.SettledPlayerID))
		}
		if result.NewRound {
			b.WriteString(fmt.Sprintf("New round %d, market is now %s\n",
				result.Round, result.MarketCondition))
		}
		if result.NextPlayerID != "" {
			b.WriteString(fmt.Sprintf("Next up: %s\n", result.NextPlayerID))
		}
	} else {
		b.WriteString(fmt.Sprintf("✗ End turn rejected: %s\n", result.Reason))
	}

	for _, event := range result.Events {
		b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatHistory(playerID string, history *service.HistoryResponse) string {
	result := fmt.Sprintf("Turn History for %s (Page %d/%d) — Total events: %d\n\n",
		playerID, history.Page, history.TotalPages, history.TotalEvents)

	for i, event := range history.Events {
		num := (history.Page-1)*history.PageSize + i + 1
		if event.Amount != 0 {
			result += fmt.Sprintf("%d. [%s] %s (%d)\n", num, event.Type, event.Name, event.Amount)
		} else {
			result += fmt.Sprintf("%d. [%s] %s\n", num, event.Type, event.Name)
		}
	}

	return result
}
