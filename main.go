// Command cashflow-tycoon starts the Cashflow Tycoon game server.
//
// It supports two modes:
//  1. "serve" (default) – runs the HTTP server exposing the REST API, the
//     WebSocket hub, and an /mcp HTTP endpoint
//  2. "mcp" – runs an MCP stdio server, reusing an already-running HTTP API
//     when one is available and spinning up an internal one otherwise
//
// Flags control host/port, the config directory, and debug logging. A .env
// file in the working directory is loaded on startup when present.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/playcashflow/cashflow-tycoon/api"
	"github.com/playcashflow/cashflow-tycoon/game/config"
	"github.com/playcashflow/cashflow-tycoon/game/service"
	"github.com/playcashflow/cashflow-tycoon/game/session"
	"github.com/playcashflow/cashflow-tycoon/transport/mcp"
	"github.com/playcashflow/cashflow-tycoon/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Cashflow Tycoon Server"
)

// serverOptions carries the resolved CLI flags into the run functions.
type serverOptions struct {
	Host      string
	Port      int
	ConfigDir string
	SavesDir  string
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("Error loading .env file")
		}
	} else {
		log.Info().Msg("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "cashflow-tycoon",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Value: "localhost",
				Usage: "HTTP server host",
			},
			&cli.IntFlag{
				Name:  "port",
				Value: 8080,
				Usage: "HTTP server port",
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "Directory containing game configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "saves-dir",
				Value:   "saves",
				Usage:   "Directory containing saved games",
				Sources: cli.EnvVars("SAVES_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"http", "server"},
				Usage:   "Run the HTTP server with REST API, WebSocket, and MCP endpoint",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runHTTPServer(ctx, optionsFrom(cmd))
				},
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "Run an MCP stdio server backed by an internal or external HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStdioMCP(optionsFrom(cmd))
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// setupLogging configures the global zerolog logger. Logs go to stderr so the
// stdio MCP transport keeps stdout to itself.
func setupLogging(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// optionsFrom resolves the persistent flags from the root command.
func optionsFrom(cmd *cli.Command) serverOptions {
	return serverOptions{
		Host:      cmd.String("host"),
		Port:      cmd.Int("port"),
		ConfigDir: cmd.String("config-dir"),
		SavesDir:  cmd.String("saves-dir"),
	}
}

// initializeServices wires the config manager, session persistence, save
// slots, and the game service. It also starts the background routines that
// prune stale sessions and mirror filesystem deletions into memory.
func initializeServices(opts serverOptions) (service.GameService, error) {
	configManager, err := config.NewManager(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	persistence, err := session.NewFilePersistence("sessions", configManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(persistence)
	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Warn().Err(err).Msg("Failed to load persisted sessions")
	}

	slots, err := session.NewSlotStore(opts.SavesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create save slot store: %w", err)
	}

	gameService := service.NewGameService(sessionManager, configManager, slots)

	go sessionCleanupRoutine(sessionManager)
	go filesystemSyncRoutine(sessionManager, persistence)

	return gameService, nil
}

// runHTTPServer starts the HTTP server with the REST API, the WebSocket hub,
// and an /mcp proxy endpoint, then blocks until a shutdown signal arrives.
func runHTTPServer(ctx context.Context, opts serverOptions) error {
	gameService, err := initializeServices(opts)
	if err != nil {
		return err
	}

	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info().Str("addr", addr).Msg("HTTP server listening")
		log.Info().Msgf("REST API: http://%s/api", addr)
		log.Info().Msgf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Info().Msgf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	select {
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown error")
	}

	wg.Wait()
	log.Info().Msg("Server stopped")
	return nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Info().Int("removed", removed).Msg("Cleaned up expired sessions")
		}
	}
}

// filesystemSyncRoutine removes sessions from memory when their backing files
// are deleted out from under the server.
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		pruned := 0
		for _, sess := range manager.List() {
			if !persistence.Exists(sess.ID) {
				if err := manager.DeleteFromMemory(sess.ID); err == nil {
					pruned++
					log.Debug().Str("session_id", sess.ID).Msg("Pruned session, backing file deleted")
				}
			}
		}

		if pruned > 0 {
			log.Info().Int("pruned", pruned).Msg("Filesystem sync pruned orphaned sessions")
		}
	}
}

// runStdioMCP runs an MCP stdio server. It reuses an external API at
// localhost:8080 when one responds; otherwise it starts a minimal internal
// HTTP API on a random loopback port and targets that.
func runStdioMCP(opts serverOptions) error {
	var baseURL string

	externalURL := fmt.Sprintf("http://localhost:%d", opts.Port)
	log.Info().Str("url", externalURL).Msg("Checking for external API server")

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Info().Str("url", externalURL).Msg("External API server found, using it for MCP")
		baseURL = externalURL
	} else {
		log.Info().Msg("No external API server found, starting internal HTTP server")

		gameService, err := initializeServices(opts)
		if err != nil {
			return err
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := fmt.Sprintf("127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)
		log.Info().Str("addr", internalAddr).Msg("Starting internal HTTP server for MCP stdio")

		hub := websocket.NewHub()
		go hub.Run()

		apiServer := api.NewServer(gameService, hub)
		httpServer := &http.Server{Handler: apiServer}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Warn().Err(err).Msg("Internal HTTP server error")
			}
		}()

		// Give the listener a beat before the first tool call lands.
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Info().Str("base_url", baseURL).Msg("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
