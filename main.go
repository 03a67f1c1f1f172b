package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lmcode/cliparse"
	"github.com/danielhkuo/lmcode/db"
	"github.com/danielhkuo/lmcode/llm"
	"github.com/danielhkuo/lmcode/middleware"
	"github.com/danielhkuo/lmcode/router"
)

func main() {
	var err error

	// Parse configuration
	cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (SQLite file or PostgreSQL URL)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Build the model registry from configured providers
	registry, err := llm.FromConfig(cfg)
	if err != nil {
		slog.Error("model registry setup failed", "error", err)
		os.Exit(1)
	}
	if !cfg.SkipWarmup {
		registry = registry.Warmup(context.Background(), cfg.LLMTimeout)
	}
	if registry.Len() == 0 {
		slog.Warn("no models registered; answer collection will fail until models are configured")
	} else {
		slog.Info("Model registry ready", "models", registry.Len())
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, registry)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
