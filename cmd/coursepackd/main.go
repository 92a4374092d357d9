// CLAUDE:SUMMARY coursepackd daemon — HTTP ingestion API plus optional MCP stdio mode.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/coursepack/catalog"
	"github.com/hazyhaar/coursepack/ingest"
	"github.com/hazyhaar/coursepack/packscan"

	_ "modernc.org/sqlite"
)

func main() {
	cfgPath := env("COURSEPACK_CONFIG", "coursepackd.yaml")
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(cfgPath); err == nil {
		loaded, err := LoadConfig(cfgPath)
		if err != nil {
			slog.Error("config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Logging.
	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipe := packscan.New(packscan.Config{
		MaxArchiveBytes: cfg.MaxUploadBytes(),
		Logger:          logger,
	})

	// MCP stdio mode: expose the inspection tools and nothing else. stdout
	// belongs to the MCP framing, which is why logs go to stderr.
	if env("MCP_TRANSPORT", "") == "stdio" {
		srv := mcp.NewServer(&mcp.Implementation{
			Name:    "coursepack",
			Version: "1.0.0",
		}, nil)
		pipe.RegisterMCP(srv)
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP stdio", "error", err)
			os.Exit(1)
		}
		return
	}

	store, err := catalog.Open(cfg.DBPath)
	if err != nil {
		slog.Error("catalog db", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	blobs, err := ingest.NewBlobStore(cfg.BlobsDir)
	if err != nil {
		slog.Error("blob store", "error", err)
		os.Exit(1)
	}

	svc := ingest.NewService(pipe, store, blobs, logger)

	// Router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(ingest.BasicAuth(cfg.Auth.Username, cfg.Auth.PasswordHash))
	r.Mount("/", ingest.Router(svc))

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
