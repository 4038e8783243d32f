package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	viewpython "github.com/Pulkit12dhingra/view-python"
	"github.com/Pulkit12dhingra/view-python/internal/adapters/file"
	redisStore "github.com/Pulkit12dhingra/view-python/internal/adapters/redis"
	"github.com/Pulkit12dhingra/view-python/internal/config"
	"github.com/Pulkit12dhingra/view-python/internal/logging"
	httpAdapter "github.com/Pulkit12dhingra/view-python/pkg/adapters/http"
	"github.com/Pulkit12dhingra/view-python/pkg/observability"
	"github.com/Pulkit12dhingra/view-python/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the view-python engine in server mode, exposing the graph and run API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetString("port")

		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if port != "" {
			cfg.Addr = ":" + port
		}

		logger := logging.NewJSON(logLevel(cfg.LogLevel))
		slog.SetDefault(logger)

		store, closeStore, err := newStore(cfg)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		metrics := observability.New()
		engine := viewpython.New(
			viewpython.WithLogger(logger),
			viewpython.WithMetrics(metrics),
		)

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithStore(store),
			httpAdapter.WithMetrics(metrics),
			httpAdapter.WithFrontend(cfg.FrontendDir),
		)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting view-python server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("view-python server stopped gracefully")
		}
	},
}

// newStore picks the notebook store backend: Redis when configured,
// otherwise JSON files in the uploads directory.
func newStore(cfg config.Config) (ports.NotebookStore, func(), error) {
	if cfg.Redis.Addr != "" {
		store := redisStore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		return store, func() { _ = store.Close() }, nil
	}

	store, err := file.NewStore(cfg.UploadsDir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config addr)")
}
