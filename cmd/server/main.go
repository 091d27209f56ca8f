package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/config"
	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/server"
	"github.com/mmynk/totalmanager/internal/storage/sqlite"
	"github.com/mmynk/totalmanager/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "totalmanager",
		Short:         "Total Manager - group payment collection tracking server",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without a subcommand the server starts
		RunE: runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Connect RPC server",
		RunE:  runServe,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			slog.Info("Database schema is up to date", "database", cfg.Database.Path)
			return nil
		},
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	authenticator := auth.NewPhoneAuthenticator(store, cfg.Auth.VerificationCodeTTL)
	handler := server.NewRouter(server.Deps{
		Store:         store,
		JWTManager:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration),
		Authenticator: authenticator,
		Notifier:      notify.NewLogNotifier(slog.Default()),
		CORS:          cfg.CORSEnabled,
	})

	// Wrap with h2c for HTTP/2 without TLS
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting",
			"address", srv.Addr,
			"url", fmt.Sprintf("http://localhost%s", srv.Addr),
			"environment", cfg.Environment,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetupWithOptions(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("Using the default JWT secret; set JWT_SECRET outside development")
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(cfg.Database.Path,
		sqlite.WithMaxOpenConns(cfg.Database.MaxOpenConns),
		sqlite.WithBusyTimeout(cfg.Database.BusyTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}
