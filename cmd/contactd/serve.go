package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/JordanMarcelino/contact-api/internal/api"
	"github.com/JordanMarcelino/contact-api/internal/auth"
	authpg "github.com/JordanMarcelino/contact-api/internal/auth/postgres"
	"github.com/JordanMarcelino/contact-api/internal/config"
	"github.com/JordanMarcelino/contact-api/internal/contact"
	contactpg "github.com/JordanMarcelino/contact-api/internal/contact/postgres"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the contact API server",
		Long: `Start the HTTP server. Configuration comes from the environment
(ADDR, DATABASE_URL, TOKEN_TTL), overridable with flags.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "bind address, e.g. :8080")
	cmd.Flags().String("database-url", "", "PostgreSQL DSN")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Addr = v
	}
	if v, _ := cmd.Flags().GetString("database-url"); v != "" {
		cfg.DatabaseDSN = v
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").Wrap(err)
	}
	defer pool.Close()

	authService := auth.NewService(pool, authpg.NewUserRepository(), auth.NewArgon2(), cfg.TokenTTL)
	contactRepo := contactpg.NewContactRepository()
	contactService := contact.NewService(pool, contactRepo)
	addressService := contact.NewAddressService(pool, contactRepo, contactpg.NewAddressRepository())

	server := api.NewServer(authService, contactService, addressService, logger)
	app := server.App()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Addr))
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return oops.Code("SERVER_FAILED").Wrap(err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return oops.Code("SHUTDOWN_FAILED").Wrap(err)
	}

	logger.Info("server stopped")
	return nil
}
