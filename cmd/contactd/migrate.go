package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/JordanMarcelino/contact-api/internal/config"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Run all pending database migrations against the PostgreSQL database.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cmd.Println("Running migrations...")
	if err := store.Migrate(cfg.DatabaseDSN); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}

	cmd.Println("Migrations completed successfully")
	return nil
}
