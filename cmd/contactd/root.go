package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the contact server CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contactd",
		Short: "Contact management REST API server",
		Long: `contactd serves a contact management REST API: user accounts with
cookie-based sessions, per-user contacts, and contact addresses, backed
by PostgreSQL.`,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
