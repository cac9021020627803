package main

import (
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and access indexes, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := bootstrap(); err != nil {
			return err
		}
		return database.Migrate()
	},
}
