package commands

import (
	"fmt"

	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command, log logger.Logger) {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			if err := persistence.CloseDB(db); err != nil {
				return err
			}

			log.Info("database schema is up to date")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return err
		},
	}

	rootCmd.AddCommand(migrateCmd)
}
