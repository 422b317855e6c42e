package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// setupLogger logs to w so that stdout only carries command output such as created IDs
func setupLogger(w io.Writer) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.NewWriterLogger(w, settings.LogLevel), nil
}

// NewRootCommand creates the kudos-cli root command with the database flags every sub-command shares
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kudos-cli",
		Short: "Administration tool for the kudos web application",
		Long: `kudos-cli manages the kudos database directly.
It migrates the schema, registers and lists users and sends kudos,
which is handy for seeding a development environment.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("db-type", config.SqliteDbType, "Database type (postgres or sqlite)")
	rootCmd.PersistentFlags().String("dsn", "kudos.db", "Database connection string")
	rootCmd.PersistentFlags().String("db-name", "", "PostgreSQL database name, created when missing")

	return rootCmd
}

// InitCommands registers all command groups with the root command.
func InitCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger(rootCmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	InitMigrateCommands(rootCmd, log)
	InitUserCommands(rootCmd, log)
	InitKudoCommands(rootCmd, log)

	return nil
}

// openDatabase connects and migrates the database selected by the persistent flags
func openDatabase(cmd *cobra.Command) (*gorm.DB, error) {
	flags := cmd.Flags()

	dbType, err := flags.GetString("db-type")
	if err != nil {
		return nil, fmt.Errorf("invalid db-type flag: %w", err)
	}
	dsn, err := flags.GetString("dsn")
	if err != nil {
		return nil, fmt.Errorf("invalid dsn flag: %w", err)
	}
	dbName, err := flags.GetString("db-name")
	if err != nil {
		return nil, fmt.Errorf("invalid db-name flag: %w", err)
	}

	settings := config.DatabaseSettings{Type: dbType, DSN: dsn, DBName: dbName}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, err
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	return db, nil
}
