package main

import (
	"fmt"
	"log/slog"
	"os"

	"gitcraft-go-server/bootstrap"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "GitCraft database administration",
		Long:          "Maintenance commands for the GitCraft user database. Reads SQLITE_FILE or DATABASE_URL.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(bootstrap.NewLogger(os.Stderr, logLevel, "text"))
			if err := godotenv.Load(); err != nil {
				slog.Debug(".env file not found, using process environment", "component", "admin")
			}
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newClearDBCommand())
	cmd.AddCommand(newUserCommand())

	return cmd
}

// openDatabase 使用环境变量中的数据库配置连接
// NewDatabase 连接时会自动迁移，所有命令看到的都是最新表结构
func openDatabase() (*gorm.DB, error) {
	cfg, err := bootstrap.ParseDatabaseEnv()
	if err != nil {
		return nil, err
	}
	return bootstrap.NewDatabase(*cfg)
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if err := bootstrap.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}
