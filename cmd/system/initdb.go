package system

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kordlan/harmonia_backend/config"
	"github.com/kordlan/harmonia_backend/internal/repo"
	"github.com/kordlan/harmonia_backend/pkg/database"
	"github.com/kordlan/harmonia_backend/pkg/logs"
)

func NewInitDBCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Create the application database and apply the schema",
		Long: `Create the configured database on the PostgreSQL server if it does
not exist, then apply the profile and reference-table schema. Safe to
run repeatedly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}
			slog.SetDefault(logs.New(cfg))

			if err := database.InitializeDatabase(cfg); err != nil {
				return err
			}
			slog.Info("database ready", "name", cfg.Database.DBName)

			db, err := database.New(database.FromCentralConfig(cfg.Database))
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			store := repo.NewPostgres(db.GetConnection())
			if err := store.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("schema setup failed: %w", err)
			}

			slog.Info("schema applied")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Maximum time to wait for schema setup")

	return cmd
}
