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
	"github.com/kordlan/harmonia_backend/internal/service/reference"
	"github.com/kordlan/harmonia_backend/pkg/database"
	"github.com/kordlan/harmonia_backend/pkg/logs"
	redispkg "github.com/kordlan/harmonia_backend/pkg/redis"
)

func NewSeedCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the reference vocabulary tables",
		Long: `Upsert the built-in genre, instrument and education-rank vocabulary
into the reference tables, then drop the Redis reference cache so the
next request serves the fresh set. Existing rows with matching ids are
updated, nothing is deleted.`,
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

			db, err := database.New(database.FromCentralConfig(cfg.Database))
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			store := repo.NewPostgres(db.GetConnection())
			genres, instruments, ranks := reference.FallbackVocabulary()
			if err := store.SeedReference(ctx, genres, instruments, ranks); err != nil {
				return fmt.Errorf("seeding reference tables failed: %w", err)
			}
			slog.Info("reference tables seeded",
				"genres", len(genres),
				"instruments", len(instruments),
				"education_ranks", len(ranks),
			)

			// Best effort: a cold cache just repopulates on the next read.
			if rdb, err := redispkg.NewRedisFromCentral(cfg.Redis); err == nil {
				defer rdb.Close()
				reference.New(store, rdb, 0).Invalidate(ctx)
				slog.Info("reference cache invalidated")
			} else {
				slog.Warn("could not reach Redis, reference cache left as is", "err", err)
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Maximum time to wait for seeding")

	return cmd
}
