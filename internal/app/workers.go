package app

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/kordlan/harmonia_backend/config"
	"github.com/kordlan/harmonia_backend/internal/service/reference"
)

// WorkerModule registers background workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg *config.Config
	Ref reference.Service
}

func RegisterWorkers(p WorkerParams) {
	stop := make(chan struct{})
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go startReferenceWarmWorker(p.Cfg, p.Ref, stop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// reference_warm_worker
// ---------------------------------------------------------------------------

// startReferenceWarmWorker keeps the reference vocabulary cached so the
// first search after a cache expiry does not pay the database round trip.
// It re-reads just before the cache TTL elapses.
func startReferenceWarmWorker(cfg *config.Config, ref reference.Service, stop <-chan struct{}) {
	interval := time.Duration(cfg.Reference.CacheTTLMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}
	// Refresh slightly ahead of expiry.
	interval = interval * 9 / 10

	warm := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		// Refresh bypasses the still-valid cache so the TTL restarts;
		// the rank read right after repopulates the invalidated table.
		vocab := ref.Refresh(ctx)
		if _, err := ref.EducationRanks(ctx); err != nil {
			slog.Warn("reference_warm_worker: education ranks refresh failed", "err", err)
		}
		slog.Debug("reference_warm_worker: vocabulary refreshed",
			"source", vocab.Source,
			"genres", len(vocab.Genres),
			"instruments", len(vocab.Instruments),
		)
	}

	warm()
	slog.Info("reference_warm_worker: started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			warm()
		case <-stop:
			slog.Debug("reference_warm_worker: stopped")
			return
		}
	}
}
