// Package jobs holds background work scheduled with cron expressions.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/platform/metrics"
	"github.com/robfig/cron/v3"
)

const purgeTimeout = 30 * time.Second

// CachePurger removes expired cache entries.
type CachePurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// CachePurgeJob deletes expired bank verifications. It implements cron.Job.
type CachePurgeJob struct {
	purger CachePurger
	logger *slog.Logger
}

// NewCachePurgeJob creates a purge job for the given cache.
func NewCachePurgeJob(purger CachePurger, logger *slog.Logger) *CachePurgeJob {
	return &CachePurgeJob{
		purger: purger,
		logger: logger.With(slog.String("job", "verification_cache_purge")),
	}
}

// Run performs one purge pass.
func (j *CachePurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error("Failed to purge expired verifications", slog.String("error", err.Error()))
		return
	}
	metrics.RecordCachePurge(n)
	j.logger.Info("Purged expired verifications", slog.Int64("removed", n))
}

// StartScheduler registers job under schedule and starts the cron runner.
// Overlapping runs are skipped. Callers stop the returned runner on shutdown.
func StartScheduler(schedule string, job cron.Job, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	c.Start()
	logger.Info("Scheduler started", slog.String("schedule", schedule))
	return c, nil
}
