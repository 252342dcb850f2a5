package jobs

import (
	"context"
	"log/slog"
	"time"

	"routeadmin/internal/core/application/session"

	"github.com/robfig/cron/v3"
)

// SessionJanitorJob prunes assignment sessions whose admin walked away.
// Runs every minute; entries idle longer than keepFor are dropped. Durable
// copies live in the assignment repository, so pruning loses nothing that
// was committed.
type SessionJanitorJob struct {
	store   *session.Store
	keepFor time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionJanitorJob creates a janitor for the assignment store.
func NewSessionJanitorJob(store *session.Store, keepFor time.Duration, logger *slog.Logger) *SessionJanitorJob {
	return &SessionJanitorJob{
		store:   store,
		keepFor: keepFor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "session_janitor_job"),
	}
}

// Start schedules the janitor to run every minute.
func (j *SessionJanitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if pruned := j.store.Prune(j.keepFor); pruned > 0 {
			j.logger.InfoContext(ctx, "Pruned idle assignment sessions", "count", pruned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session janitor job started (running every minute)")
	return nil
}

// Stop stops the janitor.
func (j *SessionJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session janitor job stopped")
}
