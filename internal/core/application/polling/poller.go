package polling

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/core/ports"
	"routeadmin/internal/pkg/errs"
)

const (
	// FastPollInterval is the cadence for sub-second backend jobs
	// (schedule fetches). Policy, not correctness: any interval that
	// eventually observes the terminal state works, tighter ones just
	// reduce perceived latency.
	FastPollInterval = 300 * time.Millisecond

	// SlowPollInterval is the cadence for long jobs (plan generation,
	// optimization, sheet generation).
	SlowPollInterval = 3 * time.Second

	// DefaultMaxPollDuration bounds how long a poll loop runs without
	// observing a terminal state before giving up with a timeout error.
	DefaultMaxPollDuration = 15 * time.Minute
)

// Result is the kind-specific completion payload handed to the sink.
// Stops is populated only for schedule-fetch jobs; Raw always carries the
// backend payload as received (nil for kinds without one).
type Result struct {
	Raw   json.RawMessage
	Stops []plan.ScheduleStop
}

// Sink receives poll-loop events for one job. Implementations must expect
// exactly one terminal call (OnCompleted or OnFailed) per job, preceded by
// zero or more OnProgress calls. OnFailed receives a JobFailedError for
// backend-reported failures, a PollError for transport failures, a
// PollTimeoutError when the loop exceeded its maximum duration, or a ParseError when
// a completed result could not be decoded.
type Sink interface {
	OnProgress(jobID string, progress int, message string)
	OnCompleted(jobID string, result Result)
	OnFailed(jobID string, err error)
}

// Task is the handle for one running poll loop. Cancelling it stops the
// loop deterministically without touching the backend job, which is
// fire-and-forget on the server side.
type Task struct {
	jobID  string
	cancel context.CancelFunc
	done   chan struct{}
}

// JobID returns the job this task polls.
func (t *Task) JobID() string {
	return t.jobID
}

// Cancel stops the poll loop. Safe to call more than once; no sink calls
// are made after cancellation takes effect.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed when the poll loop has fully stopped, whether by terminal
// state, failure, timeout or cancellation.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Poller starts one poll loop per in-flight job. Loops are fully
// independent: each owns a distinct job identifier, so no coordination is
// needed between concurrent tasks.
type Poller struct {
	backend      ports.JobBackend
	logger       *slog.Logger
	fastInterval time.Duration
	slowInterval time.Duration
	maxDuration  time.Duration
}

// NewPoller creates a poller with the default cadence and timeout policy.
func NewPoller(backend ports.JobBackend, logger *slog.Logger) *Poller {
	return NewPollerWithPolicy(backend, logger, FastPollInterval, SlowPollInterval, DefaultMaxPollDuration)
}

// NewPollerWithPolicy creates a poller with explicit intervals and maximum
// poll duration. Used by tests and deployments with unusual job runtimes.
func NewPollerWithPolicy(
	backend ports.JobBackend,
	logger *slog.Logger,
	fastInterval time.Duration,
	slowInterval time.Duration,
	maxDuration time.Duration,
) *Poller {
	return &Poller{
		backend:      backend,
		logger:       logger.With("component", "job_poller"),
		fastInterval: fastInterval,
		slowInterval: slowInterval,
		maxDuration:  maxDuration,
	}
}

// Start launches the poll loop for jobID and returns its handle. The loop
// stops on the first terminal observation, on a poll failure, on timeout,
// or when the task (or ctx) is cancelled.
func (p *Poller) Start(ctx context.Context, jobID string, kind job.Kind, sink Sink) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{
		jobID:  jobID,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go p.run(ctx, jobID, kind, sink, task)
	return task
}

func (p *Poller) run(ctx context.Context, jobID string, kind job.Kind, sink Sink, task *Task) {
	defer close(task.done)
	defer task.cancel()

	ticker := time.NewTicker(p.intervalFor(kind))
	defer ticker.Stop()

	deadline := time.NewTimer(p.maxDuration)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			// Owner teardown. The backend job keeps running; we just
			// stop observing it.
			p.logger.InfoContext(ctx, "Poll loop cancelled", "jobId", jobID, "kind", kind.String())
			return

		case <-deadline.C:
			sink.OnFailed(jobID, errs.NewPollTimeoutError(jobID, p.maxDuration))
			return

		case <-ticker.C:
			snapshot, err := p.backend.GetJob(ctx, jobID, kind)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if !errors.Is(err, errs.ErrPollFailed) {
					err = errs.NewPollErrorWithCause(jobID, err)
				}
				sink.OnFailed(jobID, err)
				return
			}

			if done := p.dispatch(snapshot, kind, sink); done {
				return
			}
		}
	}
}

// dispatch routes one polled snapshot to the sink and reports whether the
// loop should stop.
func (p *Poller) dispatch(snapshot job.Snapshot, kind job.Kind, sink Sink) bool {
	switch snapshot.Status() {
	case job.StatusFailed:
		sink.OnFailed(snapshot.ID(), errs.NewJobFailedError(snapshot.ID(), snapshot.Message()))
		return true

	case job.StatusCompleted:
		result := Result{Raw: snapshot.Result()}
		if kind == job.KindFetchSchedule {
			stops, err := DecodeScheduleStops(snapshot.Result())
			if err != nil {
				sink.OnFailed(snapshot.ID(), err)
				return true
			}
			result.Stops = stops
		}
		sink.OnCompleted(snapshot.ID(), result)
		return true

	default:
		sink.OnProgress(snapshot.ID(), snapshot.Progress(), snapshot.Message())
		return false
	}
}

func (p *Poller) intervalFor(kind job.Kind) time.Duration {
	if kind == job.KindFetchSchedule {
		return p.fastInterval
	}
	return p.slowInterval
}
