package polling

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/plan"
)

// JobState is the monitor's materialized view of one watched job, updated
// by the poll loop and read by the HTTP layer.
type JobState struct {
	JobID    string
	Kind     job.Kind
	Status   job.Status
	Progress int
	Message  string
	Result   json.RawMessage
	Err      error
}

// Monitor owns the poll tasks for every in-flight job and materializes
// their state so clients can read progress without talking to the backend
// themselves. It is the Sink for all tasks it starts; per-job state writes
// are independent, one mutex guards only the maps.
//
// Completed schedule fetches additionally land in a per-plan schedule
// cache, which is what the segmentation screen reads.
type Monitor struct {
	poller *Poller
	logger *slog.Logger

	mu        sync.Mutex
	tasks     map[string]*Task
	states    map[string]*JobState
	planByJob map[string]string
	schedules map[string][]plan.ScheduleStop
}

// NewMonitor creates a monitor on top of the given poller.
func NewMonitor(poller *Poller, logger *slog.Logger) *Monitor {
	return &Monitor{
		poller:    poller,
		logger:    logger.With("component", "job_monitor"),
		tasks:     make(map[string]*Task),
		states:    make(map[string]*JobState),
		planByJob: make(map[string]string),
		schedules: make(map[string][]plan.ScheduleStop),
	}
}

// Watch starts polling a freshly submitted job. planID associates
// schedule-fetch results with their plan and may be empty for other kinds.
// Watching an already-watched job is a no-op.
func (m *Monitor) Watch(ctx context.Context, jobID string, kind job.Kind, planID string) {
	m.mu.Lock()
	if _, exists := m.tasks[jobID]; exists {
		m.mu.Unlock()
		return
	}

	m.states[jobID] = &JobState{
		JobID:  jobID,
		Kind:   kind,
		Status: job.StatusRunning,
	}
	if planID != "" {
		m.planByJob[jobID] = planID
	}
	m.mu.Unlock()

	// The loop must outlive the request that submitted the job; only an
	// explicit Cancel (or shutdown) stops it.
	task := m.poller.Start(context.WithoutCancel(ctx), jobID, kind, m)

	m.mu.Lock()
	m.tasks[jobID] = task
	m.mu.Unlock()
}

// Cancel stops observing a job. The UI calls this when its owning context
// is torn down before a terminal state; the backend job is not cancelled.
func (m *Monitor) Cancel(jobID string) {
	m.mu.Lock()
	task, ok := m.tasks[jobID]
	delete(m.tasks, jobID)
	delete(m.states, jobID)
	delete(m.planByJob, jobID)
	m.mu.Unlock()

	if ok {
		task.Cancel()
	}
}

// State returns the materialized view of a watched job.
func (m *Monitor) State(jobID string) (JobState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[jobID]
	if !ok {
		return JobState{}, false
	}
	return *state, true
}

// Schedule returns the decoded stop schedule for a plan, once its fetch
// job completed.
func (m *Monitor) Schedule(planID string) ([]plan.ScheduleStop, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stops, ok := m.schedules[planID]
	return stops, ok
}

// CancelAll stops every in-flight poll loop. Called on shutdown.
func (m *Monitor) CancelAll() {
	m.mu.Lock()
	tasks := make([]*Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, task)
	}
	m.tasks = make(map[string]*Task)
	m.mu.Unlock()

	for _, task := range tasks {
		task.Cancel()
	}
}

// OnProgress implements Sink.
func (m *Monitor) OnProgress(jobID string, progress int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state, ok := m.states[jobID]; ok {
		state.Status = job.StatusRunning
		state.Progress = progress
		state.Message = message
	}
}

// OnCompleted implements Sink.
func (m *Monitor) OnCompleted(jobID string, result Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[jobID]
	if !ok {
		return
	}
	state.Status = job.StatusCompleted
	state.Progress = job.MaxProgress
	state.Result = result.Raw

	if planID, hasPlan := m.planByJob[jobID]; hasPlan && result.Stops != nil {
		m.schedules[planID] = result.Stops
	}
	delete(m.tasks, jobID)
}

// OnFailed implements Sink.
func (m *Monitor) OnFailed(jobID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state, ok := m.states[jobID]; ok {
		state.Status = job.StatusFailed
		state.Message = err.Error()
		state.Err = err
	}
	delete(m.tasks, jobID)
}
