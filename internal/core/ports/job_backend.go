// Package ports declares the interfaces through which the application core
// reaches its external collaborators: the routing job backend, the driver
// directory and the assignment persistence layer. Adapters implement these
// interfaces; the core never imports an adapter.
package ports

import (
	"context"
	"io"
	"time"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/core/domain/model/segment"
)

// PlanSplit tells the sheet backend where to split one plan's picking
// sheet. An empty SplitStops means the plan gets a single sheet.
type PlanSplit struct {
	PlanID     string
	SplitStops []int
}

// SheetGenerationRequest is the payload for the sheet-generation job: every
// plan on the date with its committed split positions, plus the union of
// committed driver-assigned segments so the backend can label each sheet.
type SheetGenerationRequest struct {
	Date     time.Time
	Plans    []PlanSplit
	Segments []segment.Segment
}

// JobBackend is the submit-then-poll contract with the routing job backend.
//
// The four Submit methods start a long-running operation and return the
// opaque job identifier; they fail with errs.SubmissionError when the
// backend rejects the request, in which case no job exists and no polling
// should begin. GetJob is the idempotent poll call; transport failures
// surface as errs.PollError.
type JobBackend interface {
	// SubmitGeneratePlans starts delivery-plan generation for a date.
	SubmitGeneratePlans(ctx context.Context, date time.Time) (string, error)

	// SubmitOptimizePlans starts geographic optimization of the given plans.
	// Completion carries no payload; callers re-fetch plans afterwards.
	SubmitOptimizePlans(ctx context.Context, planIDs []string) (string, error)

	// SubmitGenerateSheet starts picking-sheet generation with the committed
	// segment splits.
	SubmitGenerateSheet(ctx context.Context, req SheetGenerationRequest) (string, error)

	// SubmitFetchSortedSchedules starts the per-plan stop schedule fetch.
	SubmitFetchSortedSchedules(ctx context.Context, planID string, date time.Time) (string, error)

	// GetJob polls the current state of a job. Safe to call repeatedly.
	GetJob(ctx context.Context, jobID string, kind job.Kind) (job.Snapshot, error)

	// DownloadSheet streams the generated sheet artifact of a completed
	// sheet-generation job. The caller closes the reader.
	DownloadSheet(ctx context.Context, jobID string) (io.ReadCloser, error)

	// PlansByDate lists the routing provider's plans for a date.
	PlansByDate(ctx context.Context, date time.Time) ([]plan.Plan, error)

	// DeletePlans removes the given plans from the routing provider.
	DeletePlans(ctx context.Context, planIDs []string) error
}
