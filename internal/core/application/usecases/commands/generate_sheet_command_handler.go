package commands

import (
	"context"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/core/ports"
)

// GenerateSheetCommandHandler assembles the sheet-generation request from
// the committed session state and submits it to the job backend.
//
// For every plan in the command it takes the committed split positions, or
// an empty split list when the plan has no commit, which the backend
// renders as one uncut sheet. The request also carries the union of all
// committed segments so each sheet can be labeled with its driver.
type GenerateSheetCommandHandler struct {
	backend ports.JobBackend
	store   *session.Store
	watcher JobWatcher
}

// NewGenerateSheetCommandHandler creates a handler for sheet generation.
func NewGenerateSheetCommandHandler(
	backend ports.JobBackend,
	store *session.Store,
	watcher JobWatcher,
) GenerateSheetCommandHandler {
	return GenerateSheetCommandHandler{
		backend: backend,
		store:   store,
		watcher: watcher,
	}
}

// Handle builds the request, submits the sheet job and returns its
// identifier.
func (h GenerateSheetCommandHandler) Handle(ctx context.Context, command GenerateSheetCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	committed := h.store.All()

	plans := make([]ports.PlanSplit, 0, len(command.PlanIDs()))
	segments := make([]segment.Segment, 0)
	for _, planID := range command.PlanIDs() {
		split := ports.PlanSplit{PlanID: planID, SplitStops: []int{}}
		if data, ok := committed[planID]; ok {
			split.SplitStops = data.Splits()
			segments = append(segments, data.Segments()...)
		}
		plans = append(plans, split)
	}

	jobID, err := h.backend.SubmitGenerateSheet(ctx, ports.SheetGenerationRequest{
		Date:     command.Date(),
		Plans:    plans,
		Segments: segments,
	})
	if err != nil {
		return "", err
	}

	h.watcher.Watch(ctx, jobID, job.KindGenerateSheet, "")
	return jobID, nil
}
