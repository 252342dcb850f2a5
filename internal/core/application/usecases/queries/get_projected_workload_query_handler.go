package queries

import (
	"context"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/services"
)

// GetProjectedWorkloadQueryHandler computes the workload a driver would
// carry if assigned to one more segment.
type GetProjectedWorkloadQueryHandler struct {
	store      *session.Store
	aggregator services.WorkloadAggregator
}

// NewGetProjectedWorkloadQueryHandler creates a handler for projected
// workload queries.
func NewGetProjectedWorkloadQueryHandler(store *session.Store) GetProjectedWorkloadQueryHandler {
	return GetProjectedWorkloadQueryHandler{
		store:      store,
		aggregator: services.NewWorkloadAggregator(),
	}
}

// Handle returns the projected segment count for the queried pairing.
func (h GetProjectedWorkloadQueryHandler) Handle(ctx context.Context, query GetProjectedWorkloadQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	return h.aggregator.Projected(
		h.store.All(),
		query.PlanID(),
		query.EndStopPosition(),
		query.DriverID(),
	), nil
}
