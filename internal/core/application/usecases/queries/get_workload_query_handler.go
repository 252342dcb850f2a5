package queries

import (
	"context"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/services"
)

// GetWorkloadQueryHandler aggregates segment counts per driver over the
// session's committed assignments.
type GetWorkloadQueryHandler struct {
	store      *session.Store
	aggregator services.WorkloadAggregator
}

// NewGetWorkloadQueryHandler creates a handler for workload queries.
func NewGetWorkloadQueryHandler(store *session.Store) GetWorkloadQueryHandler {
	return GetWorkloadQueryHandler{
		store:      store,
		aggregator: services.NewWorkloadAggregator(),
	}
}

// Handle returns the segment count per driver identifier. Drivers without
// a segment are absent from the map.
func (h GetWorkloadQueryHandler) Handle(ctx context.Context, query GetWorkloadQuery) (map[int]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.aggregator.Aggregate(h.store.All()), nil
}
