package queries

import (
	"context"

	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/core/ports"
)

// GetPlansQueryHandler lists plans straight from the routing provider;
// plans are not persisted locally, the provider is the source of truth.
type GetPlansQueryHandler struct {
	backend ports.JobBackend
}

// NewGetPlansQueryHandler creates a handler for plan listing queries.
func NewGetPlansQueryHandler(backend ports.JobBackend) GetPlansQueryHandler {
	return GetPlansQueryHandler{backend: backend}
}

// Handle returns the provider's plans for the queried date.
func (h GetPlansQueryHandler) Handle(ctx context.Context, query GetPlansQuery) ([]plan.Plan, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.backend.PlansByDate(ctx, query.Date())
}
