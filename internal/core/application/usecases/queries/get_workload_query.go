// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries return optimized read models for specific use
// cases and never mutate anything.
package queries

import (
	"errors"

	"routeadmin/internal/pkg/guard"
)

var ErrGetWorkloadQueryIsNotConstructed = errors.New(
	"GetWorkloadQuery must be created via NewGetWorkloadQuery constructor",
)

// GetWorkloadQuery retrieves the per-driver workload across every plan
// committed in the current session: how many route segments each driver
// carries.
type GetWorkloadQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkloadQuery creates a parameterless workload query.
func NewGetWorkloadQuery() GetWorkloadQuery {
	return GetWorkloadQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkloadQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkloadQueryIsNotConstructed)
}
