package queries

import (
	"errors"
	"time"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrGetPlansQueryIsNotConstructed = errors.New(
	"GetPlansQuery must be created via NewGetPlansQuery constructor",
)

// GetPlansQuery lists the routing provider's delivery plans for one date.
type GetPlansQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetPlansQuery creates a validated plan listing query.
func NewGetPlansQuery(date time.Time) (GetPlansQuery, error) {
	if date.IsZero() {
		return GetPlansQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetPlansQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Date returns the delivery date to list plans for.
func (q GetPlansQuery) Date() time.Time {
	return q.date
}

// Validate ensures the query was created through the constructor.
func (q GetPlansQuery) Validate() error {
	return q.guard.Validate(ErrGetPlansQueryIsNotConstructed)
}
