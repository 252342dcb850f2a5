package queries

import (
	"errors"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves one page of the driver roster from the driver
// directory. Pages are 1-based.
type GetDriversQuery struct {
	pageNumber int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a validated driver roster query.
func NewGetDriversQuery(pageNumber int, pageSize int) (GetDriversQuery, error) {
	if pageNumber < 1 {
		return GetDriversQuery{}, errs.NewValueIsInvalidError("pageNumber")
	}
	if pageSize < 1 {
		return GetDriversQuery{}, errs.NewValueIsInvalidError("pageSize")
	}

	return GetDriversQuery{
		pageNumber: pageNumber,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// PageNumber returns the 1-based page to fetch.
func (q GetDriversQuery) PageNumber() int {
	return q.pageNumber
}

// PageSize returns the page size.
func (q GetDriversQuery) PageSize() int {
	return q.pageSize
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}
