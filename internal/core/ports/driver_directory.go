package ports

import (
	"context"

	"routeadmin/internal/core/domain/model/driver"
)

// DriverDirectory is the read-only contract with the staff directory
// collaborator serving driver reference data.
type DriverDirectory interface {
	// GetDrivers returns one page of drivers. Pages are 1-based.
	GetDrivers(ctx context.Context, pageNumber int, pageSize int) ([]driver.Driver, error)
}
