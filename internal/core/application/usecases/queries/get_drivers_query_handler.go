package queries

import (
	"context"

	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/core/ports"
)

// GetDriversQueryHandler pages through the driver directory.
type GetDriversQueryHandler struct {
	directory ports.DriverDirectory
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(directory ports.DriverDirectory) GetDriversQueryHandler {
	return GetDriversQueryHandler{directory: directory}
}

// Handle returns one page of drivers.
func (h GetDriversQueryHandler) Handle(ctx context.Context, query GetDriversQuery) ([]driver.Driver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.directory.GetDrivers(ctx, query.PageNumber(), query.PageSize())
}
