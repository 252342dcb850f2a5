package queries_test

import (
	"testing"

	"routeadmin/internal/core/application/usecases/queries"
	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDriversQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	testDriver, err := driver.NewDriver(3, "Ana", "Petrova")
	require.NoError(t, err)

	directory := new(MockDriverDirectory)
	directory.On("GetDrivers", ctx, 2, 50).Return([]driver.Driver{testDriver}, nil).Once()

	query, err := queries.NewGetDriversQuery(2, 50)
	require.NoError(t, err)

	handler := queries.NewGetDriversQueryHandler(directory)
	drivers, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, 3, drivers[0].ID())
	directory.AssertExpectations(t)
}

func TestNewGetDriversQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetDriversQuery(0, 50)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetDriversQuery(1, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
