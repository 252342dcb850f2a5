package commands_test

import (
	"testing"
	"time"

	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetchScheduleCommand(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewFetchScheduleCommand("plan-1", date)
	require.NoError(t, err)
	assert.Equal(t, "plan-1", cmd.PlanID())
	assert.Equal(t, date, cmd.Date())
	assert.NoError(t, cmd.Validate())
}

func TestNewFetchScheduleCommand_Invalid(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	_, err := commands.NewFetchScheduleCommand("", date)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewFetchScheduleCommand("plan-1", time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestFetchScheduleCommand_ValidateNotConstructed(t *testing.T) {
	cmd := commands.FetchScheduleCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrFetchScheduleCommandIsNotConstructed)
}
