package commands

import (
	"errors"
	"time"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrFetchScheduleCommandIsNotConstructed = errors.New(
	"FetchScheduleCommand must be created via NewFetchScheduleCommand constructor",
)

// FetchScheduleCommand starts the sorted stop-schedule fetch for one plan.
// The backend resolves this within about a second, so the monitor polls it
// at the fast cadence; the decoded stops land in the per-plan schedule
// cache once the job completes.
type FetchScheduleCommand struct {
	planID string
	date   time.Time

	guard guard.ConstructorGuard
}

// NewFetchScheduleCommand creates a validated command for one plan and date.
func NewFetchScheduleCommand(planID string, date time.Time) (FetchScheduleCommand, error) {
	if planID == "" {
		return FetchScheduleCommand{}, errs.NewValueIsRequiredError("planID")
	}
	if date.IsZero() {
		return FetchScheduleCommand{}, errs.NewValueIsRequiredError("date")
	}

	return FetchScheduleCommand{
		planID: planID,
		date:   date,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// PlanID returns the plan whose schedule is fetched.
func (c *FetchScheduleCommand) PlanID() string {
	return c.planID
}

// Date returns the delivery date of the schedule.
func (c *FetchScheduleCommand) Date() time.Time {
	return c.date
}

// Validate ensures the command was created through the constructor.
func (c *FetchScheduleCommand) Validate() error {
	return c.guard.Validate(
		ErrFetchScheduleCommandIsNotConstructed,
	)
}
