package commands

import (
	"errors"
	"time"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrGenerateSheetCommandIsNotConstructed = errors.New(
	"GenerateSheetCommand must be created via NewGenerateSheetCommand constructor",
)

// GenerateSheetCommand starts picking-sheet generation for a date. planIDs
// lists every plan on that date; plans without a committed segmentation
// fall back to a single uncut sheet.
type GenerateSheetCommand struct {
	date    time.Time
	planIDs []string

	guard guard.ConstructorGuard
}

// NewGenerateSheetCommand creates a validated command for the given date
// and plan set.
func NewGenerateSheetCommand(date time.Time, planIDs []string) (GenerateSheetCommand, error) {
	if date.IsZero() {
		return GenerateSheetCommand{}, errs.NewValueIsRequiredError("date")
	}
	if len(planIDs) == 0 {
		return GenerateSheetCommand{}, errs.NewValueIsRequiredError("planIDs")
	}
	for _, planID := range planIDs {
		if planID == "" {
			return GenerateSheetCommand{}, errs.NewValueIsInvalidError("planIDs")
		}
	}

	return GenerateSheetCommand{
		date:    date,
		planIDs: planIDs,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Date returns the delivery date the sheets are for.
func (c *GenerateSheetCommand) Date() time.Time {
	return c.date
}

// PlanIDs returns every plan to include in the sheet run.
func (c *GenerateSheetCommand) PlanIDs() []string {
	return c.planIDs
}

// Validate ensures the command was created through the constructor.
func (c *GenerateSheetCommand) Validate() error {
	return c.guard.Validate(
		ErrGenerateSheetCommandIsNotConstructed,
	)
}
