package plan

import (
	"errors"

	"routeadmin/internal/pkg/errs"
)

// ErrScheduleStopIsNotConstructed is returned when a ScheduleStop was not
// created through NewScheduleStop.
var ErrScheduleStopIsNotConstructed = errors.New(
	"ScheduleStop must be created via NewScheduleStop constructor")

// ScheduleStop is one entry in a plan's delivery sequence, produced by the
// schedule-fetch job. Ordering by StopPosition is authoritative: positions
// are 1-based, dense, and unique within a plan.
type ScheduleStop struct {
	stopPosition int
	name         string
	addressLines []string
	postcode     string

	isConstructed bool
}

// NewScheduleStop creates a validated schedule stop.
// stopPosition must be >= 1; name, addressLines and postcode are carried
// through from the routing provider as-is.
func NewScheduleStop(stopPosition int, name string, addressLines []string, postcode string) (ScheduleStop, error) {
	if stopPosition < 1 {
		return ScheduleStop{}, errs.NewValueIsInvalidError("stopPosition")
	}

	return ScheduleStop{
		stopPosition:  stopPosition,
		name:          name,
		addressLines:  addressLines,
		postcode:      postcode,
		isConstructed: true,
	}, nil
}

// Validate ensures the stop was created through NewScheduleStop.
func (s ScheduleStop) Validate() error {
	if !s.isConstructed {
		return ErrScheduleStopIsNotConstructed
	}
	return nil
}

// StopPosition returns the 1-based position in the delivery sequence.
func (s ScheduleStop) StopPosition() int {
	return s.stopPosition
}

// Name returns the recipient name for the stop.
func (s ScheduleStop) Name() string {
	return s.name
}

// AddressLines returns the delivery address lines.
func (s ScheduleStop) AddressLines() []string {
	return s.addressLines
}

// Postcode returns the delivery postcode.
func (s ScheduleStop) Postcode() string {
	return s.postcode
}
