package segment

import (
	"errors"
	"fmt"

	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/pkg/errs"
)

// ErrSegmentIsNotConstructed is returned when a Segment was not created
// through NewSegment.
var ErrSegmentIsNotConstructed = errors.New("Segment must be created via NewSegment constructor")

// Segment is one contiguous sub-range of a plan's stops, handed to exactly
// one driver as a picking sheet. A segment is identified by the position of
// its last stop; its first stop is implied by the preceding segment's end
// (or 1 for the first segment).
//
// Invariants:
//   - PlanID is never empty
//   - EndStopPosition is >= 1
//   - DriverID is >= driver.UnassignedID; zero means no driver chosen yet
type Segment struct {
	planID          string
	endStopPosition int
	driverID        int

	isConstructed bool
}

// NewSegment creates a validated Segment.
//
// Parameters:
//   - planID: the plan the segment belongs to (required)
//   - endStopPosition: 1-based position of the segment's last stop
//   - driverID: assigned driver, or driver.UnassignedID for none yet
func NewSegment(planID string, endStopPosition int, driverID int) (Segment, error) {
	if planID == "" {
		return Segment{}, errs.NewValueIsRequiredError("planID")
	}
	if endStopPosition < 1 {
		return Segment{}, errs.NewValueIsInvalidError("endStopPosition")
	}
	if driverID < driver.UnassignedID {
		return Segment{}, errs.NewValueIsInvalidError("driverID")
	}

	return Segment{
		planID:          planID,
		endStopPosition: endStopPosition,
		driverID:        driverID,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Segment was created through NewSegment.
func (s Segment) Validate() error {
	if !s.isConstructed {
		return ErrSegmentIsNotConstructed
	}
	return nil
}

// PlanID returns the plan the segment belongs to.
func (s Segment) PlanID() string {
	return s.planID
}

// EndStopPosition returns the 1-based position of the segment's last stop.
func (s Segment) EndStopPosition() int {
	return s.endStopPosition
}

// DriverID returns the assigned driver, or driver.UnassignedID.
func (s Segment) DriverID() int {
	return s.driverID
}

// IsAssigned reports whether a driver has been chosen for the segment.
// Only assigned segments count toward workload and may be committed.
func (s Segment) IsAssigned() bool {
	return s.driverID > driver.UnassignedID
}

// WithDriver returns a copy of the segment assigned to the given driver.
func (s Segment) WithDriver(driverID int) (Segment, error) {
	return NewSegment(s.planID, s.endStopPosition, driverID)
}

// String returns a compact representation for logs.
func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s, end=%d, driver=%d)", s.planID, s.endStopPosition, s.driverID)
}

// ValidateCutPoint checks that cutPoint may sever a route with stopsAdded
// stops. Valid cut points lie in [1, stopsAdded-1]: the final stop is never
// a valid cut point because it always ends the implicit last segment, and a
// single-stop route has no valid cut points at all.
func ValidateCutPoint(cutPoint int, stopsAdded int) error {
	if stopsAdded <= 1 {
		return errs.NewValueIsInvalidErrorWithCause("cutPoint",
			fmt.Errorf("a route with %d stops cannot be cut", stopsAdded))
	}
	if cutPoint < 1 || cutPoint > stopsAdded-1 {
		return errs.NewValueIsOutOfRangeError("cutPoint", cutPoint, 1, stopsAdded-1)
	}
	return nil
}
