package queries

import (
	"errors"

	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrGetProjectedWorkloadQueryIsNotConstructed = errors.New(
	"GetProjectedWorkloadQuery must be created via NewGetProjectedWorkloadQuery constructor",
)

// GetProjectedWorkloadQuery answers the what-if the segmentation screen
// asks while a driver picker is open: how many segments would this driver
// hold if assigned to this one segment, counting the segment once even if
// the driver already holds it.
type GetProjectedWorkloadQuery struct {
	planID          string
	endStopPosition int
	driverID        int

	guard guard.ConstructorGuard
}

// NewGetProjectedWorkloadQuery creates a validated projection query for
// one candidate segment-driver pairing.
func NewGetProjectedWorkloadQuery(planID string, endStopPosition int, driverID int) (GetProjectedWorkloadQuery, error) {
	if planID == "" {
		return GetProjectedWorkloadQuery{}, errs.NewValueIsRequiredError("planID")
	}
	if endStopPosition < 1 {
		return GetProjectedWorkloadQuery{}, errs.NewValueIsInvalidError("endStopPosition")
	}
	if driverID <= driver.UnassignedID {
		return GetProjectedWorkloadQuery{}, errs.NewValueIsInvalidError("driverID")
	}

	return GetProjectedWorkloadQuery{
		planID:          planID,
		endStopPosition: endStopPosition,
		driverID:        driverID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// PlanID returns the plan of the candidate segment.
func (q GetProjectedWorkloadQuery) PlanID() string {
	return q.planID
}

// EndStopPosition returns the candidate segment's end position.
func (q GetProjectedWorkloadQuery) EndStopPosition() int {
	return q.endStopPosition
}

// DriverID returns the driver being considered.
func (q GetProjectedWorkloadQuery) DriverID() int {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q GetProjectedWorkloadQuery) Validate() error {
	return q.guard.Validate(ErrGetProjectedWorkloadQueryIsNotConstructed)
}
