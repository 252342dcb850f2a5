package plan

import (
	"errors"

	"routeadmin/internal/pkg/errs"
)

// ErrPlanIsNotConstructed is returned when a Plan instance was not created
// through the NewPlan factory method.
var ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan constructor")

// Plan identifies one route's generated delivery plan for a given date.
// Plans are produced by the external routing provider; this service treats
// them as read-only reference data whose stop count bounds segmentation.
//
// Invariants:
//   - PlanID is never empty
//   - RouteID is positive
//   - StopsAdded is never negative; it is the upper bound for cut points
type Plan struct {
	planID     string
	routeID    int
	planTitle  string
	stopsAdded int
	planURL    string

	isConstructed bool
}

// NewPlan creates a validated Plan.
//
// Parameters:
//   - planID: routing-provider identifier for the plan (required)
//   - routeID: the route this plan belongs to (must be positive)
//   - planTitle: display title (may be empty)
//   - stopsAdded: number of stops placed on the plan (must be >= 0)
//   - planURL: provider deep link for the plan (may be empty)
func NewPlan(planID string, routeID int, planTitle string, stopsAdded int, planURL string) (Plan, error) {
	if planID == "" {
		return Plan{}, errs.NewValueIsRequiredError("planID")
	}
	if routeID <= 0 {
		return Plan{}, errs.NewValueIsInvalidError("routeID")
	}
	if stopsAdded < 0 {
		return Plan{}, errs.NewValueIsInvalidError("stopsAdded")
	}

	return Plan{
		planID:        planID,
		routeID:       routeID,
		planTitle:     planTitle,
		stopsAdded:    stopsAdded,
		planURL:       planURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the Plan was created through NewPlan.
func (p Plan) Validate() error {
	if !p.isConstructed {
		return ErrPlanIsNotConstructed
	}
	return nil
}

// PlanID returns the routing-provider identifier for the plan.
func (p Plan) PlanID() string {
	return p.planID
}

// RouteID returns the route this plan belongs to.
func (p Plan) RouteID() int {
	return p.routeID
}

// PlanTitle returns the display title.
func (p Plan) PlanTitle() string {
	return p.planTitle
}

// StopsAdded returns the number of stops on the plan. A plan with zero
// stops cannot be segmented; one with a single stop has exactly one
// segment and no valid cut points.
func (p Plan) StopsAdded() int {
	return p.stopsAdded
}

// PlanURL returns the provider deep link for the plan.
func (p Plan) PlanURL() string {
	return p.planURL
}
