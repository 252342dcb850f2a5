package services

import (
	"routeadmin/internal/core/domain/model/segment"
)

// WorkloadAggregator is a domain service that computes per-driver workload
// across every plan's committed segments. It has no state of its own and
// must be recomputed after every commit; the admin UI uses the counts to
// warn about overloading a driver.
type WorkloadAggregator struct{}

// NewWorkloadAggregator creates a new WorkloadAggregator instance.
func NewWorkloadAggregator() WorkloadAggregator {
	return WorkloadAggregator{}
}

// Aggregate sums one unit per driver-assigned segment across all plans.
// Unassigned segments contribute nothing, so the sum of all counts equals
// the total number of assigned segments.
func (w WorkloadAggregator) Aggregate(all map[string]segment.PlanAssignmentData) map[int]int {
	counts := make(map[int]int)
	for _, data := range all {
		for _, seg := range data.Segments() {
			if seg.IsAssigned() {
				counts[seg.DriverID()]++
			}
		}
	}
	return counts
}

// Projected returns the workload driverID would carry if chosen for the
// segment ending at endStopPosition on planID: the driver's assigned
// segments everywhere else, plus one for the prospective choice. The
// existing assignment at that exact segment is excluded first, so
// re-selecting the same driver for the same segment does not double-count.
func (w WorkloadAggregator) Projected(
	all map[string]segment.PlanAssignmentData,
	planID string,
	endStopPosition int,
	driverID int,
) int {
	count := 0
	for id, data := range all {
		for _, seg := range data.Segments() {
			if id == planID && seg.EndStopPosition() == endStopPosition {
				continue
			}
			if seg.DriverID() == driverID && seg.IsAssigned() {
				count++
			}
		}
	}
	return count + 1
}
