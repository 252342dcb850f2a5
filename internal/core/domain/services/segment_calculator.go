package services

import (
	"sort"

	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"
)

// SegmentCalculator is a domain service that turns a set of cut points into
// the current list of contiguous segments for a plan, preserving driver
// assignments wherever the specific boundary survived the edit.
//
// The calculation is pure and deterministic: identical inputs always yield
// identical output, and no state is kept between calls. The admin UI calls
// it on every cut-point toggle; the commit handler relies on its output
// shape.
//
// Example:
//
//	calc := services.NewSegmentCalculator()
//	segments, err := calc.Calculate([]int{4, 7}, 10, "plan-1", previous)
//	// segments end at 4, 7 and 10; drivers carried over where the
//	// boundary positions 4, 7 or 10 existed in previous
type SegmentCalculator struct{}

// NewSegmentCalculator creates a new SegmentCalculator instance.
func NewSegmentCalculator() SegmentCalculator {
	return SegmentCalculator{}
}

// Calculate produces the ordered segment list for a plan.
//
// Cut points outside [1, stopsAdded-1] are filtered out rather than
// rejected: the boundary-edit UI validates individual toggles separately,
// and stale cut points from a shrunk plan must not poison the result.
// Duplicates are collapsed. stopsAdded itself is always appended as the
// mandatory final boundary.
//
// For each resulting end position, a prior driver assignment is looked up
// in previous by exact end-position match; segments whose boundary is new
// (or was removed and re-added) start unassigned. A plan with zero stops
// yields an empty result; a single-stop plan yields exactly one segment
// covering the whole route.
func (c SegmentCalculator) Calculate(
	cutPoints []int,
	stopsAdded int,
	planID string,
	previous []segment.Segment,
) ([]segment.Segment, error) {
	if planID == "" {
		return nil, errs.NewValueIsRequiredError("planID")
	}
	if stopsAdded <= 0 {
		return []segment.Segment{}, nil
	}

	ends := boundaryPositions(cutPoints, stopsAdded)

	previousDrivers := make(map[int]int, len(previous))
	for _, seg := range previous {
		if seg.PlanID() == planID {
			previousDrivers[seg.EndStopPosition()] = seg.DriverID()
		}
	}

	segments := make([]segment.Segment, 0, len(ends))
	for _, end := range ends {
		driverID := driver.UnassignedID
		if prior, ok := previousDrivers[end]; ok {
			driverID = prior
		}

		seg, err := segment.NewSegment(planID, end, driverID)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

// boundaryPositions returns the sorted, deduplicated segment end positions:
// every in-range cut point plus stopsAdded as the final boundary.
func boundaryPositions(cutPoints []int, stopsAdded int) []int {
	seen := make(map[int]struct{}, len(cutPoints)+1)
	for _, cut := range cutPoints {
		if cut >= 1 && cut <= stopsAdded-1 {
			seen[cut] = struct{}{}
		}
	}
	seen[stopsAdded] = struct{}{}

	ends := make([]int, 0, len(seen))
	for end := range seen {
		ends = append(ends, end)
	}
	sort.Ints(ends)
	return ends
}
