package segment

import (
	"errors"
	"fmt"
	"sort"

	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when a PlanAssignmentData was
// not created through NewPlanAssignmentData.
var ErrAssignmentIsNotConstructed = errors.New(
	"PlanAssignmentData must be created via NewPlanAssignmentData constructor")

// PlanAssignmentData is the committed segmentation of one plan: the ordered
// segments, the derived split positions the backend consumes, and the
// version token used for optimistic concurrency at the commit boundary.
//
// Invariants:
//   - every segment belongs to the same plan
//   - segment end positions are strictly increasing
//   - Splits always equals the derived split set of Segments (the sorted
//     end positions of driver-assigned segments, excluding the final
//     boundary)
type PlanAssignmentData struct {
	planID   string
	splits   []int
	segments []Segment
	version  kernel.UUID

	isConstructed bool
}

// NewPlanAssignmentData creates a validated assignment aggregate for one
// plan. Segments are sorted by end position and splits are derived, so the
// splits/segments consistency invariant holds by construction.
func NewPlanAssignmentData(planID string, segments []Segment, version kernel.UUID) (PlanAssignmentData, error) {
	if planID == "" {
		return PlanAssignmentData{}, errs.NewValueIsRequiredError("planID")
	}
	if len(segments) == 0 {
		return PlanAssignmentData{}, errs.NewValueIsRequiredError("segments")
	}
	if err := version.Validate(); err != nil {
		return PlanAssignmentData{}, err
	}

	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EndStopPosition() < sorted[j].EndStopPosition()
	})

	for i, seg := range sorted {
		if err := seg.Validate(); err != nil {
			return PlanAssignmentData{}, err
		}
		if seg.PlanID() != planID {
			return PlanAssignmentData{}, errs.NewValueIsInvalidErrorWithCause("segments",
				fmt.Errorf("segment for plan %s does not belong to plan %s", seg.PlanID(), planID))
		}
		if i > 0 && seg.EndStopPosition() == sorted[i-1].EndStopPosition() {
			return PlanAssignmentData{}, errs.NewValueIsInvalidErrorWithCause("segments",
				fmt.Errorf("duplicate segment end position %d", seg.EndStopPosition()))
		}
	}

	return PlanAssignmentData{
		planID:        planID,
		splits:        DeriveSplits(sorted),
		segments:      sorted,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the aggregate was created through NewPlanAssignmentData.
func (a PlanAssignmentData) Validate() error {
	if !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// PlanID returns the plan the assignment belongs to.
func (a PlanAssignmentData) PlanID() string {
	return a.planID
}

// Splits returns the derived split positions: the end positions of
// driver-assigned segments excluding the final boundary. This is the shape
// the sheet-generation backend consumes.
func (a PlanAssignmentData) Splits() []int {
	out := make([]int, len(a.splits))
	copy(out, a.splits)
	return out
}

// Segments returns the segments sorted ascending by end position.
func (a PlanAssignmentData) Segments() []Segment {
	out := make([]Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// Version returns the optimistic-concurrency token minted at commit time.
func (a PlanAssignmentData) Version() kernel.UUID {
	return a.version
}

// AssignedCount returns how many segments have a driver chosen.
func (a PlanAssignmentData) AssignedCount() int {
	count := 0
	for _, seg := range a.segments {
		if seg.IsAssigned() {
			count++
		}
	}
	return count
}

// DeriveSplits computes the backend-compatible split positions for a set of
// segments: the sorted end positions of driver-assigned segments, strictly
// below the final boundary (the largest end position, which always closes
// the implicit last segment and is therefore never a split).
func DeriveSplits(segments []Segment) []int {
	if len(segments) == 0 {
		return []int{}
	}

	last := 0
	for _, seg := range segments {
		if seg.EndStopPosition() > last {
			last = seg.EndStopPosition()
		}
	}

	splits := make([]int, 0, len(segments)-1)
	for _, seg := range segments {
		if seg.EndStopPosition() < last && seg.IsAssigned() {
			splits = append(splits, seg.EndStopPosition())
		}
	}
	sort.Ints(splits)
	return splits
}
