// Package services contains stateless domain services implementing the
// segmentation logic that does not belong to a single aggregate:
//
//   - SegmentCalculator: cut points -> ordered contiguous segments with
//     driver assignments preserved across unchanged boundaries
//   - WorkloadAggregator: per-driver assigned-segment counts across all
//     plans, plus the projected count for a prospective driver choice
//
// Both services are pure functions over their inputs and safe for
// concurrent use.
package services
