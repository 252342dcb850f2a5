// Package segment models the route-segmentation domain: the Segment (one
// contiguous sub-range of a plan's stops assigned to a driver), cut-point
// validation, and the committed PlanAssignmentData aggregate with its
// derived backend-compatible splits and optimistic-concurrency version.
//
// The ordered set of segments for a plan partitions [1, stopsAdded] into
// contiguous, non-overlapping ranges: segment i starts one past segment
// i-1's end position (or at 1 for the first) and the last segment always
// ends at stopsAdded.
package segment
