package services_test

import (
	"testing"

	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/core/domain/services"
	"routeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endPositions(segments []segment.Segment) []int {
	out := make([]int, len(segments))
	for i, seg := range segments {
		out[i] = seg.EndStopPosition()
	}
	return out
}

func driverIDs(segments []segment.Segment) []int {
	out := make([]int, len(segments))
	for i, seg := range segments {
		out[i] = seg.DriverID()
	}
	return out
}

func TestSegmentCalculator_Calculate(t *testing.T) {
	calc := services.NewSegmentCalculator()

	t.Run("no_cuts_yields_single_full_route_segment", func(t *testing.T) {
		// When
		segments, err := calc.Calculate(nil, 10, "plan-1", nil)

		// Then
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, 10, segments[0].EndStopPosition())
		assert.False(t, segments[0].IsAssigned())
	})

	t.Run("cuts_partition_the_route", func(t *testing.T) {
		segments, err := calc.Calculate([]int{4, 7}, 10, "plan-1", nil)

		require.NoError(t, err)
		assert.Equal(t, []int{4, 7, 10}, endPositions(segments))
		assert.Equal(t, []int{0, 0, 0}, driverIDs(segments))
	})

	t.Run("cut_points_are_sorted_and_deduplicated", func(t *testing.T) {
		segments, err := calc.Calculate([]int{7, 4, 7, 4}, 10, "plan-1", nil)

		require.NoError(t, err)
		assert.Equal(t, []int{4, 7, 10}, endPositions(segments))
	})

	t.Run("out_of_range_cut_points_are_filtered", func(t *testing.T) {
		// 0 is below range, 10 is the final stop, 15 is beyond the route
		segments, err := calc.Calculate([]int{0, 5, 10, 15, -3}, 10, "plan-1", nil)

		require.NoError(t, err)
		assert.Equal(t, []int{5, 10}, endPositions(segments))
	})

	t.Run("zero_stops_yields_empty_result", func(t *testing.T) {
		segments, err := calc.Calculate([]int{1, 2}, 0, "plan-1", nil)

		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("single_stop_route_yields_exactly_one_segment", func(t *testing.T) {
		segments, err := calc.Calculate(nil, 1, "plan-1", nil)

		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, 1, segments[0].EndStopPosition())
	})

	t.Run("missing_plan_id_rejected", func(t *testing.T) {
		_, err := calc.Calculate(nil, 10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSegmentCalculator_AssignmentPreservation(t *testing.T) {
	calc := services.NewSegmentCalculator()

	previousOf := func(t *testing.T, cuts []int, stops int, drivers []int) []segment.Segment {
		t.Helper()
		segments, err := calc.Calculate(cuts, stops, "plan-1", nil)
		require.NoError(t, err)
		require.Len(t, segments, len(drivers))
		for i, id := range drivers {
			segments[i], err = segments[i].WithDriver(id)
			require.NoError(t, err)
		}
		return segments
	}

	t.Run("unchanged_boundaries_keep_their_drivers", func(t *testing.T) {
		// Given segments at 4, 7, 10 assigned to drivers 3, 3, 5
		previous := previousOf(t, []int{4, 7}, 10, []int{3, 3, 5})

		// When a new cut is added at 2
		segments, err := calc.Calculate([]int{2, 4, 7}, 10, "plan-1", previous)

		// Then the surviving boundaries keep their drivers and the new one is unassigned
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 7, 10}, endPositions(segments))
		assert.Equal(t, []int{0, 3, 3, 5}, driverIDs(segments))
	})

	t.Run("removing_a_cut_point_discards_only_that_assignment", func(t *testing.T) {
		previous := previousOf(t, []int{4, 7}, 10, []int{3, 9, 5})

		segments, err := calc.Calculate([]int{4}, 10, "plan-1", previous)

		require.NoError(t, err)
		assert.Equal(t, []int{4, 10}, endPositions(segments))
		assert.Equal(t, []int{3, 5}, driverIDs(segments))
	})

	t.Run("removed_then_readded_boundary_reverts_to_unassigned", func(t *testing.T) {
		// Given driver 9 on the segment ending at 7
		previous := previousOf(t, []int{7}, 10, []int{9, 5})

		// When the cut at 7 is removed...
		intermediate, err := calc.Calculate(nil, 10, "plan-1", previous)
		require.NoError(t, err)

		// ...and re-added against the intermediate state
		segments, err := calc.Calculate([]int{7}, 10, "plan-1", intermediate)
		require.NoError(t, err)

		// Then driver 9 is gone: the assignment existed only transiently
		assert.Equal(t, []int{7, 10}, endPositions(segments))
		assert.Equal(t, []int{0, 0}, driverIDs(segments))
	})

	t.Run("previous_segments_from_other_plans_are_ignored", func(t *testing.T) {
		foreign, err := segment.NewSegment("plan-2", 4, 8)
		require.NoError(t, err)

		segments, err := calc.Calculate([]int{4}, 10, "plan-1", []segment.Segment{foreign})

		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, driverIDs(segments))
	})
}

func TestSegmentCalculator_PartitionInvariant(t *testing.T) {
	calc := services.NewSegmentCalculator()

	cases := []struct {
		name       string
		cutPoints  []int
		stopsAdded int
		wantCount  int
	}{
		{"no_cuts", nil, 10, 1},
		{"two_cuts", []int{4, 7}, 10, 3},
		{"every_possible_cut", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 10, 10},
		{"duplicates_and_noise", []int{3, 3, 0, 12, 5}, 10, 3},
		{"single_stop", nil, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := calc.Calculate(tc.cutPoints, tc.stopsAdded, "plan-1", nil)
			require.NoError(t, err)

			// Count matches the deduplicated, filtered boundary set
			assert.Len(t, segments, tc.wantCount)

			// Strictly increasing, last equals stopsAdded, none exceed it
			ends := endPositions(segments)
			for i := 1; i < len(ends); i++ {
				assert.Greater(t, ends[i], ends[i-1])
			}
			assert.Equal(t, tc.stopsAdded, ends[len(ends)-1])
		})
	}
}

func TestSegmentCalculator_Idempotence(t *testing.T) {
	calc := services.NewSegmentCalculator()

	previous := []segment.Segment{}
	first, err := calc.Calculate([]int{4, 7}, 10, "plan-1", previous)
	require.NoError(t, err)

	second, err := calc.Calculate([]int{4, 7}, 10, "plan-1", previous)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
