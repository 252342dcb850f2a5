package job_test

import (
	"encoding/json"
	"testing"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	t.Run("valid_running_snapshot", func(t *testing.T) {
		// When
		snap, err := job.NewSnapshot("job-1", job.KindFetchSchedule, job.StatusRunning, 45, "fetching stops", nil)

		// Then
		require.NoError(t, err)
		require.NoError(t, snap.Validate())
		assert.Equal(t, "job-1", snap.ID())
		assert.Equal(t, job.KindFetchSchedule, snap.Kind())
		assert.Equal(t, job.StatusRunning, snap.Status())
		assert.Equal(t, 45, snap.Progress())
		assert.Equal(t, "fetching stops", snap.Message())
		assert.False(t, snap.IsTerminal())
	})

	t.Run("completed_snapshot_carries_result", func(t *testing.T) {
		result := json.RawMessage(`[{"stopPosition":1}]`)

		snap, err := job.NewSnapshot("job-2", job.KindFetchSchedule, job.StatusCompleted, 100, "", result)

		require.NoError(t, err)
		assert.True(t, snap.IsTerminal())
		assert.JSONEq(t, string(result), string(snap.Result()))
	})

	t.Run("empty_id_rejected", func(t *testing.T) {
		_, err := job.NewSnapshot("", job.KindGeneratePlans, job.StatusPending, 0, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("progress_out_of_range_rejected", func(t *testing.T) {
		_, err := job.NewSnapshot("job-3", job.KindGeneratePlans, job.StatusRunning, 101, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = job.NewSnapshot("job-3", job.KindGeneratePlans, job.StatusRunning, -1, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("invalid_kind_and_status_rejected", func(t *testing.T) {
		_, err := job.NewSnapshot("job-4", job.KindUnknown, job.StatusRunning, 0, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = job.NewSnapshot("job-4", job.KindGenerateSheet, job.StatusUnknown, 0, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var snap job.Snapshot
		require.ErrorIs(t, snap.Validate(), job.ErrSnapshotIsNotConstructed)
	})
}

func TestStatus(t *testing.T) {
	t.Run("terminal_states", func(t *testing.T) {
		assert.False(t, job.StatusPending.IsTerminal())
		assert.False(t, job.StatusRunning.IsTerminal())
		assert.True(t, job.StatusCompleted.IsTerminal())
		assert.True(t, job.StatusFailed.IsTerminal())
	})

	t.Run("string_round_trip", func(t *testing.T) {
		for _, status := range []job.Status{
			job.StatusPending, job.StatusRunning, job.StatusCompleted, job.StatusFailed,
		} {
			parsed, err := job.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown_status_string_rejected", func(t *testing.T) {
		_, err := job.StatusFromString("Paused")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.Error(t, job.StatusUnknown.Validate())
		assert.Equal(t, "Unknown", job.StatusUnknown.String())
	})
}

func TestKind(t *testing.T) {
	t.Run("valid_kinds", func(t *testing.T) {
		for _, kind := range []job.Kind{
			job.KindGeneratePlans, job.KindOptimizePlans, job.KindGenerateSheet, job.KindFetchSchedule,
		} {
			require.NoError(t, kind.Validate())
			assert.NotEqual(t, "Unknown", kind.String())
		}
	})

	t.Run("unknown_kind_is_invalid", func(t *testing.T) {
		require.Error(t, job.KindUnknown.Validate())
	})
}
