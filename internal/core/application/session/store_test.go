package session_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/core/domain/model/segment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func committedAssignment(t *testing.T, planID string, end int, driverID int) segment.PlanAssignmentData {
	t.Helper()
	seg, err := segment.NewSegment(planID, end, driverID)
	require.NoError(t, err)
	data, err := segment.NewPlanAssignmentData(planID, []segment.Segment{seg}, kernel.NewUUID())
	require.NoError(t, err)
	return data
}

func TestStore_CommitAndGet(t *testing.T) {
	t.Run("commit_then_get", func(t *testing.T) {
		store := session.NewStore()
		data := committedAssignment(t, "plan-1", 10, 7)

		store.Commit(data)

		got, ok := store.Get("plan-1")
		require.True(t, ok)
		assert.Equal(t, data.PlanID(), got.PlanID())
		assert.True(t, data.Version().IsEqual(got.Version()))
	})

	t.Run("missing_plan", func(t *testing.T) {
		store := session.NewStore()

		_, ok := store.Get("plan-missing")
		assert.False(t, ok)
	})

	t.Run("recommit_replaces_wholesale", func(t *testing.T) {
		store := session.NewStore()
		first := committedAssignment(t, "plan-1", 10, 7)
		second := committedAssignment(t, "plan-1", 10, 9)

		store.Commit(first)
		store.Commit(second)

		got, ok := store.Get("plan-1")
		require.True(t, ok)
		assert.Equal(t, 9, got.Segments()[0].DriverID())
		assert.Equal(t, 1, store.Len())
	})
}

func TestStore_All(t *testing.T) {
	store := session.NewStore()
	store.Commit(committedAssignment(t, "plan-1", 10, 7))
	store.Commit(committedAssignment(t, "plan-2", 5, 3))

	all := store.All()

	require.Len(t, all, 2)

	// Snapshot is a copy: deleting from it leaves the store intact
	delete(all, "plan-1")
	_, ok := store.Get("plan-1")
	assert.True(t, ok)
}

func TestStore_WithCommitLock(t *testing.T) {
	t.Run("propagates_fn_error", func(t *testing.T) {
		store := session.NewStore()
		want := errors.New("boom")

		err := store.WithCommitLock("plan-1", func() error { return want })

		assert.Equal(t, want, err)
	})

	t.Run("serializes_same_plan", func(t *testing.T) {
		store := session.NewStore()

		var inCritical atomic.Int32
		var overlaps atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.WithCommitLock("plan-1", func() error {
					if inCritical.Add(1) > 1 {
						overlaps.Add(1)
					}
					time.Sleep(time.Millisecond)
					inCritical.Add(-1)
					return nil
				})
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(0), overlaps.Load())
	})
}

func TestStore_Prune(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := session.NewStoreWithClock(clock)

	store.Commit(committedAssignment(t, "plan-old", 10, 7))

	// Advance past the TTL and commit a fresh entry
	now = now.Add(2 * time.Hour)
	store.Commit(committedAssignment(t, "plan-fresh", 5, 3))

	pruned := store.Prune(time.Hour)

	assert.Equal(t, 1, pruned)
	_, oldOK := store.Get("plan-old")
	_, freshOK := store.Get("plan-fresh")
	assert.False(t, oldOK)
	assert.True(t, freshOK)
}
