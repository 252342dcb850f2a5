package queries_test

import (
	"context"
	"io"
	"testing"
	"time"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobBackend struct{ mock.Mock }

func (m *MockJobBackend) SubmitGeneratePlans(ctx context.Context, date time.Time) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}

func (m *MockJobBackend) SubmitOptimizePlans(ctx context.Context, planIDs []string) (string, error) {
	args := m.Called(ctx, planIDs)
	return args.String(0), args.Error(1)
}

func (m *MockJobBackend) SubmitGenerateSheet(ctx context.Context, req ports.SheetGenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockJobBackend) SubmitFetchSortedSchedules(ctx context.Context, planID string, date time.Time) (string, error) {
	args := m.Called(ctx, planID, date)
	return args.String(0), args.Error(1)
}

func (m *MockJobBackend) GetJob(ctx context.Context, jobID string, kind job.Kind) (job.Snapshot, error) {
	args := m.Called(ctx, jobID, kind)
	return args.Get(0).(job.Snapshot), args.Error(1)
}

func (m *MockJobBackend) DownloadSheet(ctx context.Context, jobID string) (io.ReadCloser, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockJobBackend) PlansByDate(ctx context.Context, date time.Time) ([]plan.Plan, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]plan.Plan), args.Error(1)
}

func (m *MockJobBackend) DeletePlans(ctx context.Context, planIDs []string) error {
	args := m.Called(ctx, planIDs)
	return args.Error(0)
}

type MockDriverDirectory struct{ mock.Mock }

func (m *MockDriverDirectory) GetDrivers(ctx context.Context, pageNumber int, pageSize int) ([]driver.Driver, error) {
	args := m.Called(ctx, pageNumber, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]driver.Driver), args.Error(1)
}

func mustSegment(t *testing.T, planID string, end int, driverID int) segment.Segment {
	t.Helper()
	seg, err := segment.NewSegment(planID, end, driverID)
	require.NoError(t, err)
	return seg
}

func storeWith(t *testing.T, assignments ...segment.PlanAssignmentData) *session.Store {
	t.Helper()
	store := session.NewStore()
	for _, data := range assignments {
		store.Commit(data)
	}
	return store
}

func mustAssignment(t *testing.T, planID string, segments ...segment.Segment) segment.PlanAssignmentData {
	t.Helper()
	data, err := segment.NewPlanAssignmentData(planID, segments, kernel.NewUUID())
	require.NoError(t, err)
	return data
}
