package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/core/domain/model/job"
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

type MockJobWatcher struct{ mock.Mock }

func (m *MockJobWatcher) Watch(ctx context.Context, jobID string, kind job.Kind, planID string) {
	m.Called(ctx, jobID, kind, planID)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Save(ctx context.Context, data segment.PlanAssignmentData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, planID string) (segment.PlanAssignmentData, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(segment.PlanAssignmentData), args.Error(1)
}

func (m *MockAssignmentRepository) GetAll(ctx context.Context) ([]segment.PlanAssignmentData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]segment.PlanAssignmentData), args.Error(1)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

func mustSegment(t *testing.T, planID string, end int, driverID int) segment.Segment {
	t.Helper()
	seg, err := segment.NewSegment(planID, end, driverID)
	require.NoError(t, err)
	return seg
}
