package queries

import (
	"context"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAssignmentQueryHandler reads a plan's committed assignment. The
// session store answers first; when the session was pruned or the service
// restarted, the query falls back to the persisted rows, so a committed
// assignment is never lost to the caller. Returns
// errs.ObjectNotFoundError when the plan was never committed anywhere.
type GetAssignmentQueryHandler struct {
	store *session.Store
	db    *gorm.DB
}

// NewGetAssignmentQueryHandler creates a handler for assignment reads.
func NewGetAssignmentQueryHandler(store *session.Store, db *gorm.DB) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{store: store, db: db}
}

// Handle returns the committed assignment read model for the queried plan.
func (h GetAssignmentQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentQuery,
) (GetAssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentQueryResponse{}, err
	}

	if data, ok := h.store.Get(query.PlanID()); ok {
		return GetAssignmentQueryResponse{
			PlanID:   data.PlanID(),
			Splits:   data.Splits(),
			Segments: data.Segments(),
			Version:  data.Version().String(),
		}, nil
	}

	return h.fromDatabase(ctx, query.PlanID())
}

func (h GetAssignmentQueryHandler) fromDatabase(ctx context.Context, planID string) (GetAssignmentQueryResponse, error) {
	var version string
	result := h.db.WithContext(ctx).Raw(`
		SELECT version
		FROM plan_assignments
		WHERE plan_id = ?
	`, planID).Scan(&version)
	if result.Error != nil {
		return GetAssignmentQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetAssignmentQueryResponse{}, errs.NewObjectNotFoundError("planID", planID)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			end_stop_position,
			driver_id
		FROM route_segments
		WHERE plan_id = ?
		ORDER BY end_stop_position
	`, planID).Rows()
	if err != nil {
		return GetAssignmentQueryResponse{}, err
	}
	defer rows.Close()

	segments := make([]segment.Segment, 0)
	for rows.Next() {
		var endStopPosition, driverID int
		if err = rows.Scan(&endStopPosition, &driverID); err != nil {
			return GetAssignmentQueryResponse{}, err
		}

		seg, segErr := segment.NewSegment(planID, endStopPosition, driverID)
		if segErr != nil {
			return GetAssignmentQueryResponse{}, segErr
		}
		segments = append(segments, seg)
	}
	if err = rows.Err(); err != nil {
		return GetAssignmentQueryResponse{}, err
	}

	versionID, err := kernel.UUIDFromString(version)
	if err != nil {
		return GetAssignmentQueryResponse{}, err
	}

	data, err := segment.NewPlanAssignmentData(planID, segments, versionID)
	if err != nil {
		return GetAssignmentQueryResponse{}, err
	}

	return GetAssignmentQueryResponse{
		PlanID:   data.PlanID(),
		Splits:   data.Splits(),
		Segments: data.Segments(),
		Version:  data.Version().String(),
	}, nil
}
