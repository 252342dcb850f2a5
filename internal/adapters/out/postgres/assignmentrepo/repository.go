package assignmentrepo

import (
	"context"
	"errors"

	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements ports.AssignmentRepository using
// GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Save stores the committed assignment, replacing any previous one for
// the same plan. Delete-then-insert keeps the segment set exact; run it
// inside a unit of work so the replacement is atomic.
func (r *GormAssignmentRepository) Save(ctx context.Context, data segment.PlanAssignmentData) error {
	if err := data.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Where("plan_id = ?", data.PlanID()).Delete(&RouteSegmentDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("plan_id = ?", data.PlanID()).Delete(&PlanAssignmentDTO{}).Error; err != nil {
		return err
	}

	dto := fromDomain(data)
	return db.Create(&dto).Error
}

// Get retrieves the committed assignment of one plan.
func (r *GormAssignmentRepository) Get(ctx context.Context, planID string) (segment.PlanAssignmentData, error) {
	if planID == "" {
		return segment.PlanAssignmentData{}, errs.NewValueIsRequiredError("planID")
	}

	var dto PlanAssignmentDTO
	err := r.db.WithContext(ctx).
		Preload("Segments").
		First(&dto, "plan_id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return segment.PlanAssignmentData{}, errs.NewObjectNotFoundError("planID", planID)
		}
		return segment.PlanAssignmentData{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves every committed assignment.
func (r *GormAssignmentRepository) GetAll(ctx context.Context) ([]segment.PlanAssignmentData, error) {
	var dtos []PlanAssignmentDTO
	err := r.db.WithContext(ctx).
		Preload("Segments").
		Order("plan_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	all := make([]segment.PlanAssignmentData, 0, len(dtos))
	for _, dto := range dtos {
		data, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		all = append(all, data)
	}

	return all, nil
}
