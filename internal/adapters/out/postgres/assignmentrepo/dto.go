// Package assignmentrepo provides data transfer objects and mapping
// functions for plan assignment persistence. A committed assignment is
// stored as one plan_assignments row plus one route_segments row per
// segment; Save replaces the whole set wholesale.
package assignmentrepo

import (
	"time"

	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/core/domain/model/segment"

	"github.com/google/uuid"
)

// PlanAssignmentDTO represents the database row for one committed plan
// assignment. The version column carries the optimistic-concurrency token
// minted at commit time.
type PlanAssignmentDTO struct {
	PlanID    string            `gorm:"type:varchar(128);primaryKey"`
	Version   uuid.UUID         `gorm:"type:uuid;not null"`
	UpdatedAt time.Time         `gorm:"not null"`
	Segments  []RouteSegmentDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "plan_assignments".
func (PlanAssignmentDTO) TableName() string {
	return "plan_assignments"
}

// RouteSegmentDTO represents one committed route segment. The composite
// key (plan, end position) mirrors the domain invariant that end
// positions are unique within a plan.
type RouteSegmentDTO struct {
	PlanID          string `gorm:"type:varchar(128);primaryKey"`
	EndStopPosition int    `gorm:"primaryKey"`
	DriverID        int    `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "route_segments".
func (RouteSegmentDTO) TableName() string {
	return "route_segments"
}

// fromDomain converts a committed assignment to its database rows.
// Splits are not stored: they are derived from the segments on read, so
// the two can never disagree.
func fromDomain(data segment.PlanAssignmentData) PlanAssignmentDTO {
	segments := data.Segments()
	segmentDTOs := make([]RouteSegmentDTO, 0, len(segments))
	for _, seg := range segments {
		segmentDTOs = append(segmentDTOs, RouteSegmentDTO{
			PlanID:          seg.PlanID(),
			EndStopPosition: seg.EndStopPosition(),
			DriverID:        seg.DriverID(),
		})
	}

	return PlanAssignmentDTO{
		PlanID:   data.PlanID(),
		Version:  data.Version().Bytes(),
		Segments: segmentDTOs,
	}
}

// toDomain reconstructs the assignment aggregate from its database rows.
func toDomain(dto PlanAssignmentDTO) (segment.PlanAssignmentData, error) {
	version, err := kernel.UUIDFromBytes(dto.Version[:])
	if err != nil {
		return segment.PlanAssignmentData{}, err
	}

	segments := make([]segment.Segment, 0, len(dto.Segments))
	for _, segDTO := range dto.Segments {
		seg, segErr := segment.NewSegment(segDTO.PlanID, segDTO.EndStopPosition, segDTO.DriverID)
		if segErr != nil {
			return segment.PlanAssignmentData{}, segErr
		}
		segments = append(segments, seg)
	}

	return segment.NewPlanAssignmentData(dto.PlanID, segments, version)
}
