package http

import (
	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/core/domain/model/segment"

	"github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type GeneratePlansRequest struct {
	Date types.Date `json:"date"`
}

type FetchScheduleRequest struct {
	Date types.Date `json:"date"`
}

type GenerateSheetRequest struct {
	Date    types.Date `json:"date"`
	PlanIDs []string   `json:"planIds"`
}

// SegmentPayload is one segment on the wire. The plan comes from the URL
// path, not the body.
type SegmentPayload struct {
	EndStopPosition int `json:"endStopPosition"`
	DriverID        int `json:"driverId"`
}

type SegmentPreviewRequest struct {
	CutPoints  []int            `json:"cutPoints"`
	StopsAdded int              `json:"stopsAdded"`
	Previous   []SegmentPayload `json:"previous"`
}

type PutAssignmentRequest struct {
	Segments        []SegmentPayload `json:"segments"`
	ExpectedVersion string           `json:"expectedVersion"`
}

type JobCreatedResponse struct {
	JobID string `json:"jobId"`
}

type JobStateResponse struct {
	JobID    string `json:"jobId"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Message  string `json:"message"`
}

type SegmentResponse struct {
	PlanID          string `json:"planId"`
	EndStopPosition int    `json:"endStopPosition"`
	DriverID        int    `json:"driverId"`
}

type AssignmentResponse struct {
	PlanID   string            `json:"planId"`
	Splits   []int             `json:"splits"`
	Segments []SegmentResponse `json:"segments"`
	Version  string            `json:"version"`
}

type PlanResponse struct {
	PlanID     string `json:"planId"`
	RouteID    int    `json:"routeId"`
	PlanTitle  string `json:"planTitle"`
	StopsAdded int    `json:"stopsAdded"`
	PlanURL    string `json:"planUrl"`
}

type ScheduleStopResponse struct {
	StopPosition int      `json:"stopPosition"`
	Name         string   `json:"name"`
	AddressLines []string `json:"addressLines"`
	Postcode     string   `json:"postcode"`
}

type DriverResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
}

type DriversPageResponse struct {
	Data []DriverResponse `json:"data"`
}

type WorkloadResponse struct {
	SegmentsByDriver map[int]int `json:"segmentsByDriver"`
}

type ProjectedWorkloadResponse struct {
	DriverID  int `json:"driverId"`
	Projected int `json:"projected"`
}

func segmentsToResponse(segments []segment.Segment) []SegmentResponse {
	out := make([]SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		out = append(out, SegmentResponse{
			PlanID:          seg.PlanID(),
			EndStopPosition: seg.EndStopPosition(),
			DriverID:        seg.DriverID(),
		})
	}
	return out
}

func plansToResponse(plans []plan.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{
			PlanID:     p.PlanID(),
			RouteID:    p.RouteID(),
			PlanTitle:  p.PlanTitle(),
			StopsAdded: p.StopsAdded(),
			PlanURL:    p.PlanURL(),
		})
	}
	return out
}

func stopsToResponse(stops []plan.ScheduleStop) []ScheduleStopResponse {
	out := make([]ScheduleStopResponse, 0, len(stops))
	for _, stop := range stops {
		out = append(out, ScheduleStopResponse{
			StopPosition: stop.StopPosition(),
			Name:         stop.Name(),
			AddressLines: stop.AddressLines(),
			Postcode:     stop.Postcode(),
		})
	}
	return out
}

func driversToResponse(result []driver.Driver) DriversPageResponse {
	out := make([]DriverResponse, 0, len(result))
	for _, d := range result {
		out = append(out, DriverResponse{
			ID:        d.ID(),
			FirstName: d.FirstName(),
			Surname:   d.Surname(),
		})
	}
	return DriversPageResponse{Data: out}
}
