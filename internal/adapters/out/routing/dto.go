package routing

import "encoding/json"

// wireDateFormat is the date layout the routing backend speaks.
const wireDateFormat = "2006-01-02"

type jobCreatedResponse struct {
	JobID string `json:"jobId"`
}

type jobStatusResponse struct {
	Status   string          `json:"status"`
	Progress int             `json:"progress"`
	Message  string          `json:"message"`
	Result   json.RawMessage `json:"result,omitempty"`
}

type generatePlansRequest struct {
	Date string `json:"date"`
}

type fetchSortedSchedulesRequest struct {
	PlanID string `json:"planId"`
	Date   string `json:"date"`
}

type planSplitDTO struct {
	PlanID     string `json:"planId"`
	SplitStops []int  `json:"splitStops"`
}

type segmentDTO struct {
	EndStopPosition int    `json:"endStopPosition"`
	DriverID        int    `json:"driverId"`
	PlanID          string `json:"planId"`
}

type generateSheetRequest struct {
	Plans    []planSplitDTO `json:"plans"`
	Date     string         `json:"date"`
	Segments []segmentDTO   `json:"segments"`
}

type planDTO struct {
	PlanID     string `json:"planId"`
	RouteID    int    `json:"routeId"`
	PlanTitle  string `json:"planTitle"`
	StopsAdded int    `json:"stopsAdded"`
	PlanURL    string `json:"planUrl"`
}
