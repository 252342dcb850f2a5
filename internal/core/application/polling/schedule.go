package polling

import (
	"encoding/json"
	"fmt"
	"sort"

	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/pkg/errs"
)

// scheduleStopDTO mirrors one stop entry in the schedule-fetch result
// payload.
type scheduleStopDTO struct {
	StopPosition int      `json:"stopPosition"`
	Name         string   `json:"name"`
	AddressLines []string `json:"addressLines"`
	Postcode     string   `json:"postcode"`
}

// DecodeScheduleStops decodes the completion payload of a schedule-fetch
// job into ordered schedule stops. The backend serializes the list either
// as a JSON array or as a JSON string containing that array; both forms
// are accepted. Stop position is authoritative for ordering: the result
// is sorted by stopPosition regardless of payload order, and a duplicate
// position is rejected. Any shape or value violation surfaces as
// errs.ParseError, scoped to this one result.
func DecodeScheduleStops(raw json.RawMessage) ([]plan.ScheduleStop, error) {
	if len(raw) == 0 {
		return nil, errs.NewParseError("schedule result is empty")
	}

	payload := []byte(raw)
	if payload[0] == '"' {
		var inner string
		if err := json.Unmarshal(payload, &inner); err != nil {
			return nil, errs.NewParseErrorWithCause("schedule stops", err)
		}
		payload = []byte(inner)
	}

	var dtos []scheduleStopDTO
	if err := json.Unmarshal(payload, &dtos); err != nil {
		return nil, errs.NewParseErrorWithCause("schedule stops", err)
	}

	stops := make([]plan.ScheduleStop, 0, len(dtos))
	for _, dto := range dtos {
		stop, err := plan.NewScheduleStop(dto.StopPosition, dto.Name, dto.AddressLines, dto.Postcode)
		if err != nil {
			return nil, errs.NewParseErrorWithCause("schedule stops", err)
		}
		stops = append(stops, stop)
	}

	sort.Slice(stops, func(i, j int) bool {
		return stops[i].StopPosition() < stops[j].StopPosition()
	})
	for i := 1; i < len(stops); i++ {
		if stops[i].StopPosition() == stops[i-1].StopPosition() {
			return nil, errs.NewParseError(
				fmt.Sprintf("duplicate stop position %d in schedule result", stops[i].StopPosition()))
		}
	}

	return stops, nil
}
