package job

import (
	"fmt"

	"routeadmin/internal/pkg/errs"
)

// Kind identifies which long-running backend operation a job performs.
// The kind decides how a completed result payload is interpreted and which
// polling cadence suits the job.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindGeneratePlans builds delivery plans for every route on a date.
	// Completion carries no payload; the caller re-fetches plans.
	KindGeneratePlans

	// KindOptimizePlans re-orders stops within existing plans.
	// Completion carries no payload; the caller re-fetches plans.
	KindOptimizePlans

	// KindGenerateSheet produces the picking sheets split per driver.
	// Completion references a downloadable artifact.
	KindGenerateSheet

	// KindFetchSchedule retrieves the ordered stop schedule for one plan.
	// Completion carries a serialized list of schedule stops.
	KindFetchSchedule
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:       "Unknown",
		KindGeneratePlans: "GeneratePlans",
		KindOptimizePlans: "OptimizePlans",
		KindGenerateSheet: "GenerateSheet",
		KindFetchSchedule: "FetchSchedule",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindGeneratePlans: "GeneratePlans",
		KindOptimizePlans: "OptimizePlans",
		KindGenerateSheet: "GenerateSheet",
		KindFetchSchedule: "FetchSchedule",
	}
}

// Validate checks if the Kind value is one of the four job kinds.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid job kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements fmt.Stringer; safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
