package planner

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *InvalidInputError under errors.Is.
var ErrInvalidInput = errors.New("invalid input")

type Reason string

const (
	ReasonEmptyThemes                 Reason = "empty_themes"
	ReasonUnknownTheme                Reason = "unknown_theme"
	ReasonNonPositiveDuration         Reason = "non_positive_duration"
	ReasonNonPositiveBudget           Reason = "non_positive_budget"
	ReasonEmptyCatalogForThemes       Reason = "empty_catalog_for_themes"
	ReasonUnknownDestination          Reason = "unknown_destination"
	ReasonDurationOutOfRange          Reason = "duration_out_of_range"
	ReasonNonPositiveActivitiesPerDay Reason = "non_positive_activities_per_day"
)

// InvalidInputError is the single failure kind of the planning engine. It is always a
// caller error and is never retried.
type InvalidInputError struct {
	Reason Reason
	Detail string
}

func (e *InvalidInputError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Reason, e.Detail)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(reason Reason, format string, args ...any) error {
	return &InvalidInputError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// ReasonOf extracts the reason of an InvalidInputError anywhere in err's chain.
func ReasonOf(err error) (Reason, bool) {
	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Reason, true
	}
	return "", false
}
