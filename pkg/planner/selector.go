package planner

import (
	"fmt"

	"github.com/smarttravellers/tripplanner/pkg/catalog"
)

type SelectionMode string

const (
	// WrapAround cycles through the candidate pool when it is shorter than the number of
	// slots, so short theme lists still fill long trips.
	WrapAround SelectionMode = "wrap_around"
	// NoRepeat uses each candidate at most once and leaves the remaining slots empty.
	NoRepeat SelectionMode = "no_repeat"
)

func ParseSelectionMode(s string) (SelectionMode, error) {
	switch SelectionMode(s) {
	case "", WrapAround:
		return WrapAround, nil
	case NoRepeat:
		return NoRepeat, nil
	}
	return "", fmt.Errorf("unknown selection mode %q", s)
}

// SelectActivities draws activitiesPerDay*totalDays activities from the pools of the given
// themes. The pool keeps theme input order, then catalog order within each theme, and is
// sampled at index i mod len(pool). The result depends only on the arguments.
func SelectActivities(
	c *catalog.Catalog,
	themes []catalog.Theme,
	activitiesPerDay int,
	totalDays int,
	mode SelectionMode,
) ([]catalog.Activity, error) {
	if len(themes) == 0 {
		return nil, invalid(ReasonEmptyThemes, "select at least one theme")
	}
	if activitiesPerDay <= 0 {
		return nil, invalid(ReasonNonPositiveActivitiesPerDay, "activities per day must be positive, got %d", activitiesPerDay)
	}
	if totalDays <= 0 {
		return nil, invalid(ReasonNonPositiveDuration, "duration must be positive, got %d", totalDays)
	}

	var pool []catalog.Activity
	for _, theme := range uniqueThemes(themes) {
		activities, ok := c.ActivitiesFor(theme)
		if !ok {
			return nil, invalid(ReasonUnknownTheme, "unknown theme %q", theme)
		}
		pool = append(pool, activities...)
	}
	if len(pool) == 0 {
		return nil, invalid(ReasonEmptyCatalogForThemes, "no activities available for themes %v", themes)
	}

	required := activitiesPerDay * totalDays
	if mode == NoRepeat {
		required = min(required, len(pool))
	}

	selected := make([]catalog.Activity, required)
	for i := range selected {
		selected[i] = pool[i%len(pool)]
	}
	return selected, nil
}

// uniqueThemes drops repeated themes, keeping the first occurrence.
func uniqueThemes(themes []catalog.Theme) []catalog.Theme {
	seen := make(map[catalog.Theme]bool, len(themes))
	unique := make([]catalog.Theme, 0, len(themes))
	for _, t := range themes {
		if seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	return unique
}
