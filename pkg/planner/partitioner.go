package planner

import (
	"slices"
	"time"

	"github.com/smarttravellers/tripplanner/pkg/catalog"
)

// PartitionIntoDays splits activities into totalDays consecutive chunks of
// len(activities)/totalDays items. Leftover activities go to the last day, none are dropped.
// Day n falls on startDate plus n-1 calendar days.
func PartitionIntoDays(activities []catalog.Activity, totalDays int, startDate time.Time) ([]ItineraryDay, error) {
	if totalDays <= 0 {
		return nil, invalid(ReasonNonPositiveDuration, "duration must be positive, got %d", totalDays)
	}

	perDay := len(activities) / totalDays
	days := make([]ItineraryDay, totalDays)
	for i := range days {
		start := i * perDay
		end := start + perDay
		if i == totalDays-1 {
			end = len(activities)
		}
		days[i] = ItineraryDay{
			Day:        i + 1,
			Date:       startDate.AddDate(0, 0, i),
			Activities: slices.Clone(activities[start:end]),
		}
		if days[i].Activities == nil {
			days[i].Activities = []catalog.Activity{}
		}
	}
	return days, nil
}
