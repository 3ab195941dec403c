package planner

import (
	"time"

	"github.com/smarttravellers/tripplanner/pkg/catalog"
)

// TripInput is what a traveller submits to get a plan.
type TripInput struct {
	// Budget is expressed in the smallest currency unit.
	Budget        int64
	Duration      int
	DestinationId string
	Themes        []catalog.Theme
	Origin        string
	StartDate     time.Time
}

type ItineraryDay struct {
	Day        int
	Date       time.Time
	Activities []catalog.Activity
}

// TotalCost is recomputed from the activity list on every call.
func (d ItineraryDay) TotalCost() int64 {
	var total int64
	for _, a := range d.Activities {
		total += a.Cost
	}
	return total
}

type CostBreakdown struct {
	Accommodation int64
	Transport     int64
	Activities    int64
	Food          int64
	// ActivitiesRequested is the itinerary's activity cost before it was capped by the
	// remaining budget.
	ActivitiesRequested int64
}

func (c CostBreakdown) Total() int64 {
	return c.Accommodation + c.Transport + c.Activities + c.Food
}

// Overage is the part of the requested activity cost that did not fit in the budget.
func (c CostBreakdown) Overage() int64 {
	if c.ActivitiesRequested > c.Activities {
		return c.ActivitiesRequested - c.Activities
	}
	return 0
}

// TripPlan is immutable once built. Skipping or replacing activities is done through a
// plan_overlay.View, never by changing the plan.
type TripPlan struct {
	Id              string
	DestinationId   string
	DestinationName string
	Origin          string
	StartDate       time.Time
	Duration        int
	Budget          int64
	Themes          []catalog.Theme
	Days            []ItineraryDay
	Costs           CostBreakdown
	Advisories      []string
	CreatedAt       time.Time
}

// TotalActivityCost sums every day's total cost.
func TotalActivityCost(days []ItineraryDay) int64 {
	var total int64
	for _, d := range days {
		total += d.TotalCost()
	}
	return total
}
