package planner

import (
	"time"

	"github.com/google/uuid"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/smarttravellers/tripplanner/pkg/catalog"
)

type Options struct {
	ActivitiesPerDay int
	Mode             SelectionMode
	// MaxDuration is the longest trip, in days, the planner accepts.
	MaxDuration int
}

func DefaultOptions() Options {
	return Options{
		ActivitiesPerDay: 2,
		Mode:             WrapAround,
		MaxDuration:      30,
	}
}

// Planner turns a TripInput into a TripPlan. It keeps no state between calls and may be
// shared by concurrent requests.
type Planner struct {
	catalog *catalog.Catalog
	options Options
	clock   utils.Clock
	newId   func() string
}

// NewPlanner creates a planner over a fully loaded catalog. A nil newId falls back to
// random UUIDs.
func NewPlanner(c *catalog.Catalog, options Options, clock utils.Clock, newId func() string) *Planner {
	if newId == nil {
		newId = uuid.NewString
	}
	return &Planner{catalog: c, options: options, clock: clock, newId: newId}
}

func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

func (p *Planner) Options() Options {
	return p.options
}

func (p *Planner) Plan(input TripInput) (TripPlan, error) {
	if len(input.Themes) == 0 {
		return TripPlan{}, invalid(ReasonEmptyThemes, "select at least one theme")
	}
	if input.Duration <= 0 {
		return TripPlan{}, invalid(ReasonNonPositiveDuration, "duration must be positive, got %d", input.Duration)
	}
	if p.options.MaxDuration > 0 && input.Duration > p.options.MaxDuration {
		return TripPlan{}, invalid(ReasonDurationOutOfRange, "duration must be at most %d days, got %d", p.options.MaxDuration, input.Duration)
	}
	if input.Budget <= 0 {
		return TripPlan{}, invalid(ReasonNonPositiveBudget, "budget must be positive, got %d", input.Budget)
	}
	destination, ok := p.catalog.Destination(input.DestinationId)
	if !ok {
		return TripPlan{}, invalid(ReasonUnknownDestination, "unknown destination %q", input.DestinationId)
	}

	themes := uniqueThemes(input.Themes)
	activities, err := SelectActivities(p.catalog, themes, p.options.ActivitiesPerDay, input.Duration, p.options.Mode)
	if err != nil {
		return TripPlan{}, err
	}

	now := p.clock.Now()
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	days, err := PartitionIntoDays(activities, input.Duration, truncateToDate(startDate))
	if err != nil {
		return TripPlan{}, err
	}

	costs, err := Allocate(input.Budget, days)
	if err != nil {
		return TripPlan{}, err
	}

	return TripPlan{
		Id:              p.newId(),
		DestinationId:   destination.Id,
		DestinationName: destination.Name,
		Origin:          input.Origin,
		StartDate:       days[0].Date,
		Duration:        input.Duration,
		Budget:          input.Budget,
		Themes:          themes,
		Days:            days,
		Costs:           costs,
		Advisories:      advise(days, costs, activities),
		CreatedAt:       now,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
