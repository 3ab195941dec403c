package plan_overlay

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/smarttravellers/tripplanner/pkg/catalog"
	"github.com/smarttravellers/tripplanner/pkg/planner"
)

var ErrInvalidAdjustment = errors.New("invalid adjustment")

type Kind string

const (
	Skip    Kind = "skip"
	Replace Kind = "replace"
)

// Adjustment changes one activity slot of a plan. Day is the 1-based day number and
// Position the 0-based index of the activity within that day.
type Adjustment struct {
	Day           int
	Position      int
	Kind          Kind
	AlternativeId string
}

// View is a plan as the traveller sees it after skipping or replacing activities. Costs are
// recomputed from the adjusted days against the plan's budget.
type View struct {
	PlanId  string
	Days    []planner.ItineraryDay
	Costs   planner.CostBreakdown
	Applied []Adjustment
}

type slot struct {
	day      int
	position int
}

// Apply builds the view of plan under adjustments. The plan itself is never modified.
// When several adjustments target the same slot the last one wins. Applied lists the
// effective adjustments ordered by day and position.
func Apply(plan planner.TripPlan, adjustments []Adjustment) (View, error) {
	effective := make(map[slot]Adjustment, len(adjustments))
	for i, adj := range adjustments {
		if err := validate(plan, adj); err != nil {
			return View{}, fmt.Errorf("adjustment %d: %w", i, err)
		}
		effective[slot{adj.Day, adj.Position}] = adj
	}

	days := make([]planner.ItineraryDay, 0, len(plan.Days))
	for _, d := range plan.Days {
		activities := make([]catalog.Activity, 0, len(d.Activities))
		for position, a := range d.Activities {
			adj, ok := effective[slot{d.Day, position}]
			switch {
			case !ok:
				activities = append(activities, a)
			case adj.Kind == Replace:
				alternative, _ := a.FindAlternative(adj.AlternativeId)
				activities = append(activities, alternative.AsActivity())
			}
		}
		days = append(days, planner.ItineraryDay{Day: d.Day, Date: d.Date, Activities: activities})
	}

	costs, err := planner.Allocate(plan.Budget, days)
	if err != nil {
		return View{}, err
	}

	applied := make([]Adjustment, 0, len(effective))
	for _, adj := range effective {
		applied = append(applied, adj)
	}
	slices.SortFunc(applied, func(a, b Adjustment) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Position, b.Position))
	})

	return View{PlanId: plan.Id, Days: days, Costs: costs, Applied: applied}, nil
}

func validate(plan planner.TripPlan, adj Adjustment) error {
	if adj.Day < 1 || adj.Day > len(plan.Days) {
		return fmt.Errorf("%w: day %d is outside the plan", ErrInvalidAdjustment, adj.Day)
	}
	activities := plan.Days[adj.Day-1].Activities
	if adj.Position < 0 || adj.Position >= len(activities) {
		return fmt.Errorf("%w: day %d has no activity at position %d", ErrInvalidAdjustment, adj.Day, adj.Position)
	}

	switch adj.Kind {
	case Skip:
		return nil
	case Replace:
		activity := activities[adj.Position]
		if _, ok := activity.FindAlternative(adj.AlternativeId); !ok {
			return fmt.Errorf("%w: %s has no alternative %q", ErrInvalidAdjustment, activity.Id, adj.AlternativeId)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAdjustment, adj.Kind)
	}
}
