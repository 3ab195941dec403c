package planner

import (
	"fmt"

	"github.com/smarttravellers/tripplanner/pkg/catalog"
)

// advise produces the human-readable notes shown next to a plan. The output depends only on
// the arguments, in a fixed order: budget, repetition, empty days, contingencies.
func advise(days []ItineraryDay, costs CostBreakdown, selected []catalog.Activity) []string {
	advisories := []string{}

	if overage := costs.Overage(); overage > 0 {
		advisories = append(advisories, fmt.Sprintf(
			"Planned activities cost %d but only %d is left after accommodation, transport and food; %d is not covered by the budget",
			costs.ActivitiesRequested, costs.Activities, overage))
	}

	unique := map[string]bool{}
	for _, a := range selected {
		unique[a.Id] = true
	}
	if len(unique) < len(selected) {
		advisories = append(advisories, fmt.Sprintf(
			"The selected themes offer %d activities for %d slots, so some activities repeat across days",
			len(unique), len(selected)))
	}

	empty := 0
	for _, d := range days {
		if len(d.Activities) == 0 {
			empty++
		}
	}
	if empty > 0 {
		advisories = append(advisories, fmt.Sprintf("%d of %d days have no planned activities", empty, len(days)))
	}

	for _, d := range days {
		seen := map[string]bool{}
		for _, a := range d.Activities {
			if len(a.Alternatives) == 0 || seen[a.Id] {
				continue
			}
			seen[a.Id] = true
			reason := a.AlternativeReason
			if reason == "" {
				reason = "Change of plans"
			}
			advisories = append(advisories, fmt.Sprintf(
				"Day %d: %s expected for %s, %d alternatives available", d.Day, reason, a.Name, len(a.Alternatives)))
		}
	}

	return advisories
}
