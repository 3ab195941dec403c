package planner

const (
	accommodationPercent = 40
	transportPercent     = 20
	foodPercent          = 25
)

// Allocate splits the budget into fixed shares for accommodation, transport and food, and
// gives activities the smaller of their actual cost and what is left. The total therefore
// never exceeds the budget.
func Allocate(budget int64, days []ItineraryDay) (CostBreakdown, error) {
	if budget <= 0 {
		return CostBreakdown{}, invalid(ReasonNonPositiveBudget, "budget must be positive, got %d", budget)
	}

	accommodation := percentOf(budget, accommodationPercent)
	transport := percentOf(budget, transportPercent)
	food := percentOf(budget, foodPercent)
	remaining := budget - accommodation - transport - food

	requested := TotalActivityCost(days)

	return CostBreakdown{
		Accommodation:       accommodation,
		Transport:           transport,
		Activities:          min(requested, remaining),
		Food:                food,
		ActivitiesRequested: requested,
	}, nil
}

// percentOf returns floor(amount*percent/100) for a positive amount without overflowing.
func percentOf(amount int64, percent int64) int64 {
	return amount/100*percent + amount%100*percent/100
}
