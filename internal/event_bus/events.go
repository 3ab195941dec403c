package event_bus

import "time"

const (
	TripPlanGeneratedType EventType = "trip_plan.generated"
	TripPlanDeletedType   EventType = "trip_plan.deleted"
	BookingCreatedType    EventType = "booking.created"
)

// TripPlanGenerated is published after a plan has been stored. The session it belongs to
// travels in the event context.
type TripPlanGenerated struct {
	PlanId          string
	DestinationId   string
	DestinationName string
	StartDate       time.Time
	Duration        int
	Budget          int64
	// Total is the sum of the plan's cost breakdown.
	Total     int64
	CreatedAt time.Time
}

type TripPlanDeleted struct {
	PlanId string
}

type BookingCreated struct {
	BookingId        string
	Reference        string
	PlanId           string
	DestinationId    string
	DestinationName  string
	StartDate        time.Time
	Duration         int
	Amount           int64
	ConfirmationCode string
	CreatedAt        time.Time
}
