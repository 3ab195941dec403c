package booking

import (
	"errors"
	"time"

	"github.com/smarttravellers/tripplanner/pkg/plan_overlay"
	"github.com/smarttravellers/tripplanner/pkg/planner"
)

var ErrInvalidBooking = errors.New("invalid booking")
var ErrBookingNotFound = errors.New("booking not found")

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

// Booking is a confirmed reservation of a stored plan. Amount is charged in the
// smallest currency unit.
type Booking struct {
	Id               string
	Reference        string
	PlanId           string
	FullName         string
	Email            string
	Phone            string
	DestinationId    string
	DestinationName  string
	StartDate        time.Time
	Duration         int
	Amount           int64
	Costs            planner.CostBreakdown
	Adjustments      []plan_overlay.Adjustment
	ConfirmationCode string
	Status           Status
	CreatedAt        time.Time
}

type Request struct {
	PlanId   string
	FullName string
	Email    string
	Phone    string
	// Adjustments are applied to the plan before the amount is computed.
	Adjustments []plan_overlay.Adjustment
}
