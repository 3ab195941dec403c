package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/event_bus"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/smarttravellers/tripplanner/pkg/plan_overlay"
	"github.com/smarttravellers/tripplanner/pkg/planner"
	"github.com/smarttravellers/tripplanner/pkg/session"
)

const maxCodeAttempts = 3

// PlanReader gives access to the plans of the session in the context.
type PlanReader interface {
	GetPlan(ctx context.Context, planId string) (planner.TripPlan, error)
}

type Service interface {
	Create(ctx context.Context, request Request) (Booking, error)
	Get(ctx context.Context, bookingId string) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
}

type ServiceImpl struct {
	plans    PlanReader
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock
	codes    CodeGenerator
}

func NewService(plans PlanReader, repo Repository, eventBus *event_bus.EventBus, clock utils.Clock, codes CodeGenerator) *ServiceImpl {
	return &ServiceImpl{plans: plans, repo: repo, eventBus: eventBus, clock: clock, codes: codes}
}

func (s *ServiceImpl) Create(ctx context.Context, request Request) (Booking, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return Booking{}, fmt.Errorf("failed to get current session: %w", err)
	}
	if err := validate(request); err != nil {
		return Booking{}, err
	}

	plan, err := s.plans.GetPlan(ctx, request.PlanId)
	if err != nil {
		return Booking{}, err
	}
	costs := plan.Costs
	var applied []plan_overlay.Adjustment
	if len(request.Adjustments) > 0 {
		view, err := plan_overlay.Apply(plan, request.Adjustments)
		if err != nil {
			return Booking{}, err
		}
		costs = view.Costs
		applied = view.Applied
	}

	booking := Booking{
		PlanId:          plan.Id,
		FullName:        strings.TrimSpace(request.FullName),
		Email:           strings.TrimSpace(request.Email),
		Phone:           strings.TrimSpace(request.Phone),
		DestinationId:   plan.DestinationId,
		DestinationName: plan.DestinationName,
		StartDate:       plan.StartDate,
		Duration:        plan.Duration,
		Amount:          costs.Total(),
		Costs:           costs,
		Adjustments:     applied,
		Status:          StatusConfirmed,
		CreatedAt:       s.clock.Now(),
	}

	for attempt := 1; ; attempt++ {
		codes := s.codes()
		booking.Id = codes.Id
		booking.Reference = codes.Reference
		booking.ConfirmationCode = codes.ConfirmationCode

		err = s.repo.Store(ctx, sessionId, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrDuplicateReference) || attempt == maxCodeAttempts {
			return Booking{}, fmt.Errorf("failed to store booking: %w", err)
		}
		log.Warnf("booking reference %s already taken, retrying", booking.Reference)
	}

	err = s.eventBus.Emit(ctx, event_bus.BookingCreatedType, event_bus.BookingCreated{
		BookingId:        booking.Id,
		Reference:        booking.Reference,
		PlanId:           booking.PlanId,
		DestinationId:    booking.DestinationId,
		DestinationName:  booking.DestinationName,
		StartDate:        booking.StartDate,
		Duration:         booking.Duration,
		Amount:           booking.Amount,
		ConfirmationCode: booking.ConfirmationCode,
		CreatedAt:        booking.CreatedAt,
	})
	if err != nil {
		log.Errorf("failed to publish booking created event: %v", err)
	}

	log.WithFields(log.Fields{
		"bookingId": booking.Id,
		"reference": booking.Reference,
		"planId":    booking.PlanId,
		"amount":    booking.Amount,
	}).Info("Created booking")
	return booking, nil
}

func (s *ServiceImpl) Get(ctx context.Context, bookingId string) (Booking, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return Booking{}, fmt.Errorf("failed to get current session: %w", err)
	}
	return s.repo.Get(ctx, sessionId, bookingId)
}

func (s *ServiceImpl) List(ctx context.Context) ([]Booking, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}
	bookings, err := s.repo.List(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}
