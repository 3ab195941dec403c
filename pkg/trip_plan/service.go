package trip_plan

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/event_bus"
	"github.com/smarttravellers/tripplanner/pkg/plan_overlay"
	"github.com/smarttravellers/tripplanner/pkg/planner"
	"github.com/smarttravellers/tripplanner/pkg/session"
)

type Service interface {
	Generate(ctx context.Context, input planner.TripInput) (planner.TripPlan, error)
	GetPlan(ctx context.Context, planId string) (planner.TripPlan, error)
	ListPlans(ctx context.Context) ([]planner.TripPlan, error)
	DeletePlan(ctx context.Context, planId string) (bool, error)
	// Preview applies adjustments to a stored plan without changing it.
	Preview(ctx context.Context, planId string, adjustments []plan_overlay.Adjustment) (plan_overlay.View, error)
}

type ServiceImpl struct {
	planner  *planner.Planner
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewService(p *planner.Planner, repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{planner: p, repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) Generate(ctx context.Context, input planner.TripInput) (planner.TripPlan, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return planner.TripPlan{}, fmt.Errorf("failed to get current session: %w", err)
	}

	plan, err := s.planner.Plan(input)
	if err != nil {
		log.Debugf("rejected trip input: %v", err)
		return planner.TripPlan{}, err
	}

	if err := s.repo.Store(ctx, sessionId, plan); err != nil {
		return planner.TripPlan{}, fmt.Errorf("failed to store plan: %w", err)
	}

	err = s.eventBus.Emit(ctx, event_bus.TripPlanGeneratedType, event_bus.TripPlanGenerated{
		PlanId:          plan.Id,
		DestinationId:   plan.DestinationId,
		DestinationName: plan.DestinationName,
		StartDate:       plan.StartDate,
		Duration:        plan.Duration,
		Budget:          plan.Budget,
		Total:           plan.Costs.Total(),
		CreatedAt:       plan.CreatedAt,
	})
	if err != nil {
		log.Errorf("failed to publish plan generated event: %v", err)
	}

	log.WithFields(log.Fields{
		"planId":      plan.Id,
		"destination": plan.DestinationId,
		"days":        plan.Duration,
	}).Info("Generated trip plan")
	return plan, nil
}

func (s *ServiceImpl) GetPlan(ctx context.Context, planId string) (planner.TripPlan, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return planner.TripPlan{}, fmt.Errorf("failed to get current session: %w", err)
	}
	return s.repo.Get(ctx, sessionId, planId)
}

func (s *ServiceImpl) ListPlans(ctx context.Context) ([]planner.TripPlan, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}
	plans, err := s.repo.List(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []planner.TripPlan{}
	}
	return plans, nil
}

func (s *ServiceImpl) DeletePlan(ctx context.Context, planId string) (bool, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current session: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, sessionId, planId)
	if err != nil || !deleted {
		return deleted, err
	}

	err = s.eventBus.Emit(ctx, event_bus.TripPlanDeletedType, event_bus.TripPlanDeleted{PlanId: planId})
	if err != nil {
		log.Errorf("failed to publish plan deleted event: %v", err)
	}
	log.WithField("planId", planId).Info("Deleted trip plan")
	return true, nil
}

func (s *ServiceImpl) Preview(ctx context.Context, planId string, adjustments []plan_overlay.Adjustment) (plan_overlay.View, error) {
	plan, err := s.GetPlan(ctx, planId)
	if err != nil {
		return plan_overlay.View{}, err
	}
	return plan_overlay.Apply(plan, adjustments)
}
