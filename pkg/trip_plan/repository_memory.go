package trip_plan

import (
	"context"
	"slices"
	"sync"

	"github.com/smarttravellers/tripplanner/pkg/planner"
)

// MemoryRepository keeps plans in process memory. It is used when no database is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	plans map[string][]planner.TripPlan
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{plans: make(map[string][]planner.TripPlan)}
}

func (m *MemoryRepository) Store(ctx context.Context, sessionId string, plan planner.TripPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[sessionId] = append(m.plans[sessionId], plan)
	return nil
}

func (m *MemoryRepository) Get(ctx context.Context, sessionId string, planId string) (planner.TripPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, plan := range m.plans[sessionId] {
		if plan.Id == planId {
			return plan, nil
		}
	}
	return planner.TripPlan{}, ErrPlanNotFound
}

func (m *MemoryRepository) List(ctx context.Context, sessionId string) ([]planner.TripPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.plans[sessionId]), nil
}

func (m *MemoryRepository) Delete(ctx context.Context, sessionId string, planId string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plans := m.plans[sessionId]
	i := slices.IndexFunc(plans, func(p planner.TripPlan) bool { return p.Id == planId })
	if i < 0 {
		return false, nil
	}
	m.plans[sessionId] = slices.Delete(plans, i, i+1)
	return true, nil
}
