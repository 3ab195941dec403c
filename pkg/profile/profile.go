package profile

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/event_bus"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/smarttravellers/tripplanner/pkg/booking"
	"github.com/smarttravellers/tripplanner/pkg/planner"
	"github.com/smarttravellers/tripplanner/pkg/session"
)

const maxFavorites = 3

type BookedTrip struct {
	BookingId       string
	Reference       string
	PlanId          string
	DestinationId   string
	DestinationName string
	StartDate       time.Time
	Duration        int
	Amount          int64
}

type FavoriteDestination struct {
	DestinationId   string
	DestinationName string
	// Trips is the number of stored plans for the destination.
	Trips int
}

type Profile struct {
	PlannedTrips         int
	BookedTrips          int
	TotalSpent           int64
	UpcomingTrips        []BookedTrip
	FavoriteDestinations []FavoriteDestination
}

type Service interface {
	Current(ctx context.Context) (Profile, error)
}

type PlanLister interface {
	List(ctx context.Context, sessionId string) ([]planner.TripPlan, error)
}

type BookingLister interface {
	List(ctx context.Context, sessionId string) ([]booking.Booking, error)
}

type summary struct {
	planned int
	booked  []BookedTrip
	// destinations keeps the order plans were created in, which breaks ties between favorites.
	destinations []FavoriteDestination
}

// ServiceImpl derives traveller profiles from the stored plans and bookings. Summaries are
// cached per session and dropped whenever a plan or booking of that session changes.
type ServiceImpl struct {
	plans    PlanLister
	bookings BookingLister
	clock    utils.Clock

	mu    sync.Mutex
	cache map[string]summary
	// generations counts invalidations, so a summary read before a change is not cached after it.
	generations map[string]uint64
}

func NewService(plans PlanLister, bookings BookingLister, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	s := &ServiceImpl{plans: plans, bookings: bookings, clock: clock,
		cache: make(map[string]summary), generations: make(map[string]uint64)}
	event_bus.SubscribeTyped(eventBus, event_bus.TripPlanGeneratedType, invalidateOn[event_bus.TripPlanGenerated](s))
	event_bus.SubscribeTyped(eventBus, event_bus.TripPlanDeletedType, invalidateOn[event_bus.TripPlanDeleted](s))
	event_bus.SubscribeTyped(eventBus, event_bus.BookingCreatedType, invalidateOn[event_bus.BookingCreated](s))
	return s
}

func invalidateOn[T any](s *ServiceImpl) func(event_bus.EventT[T]) error {
	return func(e event_bus.EventT[T]) error {
		sessionId, err := session.CurrentId(e.Context())
		if err != nil {
			return fmt.Errorf("%s: %w", e.Type, err)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.cache, sessionId)
		s.generations[sessionId]++
		log.Debugf("profile of session %s invalidated by %s", sessionId, e.Type)
		return nil
	}
}

func (s *ServiceImpl) summary(ctx context.Context, sessionId string) (summary, error) {
	s.mu.Lock()
	cached, ok := s.cache[sessionId]
	generation := s.generations[sessionId]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	plans, err := s.plans.List(ctx, sessionId)
	if err != nil {
		return summary{}, fmt.Errorf("failed to list plans: %w", err)
	}
	bookings, err := s.bookings.List(ctx, sessionId)
	if err != nil {
		return summary{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	sum := summary{planned: len(plans)}
	for _, plan := range plans {
		i := slices.IndexFunc(sum.destinations, func(d FavoriteDestination) bool {
			return d.DestinationId == plan.DestinationId
		})
		if i < 0 {
			sum.destinations = append(sum.destinations, FavoriteDestination{
				DestinationId:   plan.DestinationId,
				DestinationName: plan.DestinationName,
			})
			i = len(sum.destinations) - 1
		}
		sum.destinations[i].Trips++
	}
	for _, b := range bookings {
		sum.booked = append(sum.booked, BookedTrip{
			BookingId:       b.Id,
			Reference:       b.Reference,
			PlanId:          b.PlanId,
			DestinationId:   b.DestinationId,
			DestinationName: b.DestinationName,
			StartDate:       b.StartDate,
			Duration:        b.Duration,
			Amount:          b.Amount,
		})
	}

	s.mu.Lock()
	if s.generations[sessionId] == generation {
		s.cache[sessionId] = sum
	}
	s.mu.Unlock()
	return sum, nil
}

// Current returns the profile of the session in ctx. A session without activity gets an
// empty profile.
func (s *ServiceImpl) Current(ctx context.Context) (Profile, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get current session: %w", err)
	}
	sum, err := s.summary(ctx, sessionId)
	if err != nil {
		return Profile{}, err
	}

	now := s.clock.Now()
	profile := Profile{
		PlannedTrips:         sum.planned,
		BookedTrips:          len(sum.booked),
		UpcomingTrips:        []BookedTrip{},
		FavoriteDestinations: []FavoriteDestination{},
	}
	for _, trip := range sum.booked {
		profile.TotalSpent += trip.Amount
		if trip.StartDate.After(now) {
			profile.UpcomingTrips = append(profile.UpcomingTrips, trip)
		}
	}
	slices.SortStableFunc(profile.UpcomingTrips, func(a, b BookedTrip) int {
		return a.StartDate.Compare(b.StartDate)
	})

	favorites := slices.Clone(sum.destinations)
	slices.SortStableFunc(favorites, func(a, b FavoriteDestination) int {
		return cmp.Compare(b.Trips, a.Trips)
	})
	profile.FavoriteDestinations = append(profile.FavoriteDestinations, favorites[:min(len(favorites), maxFavorites)]...)
	return profile, nil
}
