package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/config"
	"github.com/smarttravellers/tripplanner/internal/database"
	"github.com/smarttravellers/tripplanner/internal/event_bus"
	"github.com/smarttravellers/tripplanner/internal/rest"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/smarttravellers/tripplanner/pkg/booking"
	"github.com/smarttravellers/tripplanner/pkg/catalog"
	"github.com/smarttravellers/tripplanner/pkg/planner"
	"github.com/smarttravellers/tripplanner/pkg/profile"
	"github.com/smarttravellers/tripplanner/pkg/trip_plan"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	Catalog        *catalog.Catalog
	CatalogHandler *catalog.Handler

	Planner         *planner.Planner
	TripPlanRepo    trip_plan.Repository
	TripPlanService *trip_plan.ServiceImpl
	TripPlanHandler *trip_plan.Handler

	BookingRepo    booking.Repository
	BookingService *booking.ServiceImpl
	BookingHandler *booking.Handler

	ProfileService *profile.ServiceImpl
	ProfileHandler *profile.Handler

	RateLimiter *rest.RateLimiter
}

// PlannerOptions converts the planner configuration into engine options.
func PlannerOptions(cfg config.Planner) (planner.Options, error) {
	mode, err := planner.ParseSelectionMode(cfg.SelectionMode)
	if err != nil {
		return planner.Options{}, err
	}
	return planner.Options{
		ActivitiesPerDay: cfg.ActivitiesPerDay,
		Mode:             mode,
		MaxDuration:      cfg.MaxDuration,
	}, nil
}

// BuildPlanner loads the catalog and creates the planning engine.
func BuildPlanner(cfg config.Application, clock utils.Clock) (*planner.Planner, error) {
	c, err := catalog.NewLoader(cfg.Catalog.Path).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	options, err := PlannerOptions(cfg.Planner)
	if err != nil {
		return nil, err
	}
	return planner.NewPlanner(c, options, clock, nil), nil
}

// BuildDependencies initializes and wires all application services and handlers. Plans and
// bookings are kept in memory when db is nil.
func BuildDependencies(db database.Querier, cfg config.Application, clock utils.Clock) (*Dependencies, error) {
	deps := &Dependencies{Clock: clock}

	deps.EventBus = event_bus.NewEventBusWithClock(clock)

	p, err := BuildPlanner(cfg, clock)
	if err != nil {
		return nil, err
	}
	deps.Planner = p
	deps.Catalog = p.Catalog()
	deps.CatalogHandler = catalog.NewHandler(deps.Catalog)

	if db != nil {
		log.Info("Storing plans and bookings in Postgres")
		deps.TripPlanRepo = trip_plan.NewRepository(db)
		deps.BookingRepo = booking.NewRepository(db)
	} else {
		log.Info("Storing plans and bookings in memory")
		deps.TripPlanRepo = trip_plan.NewMemoryRepository()
		deps.BookingRepo = booking.NewMemoryRepository()
	}

	deps.ProfileService = profile.NewService(deps.TripPlanRepo, deps.BookingRepo, deps.EventBus, clock)
	deps.ProfileHandler = profile.NewHandler(deps.ProfileService)

	deps.TripPlanService = trip_plan.NewService(deps.Planner, deps.TripPlanRepo, deps.EventBus)
	deps.TripPlanHandler = trip_plan.NewHandler(deps.TripPlanService)

	deps.BookingService = booking.NewService(deps.TripPlanService, deps.BookingRepo, deps.EventBus, clock, booking.RandomCodes)
	deps.BookingHandler = booking.NewHandler(deps.BookingService)

	if cfg.RateLimit.Enabled {
		deps.RateLimiter = rest.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, clock)
	}

	return deps, nil
}
