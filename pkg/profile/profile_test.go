package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smarttravellers/tripplanner/internal/event_bus"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/smarttravellers/tripplanner/pkg/booking"
	"github.com/smarttravellers/tripplanner/pkg/planner"
	"github.com/smarttravellers/tripplanner/pkg/session"
	"github.com/smarttravellers/tripplanner/pkg/trip_plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

var ctx = session.WithId(context.Background(), "session-1")

func date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	service  *ServiceImpl
	plans    *trip_plan.MemoryRepository
	bookings *booking.MemoryRepository
	bus      *event_bus.EventBus
	clock    *utils.MockClock
}

func setupService(t *testing.T) *fixture {
	t.Helper()
	clock := &utils.MockClock{FixedNow: now}
	f := &fixture{
		plans:    trip_plan.NewMemoryRepository(),
		bookings: booking.NewMemoryRepository(),
		bus:      event_bus.NewEventBusWithClock(clock),
		clock:    clock,
	}
	f.service = NewService(f.plans, f.bookings, f.bus, clock)
	return f
}

func sessionOf(t *testing.T, ctx context.Context) string {
	t.Helper()
	sessionId, err := session.CurrentId(ctx)
	require.NoError(t, err)
	return sessionId
}

func (f *fixture) planGenerated(t *testing.T, ctx context.Context, planId, destinationId, name string) {
	t.Helper()
	require.NoError(t, f.plans.Store(ctx, sessionOf(t, ctx), planner.TripPlan{
		Id:              planId,
		DestinationId:   destinationId,
		DestinationName: name,
	}))
	require.NoError(t, f.bus.Emit(ctx, event_bus.TripPlanGeneratedType, event_bus.TripPlanGenerated{
		PlanId:          planId,
		DestinationId:   destinationId,
		DestinationName: name,
	}))
}

func (f *fixture) planDeleted(t *testing.T, ctx context.Context, planId string) {
	t.Helper()
	deleted, err := f.plans.Delete(ctx, sessionOf(t, ctx), planId)
	require.NoError(t, err)
	require.True(t, deleted)
	require.NoError(t, f.bus.Emit(ctx, event_bus.TripPlanDeletedType, event_bus.TripPlanDeleted{PlanId: planId}))
}

func (f *fixture) bookingCreated(t *testing.T, ctx context.Context, bookingId string, startDate time.Time, amount int64) {
	t.Helper()
	require.NoError(t, f.bookings.Store(ctx, sessionOf(t, ctx), booking.Booking{
		Id:              bookingId,
		Reference:       "AI-" + bookingId,
		PlanId:          "plan-1",
		DestinationId:   "goa",
		DestinationName: "Goa",
		StartDate:       startDate,
		Duration:        3,
		Amount:          amount,
	}))
	require.NoError(t, f.bus.Emit(ctx, event_bus.BookingCreatedType, event_bus.BookingCreated{BookingId: bookingId}))
}

type failingPlans struct{}

func (failingPlans) List(ctx context.Context, sessionId string) ([]planner.TripPlan, error) {
	return nil, errors.New("connection refused")
}

func TestServiceImpl_Current(t *testing.T) {
	t.Run("should count planned and booked trips", func(t *testing.T) {
		// given
		f := setupService(t)
		f.planGenerated(t, ctx, "plan-1", "goa", "Goa")
		f.planGenerated(t, ctx, "plan-2", "goa", "Goa")
		f.bookingCreated(t, ctx, "b1", date(time.April, 1), 50000)
		f.bookingCreated(t, ctx, "b2", date(time.February, 1), 20000)

		// when
		profile, err := f.service.Current(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, profile.PlannedTrips)
		assert.Equal(t, 2, profile.BookedTrips)
		assert.Equal(t, int64(70000), profile.TotalSpent)
		require.Len(t, profile.UpcomingTrips, 1)
		assert.Equal(t, "b1", profile.UpcomingTrips[0].BookingId)
	})

	t.Run("should order upcoming trips by start date", func(t *testing.T) {
		f := setupService(t)
		f.bookingCreated(t, ctx, "late", date(time.June, 1), 1000)
		f.bookingCreated(t, ctx, "early", date(time.April, 1), 1000)
		f.bookingCreated(t, ctx, "today", date(time.March, 10), 1000)

		profile, err := f.service.Current(ctx)

		require.NoError(t, err)
		require.Len(t, profile.UpcomingTrips, 2)
		assert.Equal(t, "early", profile.UpcomingTrips[0].BookingId)
		assert.Equal(t, "late", profile.UpcomingTrips[1].BookingId)
	})

	t.Run("should move trips out of upcoming as time passes", func(t *testing.T) {
		f := setupService(t)
		f.bookingCreated(t, ctx, "b1", date(time.April, 1), 1000)

		f.clock.SetNow(date(time.April, 2))
		profile, err := f.service.Current(ctx)

		require.NoError(t, err)
		assert.Empty(t, profile.UpcomingTrips)
		assert.Equal(t, 1, profile.BookedTrips)
	})

	t.Run("should rank the top three favorite destinations", func(t *testing.T) {
		// given
		f := setupService(t)
		f.planGenerated(t, ctx, "p1", "goa", "Goa")
		f.planGenerated(t, ctx, "p2", "kerala", "Kerala")
		f.planGenerated(t, ctx, "p3", "rajasthan", "Rajasthan")
		f.planGenerated(t, ctx, "p4", "himachal", "Himachal Pradesh")
		f.planGenerated(t, ctx, "p5", "himachal", "Himachal Pradesh")
		f.planGenerated(t, ctx, "p6", "rajasthan", "Rajasthan")

		// when
		profile, err := f.service.Current(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, []FavoriteDestination{
			{DestinationId: "rajasthan", DestinationName: "Rajasthan", Trips: 2},
			{DestinationId: "himachal", DestinationName: "Himachal Pradesh", Trips: 2},
			{DestinationId: "goa", DestinationName: "Goa", Trips: 1},
		}, profile.FavoriteDestinations)
	})

	t.Run("should keep sessions apart", func(t *testing.T) {
		f := setupService(t)
		other := session.WithId(context.Background(), "session-2")
		f.planGenerated(t, other, "p1", "goa", "Goa")

		profile, err := f.service.Current(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, profile.PlannedTrips)
		assert.NotNil(t, profile.UpcomingTrips)
		assert.NotNil(t, profile.FavoriteDestinations)
	})

	t.Run("should drop deleted plans", func(t *testing.T) {
		// given
		f := setupService(t)
		f.planGenerated(t, ctx, "p1", "goa", "Goa")
		f.planGenerated(t, ctx, "p2", "kerala", "Kerala")
		f.planGenerated(t, ctx, "p3", "kerala", "Kerala")
		before, err := f.service.Current(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, before.PlannedTrips)

		// when
		f.planDeleted(t, ctx, "p2")
		f.planDeleted(t, ctx, "p3")
		profile, err := f.service.Current(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, profile.PlannedTrips)
		assert.Equal(t, []FavoriteDestination{{DestinationId: "goa", DestinationName: "Goa", Trips: 1}}, profile.FavoriteDestinations)
	})

	t.Run("should rebuild the profile from stored trips", func(t *testing.T) {
		// given
		f := setupService(t)
		f.planGenerated(t, ctx, "p1", "goa", "Goa")
		f.bookingCreated(t, ctx, "b1", date(time.April, 1), 50000)

		// when
		restarted := NewService(f.plans, f.bookings, event_bus.NewEventBusWithClock(f.clock), f.clock)
		profile, err := restarted.Current(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, profile.PlannedTrips)
		assert.Equal(t, 1, profile.BookedTrips)
		assert.Equal(t, int64(50000), profile.TotalSpent)
		require.Len(t, profile.UpcomingTrips, 1)
	})

	t.Run("should pick up bookings made after the profile was read", func(t *testing.T) {
		f := setupService(t)
		f.bookingCreated(t, ctx, "b1", date(time.April, 1), 1000)
		_, err := f.service.Current(ctx)
		require.NoError(t, err)

		f.bookingCreated(t, ctx, "b2", date(time.May, 1), 2000)
		profile, err := f.service.Current(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, profile.BookedTrips)
		assert.Equal(t, int64(3000), profile.TotalSpent)
	})

	t.Run("should return repository errors", func(t *testing.T) {
		f := setupService(t)
		service := NewService(failingPlans{}, f.bookings, f.bus, f.clock)

		_, err := service.Current(ctx)

		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("should fail events without a session", func(t *testing.T) {
		f := setupService(t)

		err := f.bus.Emit(context.Background(), event_bus.TripPlanGeneratedType, event_bus.TripPlanGenerated{PlanId: "p1"})

		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("should return error when context has no session", func(t *testing.T) {
		f := setupService(t)

		_, err := f.service.Current(context.Background())

		assert.ErrorIs(t, err, session.ErrNoSession)
	})
}

func TestHandler_CurrentProfile(t *testing.T) {
	t.Run("should return the profile", func(t *testing.T) {
		// given
		f := setupService(t)
		f.planGenerated(t, ctx, "plan-1", "goa", "Goa")
		f.bookingCreated(t, ctx, "b1", date(time.April, 1), 50000)
		handler := NewHandler(f.service)
		req := httptest.NewRequest(http.MethodGet, "/api/profile/current", nil)
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()

		// when
		handler.CurrentProfile(w, req)

		// then
		require.Equal(t, http.StatusOK, w.Code)
		var body ProfileDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 1, body.PlannedTrips)
		assert.Equal(t, int64(50000), body.TotalSpent)
		require.Len(t, body.UpcomingTrips, 1)
		assert.Equal(t, "2024-04-01", body.UpcomingTrips[0].StartDate)
		assert.Equal(t, []FavoriteDestinationDTO{{DestinationId: "goa", DestinationName: "Goa", Trips: 1}}, body.FavoriteDestinations)
	})

	t.Run("should return empty lists for a new session", func(t *testing.T) {
		f := setupService(t)
		handler := NewHandler(f.service)
		req := httptest.NewRequest(http.MethodGet, "/api/profile/current", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		handler.CurrentProfile(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"plannedTrips":0,"bookedTrips":0,"totalSpent":0,"upcomingTrips":[],"favoriteDestinations":[]}`, w.Body.String())
	})

	t.Run("should return 403 without a session", func(t *testing.T) {
		f := setupService(t)
		handler := NewHandler(f.service)
		w := httptest.NewRecorder()

		handler.CurrentProfile(w, httptest.NewRequest(http.MethodGet, "/api/profile/current", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
