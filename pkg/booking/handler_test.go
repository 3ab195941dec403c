package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/smarttravellers/tripplanner/internal/rest"
	"github.com/smarttravellers/tripplanner/pkg/session"
	"github.com/smarttravellers/tripplanner/pkg/trip_plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, sessionId string) (http.Handler, fixture) {
	t.Helper()
	f := setupService(t)
	handler := NewHandler(f.service)
	r := mux.NewRouter()
	r.HandleFunc("/api/booking", handler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/booking", handler.ListBookings).Methods("GET")
	r.HandleFunc("/api/booking/{bookingId}", handler.GetBooking).Methods("GET")
	withSession := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if sessionId != "" {
			req = req.WithContext(session.WithId(req.Context(), sessionId))
		}
		r.ServeHTTP(w, req)
	})
	return withSession, f
}

func do(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		payload.WriteString(b)
	default:
		_ = json.NewEncoder(&payload).Encode(b)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookingRequest(planId string) BookingRequestDTO {
	return BookingRequestDTO{
		PlanId:   planId,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("should return the confirmed booking", func(t *testing.T) {
		// given
		router, f := setupRouter(t, "session-1")
		plan := generateGoaPlan(t, f)

		// when
		w := do(router, http.MethodPost, "/api/booking", bookingRequest(plan.Id))

		// then
		require.Equal(t, http.StatusCreated, w.Code)
		var booking BookingDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
		assert.Equal(t, "booking-1", booking.Id)
		assert.Equal(t, "AI-00000001", booking.Reference)
		assert.Equal(t, "CONF-000000001", booking.ConfirmationCode)
		assert.Equal(t, "confirmed", booking.Status)
		assert.Equal(t, "2024-04-01", booking.StartDate)
		assert.Equal(t, int64(50000), booking.Amount)
		assert.Equal(t, int64(50000), booking.Costs.Total)
		assert.NotNil(t, booking.Adjustments)
	})

	t.Run("should apply adjustments to the amount", func(t *testing.T) {
		router, f := setupRouter(t, "session-1")
		plan := generateGoaPlan(t, f)
		request := bookingRequest(plan.Id)
		request.Adjustments = []trip_plan.AdjustmentDTO{
			{Day: 1, Position: 0, Kind: "skip"},
			{Day: 1, Position: 1, Kind: "skip"},
			{Day: 2, Position: 0, Kind: "skip"},
			{Day: 2, Position: 1, Kind: "skip"},
		}

		w := do(router, http.MethodPost, "/api/booking", request)

		require.Equal(t, http.StatusCreated, w.Code)
		var booking BookingDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
		assert.Equal(t, int64(49400), booking.Amount)
		assert.Len(t, booking.Adjustments, 4)
	})

	t.Run("should return 422 for invalid contact details", func(t *testing.T) {
		router, f := setupRouter(t, "session-1")
		plan := generateGoaPlan(t, f)
		request := bookingRequest(plan.Id)
		request.Email = "not-an-email"

		w := do(router, http.MethodPost, "/api/booking", request)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body rest.ErrorDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid_booking", body.Reason)
		assert.Contains(t, body.Error, "not-an-email")
	})

	t.Run("should return 422 for an invalid adjustment", func(t *testing.T) {
		router, f := setupRouter(t, "session-1")
		plan := generateGoaPlan(t, f)
		request := bookingRequest(plan.Id)
		request.Adjustments = []trip_plan.AdjustmentDTO{{Day: 1, Kind: "upgrade"}}

		w := do(router, http.MethodPost, "/api/booking", request)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"reason":"invalid_adjustment"`)
	})

	t.Run("should return 404 for an unknown plan", func(t *testing.T) {
		router, _ := setupRouter(t, "session-1")

		w := do(router, http.MethodPost, "/api/booking", bookingRequest("plan-9"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 400 for unknown fields", func(t *testing.T) {
		router, _ := setupRouter(t, "session-1")

		w := do(router, http.MethodPost, "/api/booking", `{"planId": "plan-1", "cardNumber": "4111"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should return 403 without a session", func(t *testing.T) {
		router, _ := setupRouter(t, "")

		w := do(router, http.MethodPost, "/api/booking", bookingRequest("plan-1"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_GetAndListBookings(t *testing.T) {
	// given
	router, f := setupRouter(t, "session-1")
	plan := generateGoaPlan(t, f)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/booking", bookingRequest(plan.Id)).Code)

	// when
	list := do(router, http.MethodGet, "/api/booking", nil)
	get := do(router, http.MethodGet, "/api/booking/booking-1", nil)
	missing := do(router, http.MethodGet, "/api/booking/booking-9", nil)

	// then
	require.Equal(t, http.StatusOK, list.Code)
	var bookings []BookingDTO
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Goa", bookings[0].DestinationName)

	assert.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHandler_ListBookings_EmptyArray(t *testing.T) {
	router, _ := setupRouter(t, "session-1")

	w := do(router, http.MethodGet, "/api/booking", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
