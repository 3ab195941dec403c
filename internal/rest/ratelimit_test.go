package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smarttravellers/tripplanner/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rateNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func request(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimiter_Middleware(t *testing.T) {
	// given
	clock := &utils.MockClock{FixedNow: rateNow}
	limiter := NewRateLimiter(1, 2, clock)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serve := func(remoteAddr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request(remoteAddr))
		return w
	}

	// when
	first := serve("10.0.0.1:5000")
	second := serve("10.0.0.1:5001")
	third := serve("10.0.0.1:5002")
	otherClient := serve("10.0.0.2:5000")
	clock.Advance(time.Second)
	afterRefill := serve("10.0.0.1:5003")

	// then
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "1", third.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusOK, otherClient.Code)
	assert.Equal(t, http.StatusOK, afterRefill.Code)
}

func TestRateLimiter_Prune(t *testing.T) {
	clock := &utils.MockClock{FixedNow: rateNow}
	limiter := NewRateLimiter(1, 1, clock)
	limiter.Allow("10.0.0.1")
	clock.Advance(5 * time.Minute)
	limiter.Allow("10.0.0.2")

	removed := limiter.Prune(time.Minute)

	assert.Equal(t, 1, removed)
	assert.True(t, limiter.Allow("10.0.0.1"), "a pruned client starts with a full bucket")
	assert.False(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiter_RunPrunerStopsWithContext(t *testing.T) {
	limiter := NewRateLimiter(1, 1, &utils.MockClock{FixedNow: rateNow})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- limiter.RunPruner(ctx, time.Millisecond, time.Minute) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pruner did not stop")
	}
}
