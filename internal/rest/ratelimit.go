package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"golang.org/x/time/rate"
)

var ErrTooManyRequests = errors.New("too many requests")

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	clock    utils.Clock
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int, clock utils.Clock) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		clock:    clock,
	}
}

// Allow reports whether the client may make a request now.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	v, ok := rl.visitors[client]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[client] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !rl.Allow(client) {
			log.Debugf("rate limit exceeded for %s", client)
			w.Header().Set("Retry-After", "1")
			WriteError(w, http.StatusTooManyRequests, ErrTooManyRequests, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Prune forgets clients that have been idle for longer than idle and returns how many
// were removed.
func (rl *RateLimiter) Prune(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.clock.Now().Add(-idle)
	removed := 0
	for client, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, client)
			removed++
		}
	}
	return removed
}

// RunPruner prunes idle clients every interval until ctx is done.
func (rl *RateLimiter) RunPruner(ctx context.Context, interval, idle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if removed := rl.Prune(idle); removed > 0 {
				log.Debugf("pruned %d idle rate limit entries", removed)
			}
		}
	}
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
