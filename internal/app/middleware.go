package app

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/config"
	"github.com/smarttravellers/tripplanner/internal/rest"
	"github.com/smarttravellers/tripplanner/pkg/session"
)

// SetupMiddleware wires all HTTP middlewares for the application and returns the handler
// to serve. CORS and the access log wrap the router so they also see unmatched requests.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) http.Handler {
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware)
	}
	r.Use(sessionMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", session.Header},
		ExposedHeaders: []string{session.Header},
	})
	return accessLog(c.Handler(r))
}

// sessionMiddleware propagates the X-Session-Id header into the context for downstream
// services. A session is created when the header is absent and always echoed back.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sessionId, created, err := session.FromRequest(req)
		if err != nil {
			log.Debugf("rejected session header %q", req.Header.Get(session.Header))
			rest.WriteError(w, http.StatusBadRequest, err, "")
			return
		}
		if created {
			log.Debugf("created session %s", sessionId)
		}
		w.Header().Set(session.Header, sessionId)
		next.ServeHTTP(w, req.WithContext(session.WithId(req.Context(), sessionId)))
	})
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, req)
		log.WithFields(log.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   m.Code,
			"bytes":    m.Written,
			"duration": m.Duration.String(),
			"session":  w.Header().Get(session.Header),
		}).Info("request")
	})
}
