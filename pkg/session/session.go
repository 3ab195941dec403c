package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Header carries the session id on requests and responses.
const Header = "X-Session-Id"

type contextKey string

const sessionKey contextKey = "session"

var ErrNoSession = errors.New("session not found")
var ErrInvalidSession = errors.New("invalid session id")

// CurrentId retrieves the session id from the context. Returns ErrNoSession if it is not present.
func CurrentId(ctx context.Context) (string, error) {
	id, ok := ctx.Value(sessionKey).(string)
	if !ok || id == "" {
		log.Trace("session not found in context")
		return "", ErrNoSession
	}
	return id, nil
}

func WithId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// New returns a fresh random session id.
func New() string {
	return uuid.NewString()
}

// FromRequest returns the session id sent by the client, or a new one when the header is
// absent. A header that is not a UUID is rejected with ErrInvalidSession.
func FromRequest(r *http.Request) (id string, created bool, err error) {
	header := r.Header.Get(Header)
	if header == "" {
		return New(), true, nil
	}
	parsed, err := uuid.Parse(header)
	if err != nil {
		return "", false, ErrInvalidSession
	}
	return parsed.String(), false, nil
}
