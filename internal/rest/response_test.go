package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusUnprocessableEntity, errors.New("select at least one theme"), "empty_themes")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"select at least one theme","reason":"empty_themes"}`, w.Body.String())
}

func TestWriteError_WithoutReason(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusNotFound, errors.New("plan not found"), "")

	assert.JSONEq(t, `{"error":"plan not found"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("should decode a known payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Goa"}`))
		var p payload

		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "Goa", p.Name)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Goa","extra":1}`))
		var p payload

		assert.Error(t, DecodeJSON(req, &p))
	})
}
