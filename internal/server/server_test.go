package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedeon/andikacv/internal/server/ratelimit"
	"github.com/gedeon/andikacv/pkg/logger"
)

func testServerShell() *Server {
	return &Server{log: logger.Nop()}
}

func TestExtractClientID(t *testing.T) {
	s := testServerShell()

	r := httptest.NewRequest(http.MethodGet, "/cvs", nil)
	r.RemoteAddr = "203.0.113.9:51234"
	assert.Equal(t, "203.0.113.9", s.extractClientID(r))

	// Unparseable RemoteAddr falls back to the raw value
	r.RemoteAddr = "weird-value"
	assert.Equal(t, "weird-value", s.extractClientID(r))
}

func TestJSONResponse(t *testing.T) {
	s := testServerShell()
	rec := httptest.NewRecorder()

	s.jsonResponse(rec, http.StatusTeapot, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestErrorResponse(t *testing.T) {
	s := testServerShell()
	rec := httptest.NewRecorder()

	s.errorResponse(rec, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad input")
}

func TestSetRateLimitHeaders(t *testing.T) {
	s := testServerShell()
	rec := httptest.NewRecorder()

	s.setRateLimitHeaders(rec, ratelimit.Info{
		Limit:     100,
		Remaining: 42,
		ResetTime: time.Now().Add(time.Minute),
	})

	assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "42", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	// Unlimited endpoints get no headers
	rec = httptest.NewRecorder()
	s.setRateLimitHeaders(rec, ratelimit.Info{Limit: 0})
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitResponse(t *testing.T) {
	s := testServerShell()
	rec := httptest.NewRecorder()

	s.rateLimitResponse(rec, ratelimit.Info{
		Limit:      10,
		Remaining:  0,
		ResetTime:  time.Now().Add(30 * time.Second),
		RetryAfter: 30 * time.Second,
	})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "My CV.pdf", pdfFilename("My CV"))
	assert.Equal(t, "cv.pdf", pdfFilename(""))
}
