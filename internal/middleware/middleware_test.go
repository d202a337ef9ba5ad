package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func hit(r *gin.Engine, ip string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitPerClient(t *testing.T) {
	m := metrics.New()
	mw := New(log.NewNop(), m, RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 2})
	r := newEngine(mw.RateLimit())

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1", nil).Code)
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1", nil).Code)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2", nil).Code, "other clients have their own budget")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), metrics.New(), RateLimitConfig{Enabled: false, RequestsPerMin: 1, Burst: 1})
	r := newEngine(mw.RateLimit())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1", nil).Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), nil, RateLimitConfig{})
	r := newEngine(mw.RequestID(), mw.Logger())

	w := hit(r, "10.0.0.1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	w = hit(r, "10.0.0.1", http.Header{HeaderRequestID: []string{"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())
}
