package middleware

import (
	"someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

// Middleware holds the dependencies shared by the gin middlewares.
type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
	limiter *rateLimiter
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

func New(l log.Logger, m *metrics.Metrics, rl RateLimitConfig) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl)
	}
	return mw
}
