package middleware

import (
	"time"

	"schedule-calendar/pkg/log"
)

// Config configures the shared middleware set.
type Config struct {
	SessionCookieName string
	SessionTTL        time.Duration
	SecureCookie      bool
	RequestsPerMin    int
}

type Middleware struct {
	l       log.Logger
	config  Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = DefaultSessionCookie
	}
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
