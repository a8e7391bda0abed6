package middleware

import (
	"golang.org/x/time/rate"

	"legal-research-assistant/config"
	"legal-research-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 2 * rps
	}

	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}
