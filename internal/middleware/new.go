package middleware

import (
	"golang.org/x/time/rate"

	"aria-assistant/config"
	"aria-assistant/pkg/log"
)

type Middleware struct {
	l           log.Logger
	chatLimiter *rate.Limiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	perMinute := cfg.ChatPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}

	return Middleware{
		l:           l,
		chatLimiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
	}
}
