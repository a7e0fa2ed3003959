package middleware

import (
	"goal-planner/config"
	"goal-planner/pkg/log"
	"goal-planner/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	auth       config.AuthConfig
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, auth config.AuthConfig, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		auth:       auth,
		limiter:    newRateLimiter(rl.RequestsPerMin, rl.Burst),
	}
}
