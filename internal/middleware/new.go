package middleware

import (
	"session-todo/config"
	"session-todo/internal/session"
	"session-todo/pkg/log"
)

type Middleware struct {
	l          log.Logger
	sessions   *session.Store
	sessionCfg config.SessionConfig
	limiter    *rateLimiter
}

func New(l log.Logger, sessions *session.Store, sessionCfg config.SessionConfig, rateCfg config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:          l,
		sessions:   sessions,
		sessionCfg: sessionCfg,
	}
	if rateCfg.Enabled {
		mw.limiter = newRateLimiter(rateCfg)
	}
	return mw
}
