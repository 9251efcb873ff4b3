package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"session-todo/internal/session"
	"session-todo/pkg/log"
)

// Session resolves the session cookie to a session record, creating a new
// session when the cookie is missing or expired. The session stays locked
// until the rest of the chain has returned, so requests of one session are
// handled one at a time.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.resolveSession(c)

		sess.Lock()
		defer sess.Unlock()

		ctx := session.SetToContext(c.Request.Context(), sess)
		ctx = context.WithValue(ctx, log.SessionIDKey, sess.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (m Middleware) resolveSession(c *gin.Context) *session.Session {
	if id, err := c.Cookie(m.sessionCfg.CookieName); err == nil {
		if sess, err := m.sessions.Get(id); err == nil {
			return sess
		}
		m.l.Debugf(c.Request.Context(), "middleware.Session: unknown session cookie, starting a new session")
	}

	sess := m.sessions.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.sessionCfg.CookieName, sess.ID, 0, "/", "", m.sessionCfg.CookieSecure, true)
	return sess
}
