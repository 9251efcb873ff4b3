package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"session-todo/config"
	"session-todo/internal/middleware"
	"session-todo/internal/session"
	"session-todo/pkg/log"
)

const cookieName = "todo_session"

func newEngine(store *session.Store, rateCfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), store, config.SessionConfig{CookieName: cookieName, TTL: time.Hour, MaxSessions: 10}, rateCfg)

	r := gin.New()
	r.Use(mw.Recovery(), mw.Logger(), mw.RateLimit(), mw.Session())
	r.GET("/whoami", func(c *gin.Context) {
		sess, err := session.FromContext(c.Request.Context())
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, sess.ID)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName {
			return ck
		}
	}
	return nil
}

func TestSession(t *testing.T) {
	store := session.NewStore(session.Options{})
	r := newEngine(store, config.RateLimitConfig{})

	t.Run("New Visitor Gets Cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		ck := sessionCookie(w)
		if ck == nil {
			t.Fatal("expected session cookie")
		}
		if !ck.HttpOnly {
			t.Errorf("expected HttpOnly cookie")
		}
		if ck.Value != w.Body.String() {
			t.Errorf("cookie %q does not match session %q", ck.Value, w.Body.String())
		}
	})

	t.Run("Returning Visitor Keeps Session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		first := sessionCookie(w)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(first)
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, req)

		if w2.Body.String() != first.Value {
			t.Errorf("expected same session %q, got %q", first.Value, w2.Body.String())
		}
		if sessionCookie(w2) != nil {
			t.Errorf("expected no new cookie for a known session")
		}
	})

	t.Run("Unknown Cookie Starts Fresh Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "stale"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() == "stale" {
			t.Errorf("stale session ID was reused")
		}
		if sessionCookie(w) == nil {
			t.Errorf("expected replacement cookie")
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	r := newEngine(session.NewStore(session.Options{}), config.RateLimitConfig{Enabled: true, RequestsPerMin: 60})

	var limited bool
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Errorf("expected a 429 after exceeding the burst")
	}
}

func TestRecovery(t *testing.T) {
	r := newEngine(session.NewStore(session.Options{}), config.RateLimitConfig{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
