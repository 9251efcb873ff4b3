package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-todo/internal/session"
)

func TestStore(t *testing.T) {
	t.Run("Create And Get", func(t *testing.T) {
		st := session.NewStore(session.Options{})
		sess := st.Create()
		if sess.ID == "" {
			t.Fatal("expected generated session ID")
		}
		if sess.Lists == nil || len(sess.Lists) != 0 {
			t.Errorf("expected empty lists, got %v", sess.Lists)
		}

		got, err := st.Get(sess.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != sess {
			t.Errorf("expected same session pointer")
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		st := session.NewStore(session.Options{})
		if _, err := st.Get("missing"); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
		if _, err := st.Get(""); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound for empty ID, got %v", err)
		}
	})

	t.Run("Distinct Sessions", func(t *testing.T) {
		st := session.NewStore(session.Options{})
		a, b := st.Create(), st.Create()
		if a.ID == b.ID {
			t.Fatal("expected distinct IDs")
		}
		if st.Len() != 2 {
			t.Errorf("expected 2 sessions, got %d", st.Len())
		}
		st.Delete(a.ID)
		if _, err := st.Peek(a.ID); err == nil {
			t.Errorf("expected deleted session to be gone")
		}
	})

	t.Run("Capacity Evicts Oldest", func(t *testing.T) {
		st := session.NewStore(session.Options{MaxSessions: 1})
		first := st.Create()
		st.Create()
		if _, err := st.Peek(first.ID); err == nil {
			t.Errorf("expected first session to be evicted")
		}
	})

	t.Run("Expiry", func(t *testing.T) {
		st := session.NewStore(session.Options{TTL: 20 * time.Millisecond})
		sess := st.Create()
		time.Sleep(60 * time.Millisecond)
		if _, err := st.Get(sess.ID); err == nil {
			t.Errorf("expected session to expire")
		}
	})
}

func TestFlash(t *testing.T) {
	sess := session.NewStore(session.Options{}).Create()
	sess.SetSuccess("created")
	sess.SetError("oops")

	f := sess.PopFlash()
	if f.Success != "created" || f.Error != "oops" {
		t.Errorf("unexpected flash %+v", f)
	}
	if f := sess.PopFlash(); f != (session.Flash{}) {
		t.Errorf("expected flash to be cleared, got %+v", f)
	}
}

func TestContext(t *testing.T) {
	if _, err := session.FromContext(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
	sess := session.NewStore(session.Options{}).Create()
	ctx := session.SetToContext(context.Background(), sess)
	got, err := session.FromContext(ctx)
	if err != nil || got != sess {
		t.Errorf("expected session from context, got %v, %v", got, err)
	}
}
