package session

import "context"

type ctxKey struct{}

// SetToContext returns a copy of ctx carrying sess.
func SetToContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session stored by SetToContext.
func FromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok || sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}
