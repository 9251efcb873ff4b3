package usecase_test

import (
	"context"
	"testing"

	"session-todo/internal/model"
	"session-todo/internal/session"
	"session-todo/internal/todolist"
	"session-todo/internal/todolist/repository/memory"
	"session-todo/internal/todolist/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// newUseCase wires a use case over a fresh session store and returns the
// scope of one new session.
func newUseCase(t *testing.T) (todolist.UseCase, model.Scope) {
	t.Helper()
	st := session.NewStore(session.Options{})
	uc := usecase.New(memory.New(st, &mockLogger{}), &mockLogger{})
	return uc, model.Scope{SessionID: st.Create().ID}
}

func mustCreateList(t *testing.T, uc todolist.UseCase, sc model.Scope, name string) int {
	t.Helper()
	out, err := uc.CreateList(context.Background(), sc, todolist.CreateListInput{Name: name})
	if err != nil {
		t.Fatalf("CreateList(%q): %v", name, err)
	}
	return out.Index
}
