package model

// Scope identifies whose data a use-case call operates on.
type Scope struct {
	SessionID string
}
