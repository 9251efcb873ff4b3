package log

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ContextKey is the type of keys read from the context when logging.
type ContextKey string

// SessionIDKey carries the request's session ID into log lines.
const SessionIDKey ContextKey = "session_id"
