package middleware

const (
	DefaultSessionCookie = "schedule_session"
	HeaderRequestID      = "X-Request-ID"

	sessionIDKey = "session_id"
	requestIDKey = "request_id"
)
