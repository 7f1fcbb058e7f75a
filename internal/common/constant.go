package common

const (
	// RequestIDHeaderName is attached to every outgoing API call so that
	// client-side log lines can be correlated with server-side ones.
	RequestIDHeaderName = "X-Request-Id"

	// AuthHeaderName carries the opaque session token on API calls.
	AuthHeaderName = "Authorization"
)
