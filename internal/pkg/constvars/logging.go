package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingURLKey        = "url"
	LoggingBookingIDKey  = "booking_id"
	LoggingTutorCountKey = "tutor_count"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY    ContextKey = "requestID"
	CONTEXT_SESSION_TOKEN_KEY ContextKey = "sessionToken"
)
