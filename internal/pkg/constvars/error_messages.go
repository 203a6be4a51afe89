package constvars

// Client-facing messages. The lesson API is the source of truth for most
// rejection messages; these cover local validation and fallbacks when the
// remote payload carries no usable message.
const (
	ErrClientLoginFailed           = "Login failed"
	ErrClientRegistrationFailed    = "Registration failed"
	ErrClientNetworkError          = "Network error"
	ErrClientMissingRequiredFields = "Please fill in all required fields"
	ErrClientInvalidDuration       = "Please choose a valid lesson duration"
	ErrClientNotLoggedIn           = "You must be logged in"
	ErrClientLoadBookingsFailed    = "Failed to load bookings. Please try again."
	ErrClientLoadTutorsFailed      = "Failed to load tutors. Please try again."
	ErrClientCreateBookingFailed   = "Failed to create booking. Please try again."
	ErrClientDeleteBookingFailed   = "Failed to delete booking. Please try again."
	ErrClientCannotProcessRequest  = "Cannot process the request"
	ErrClientSomethingWrong        = "Something went wrong with the application"
)

// Developer-facing messages attached to CustomError.DevMessage.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevCannotParseForm        = "Failed to parse form body"
	ErrDevCannotParseJSON        = "Failed to parse JSON"
	ErrDevCannotParseDate        = "Failed to parse date input"
	ErrDevCannotParseTime        = "Failed to parse time input"
	ErrDevBuildRequest           = "Failed to build HTTP request"
	ErrDevSendRequest            = "Failed to send HTTP request to lesson API"
	ErrDevReadResponseBody       = "Failed to read lesson API response body"
	ErrDevDecodeResponseBody     = "Failed to decode lesson API response body"
	ErrDevSessionTokenMissing    = "Session token missing from request context"
	ErrDevSessionCookieMissing   = "Session cookie absent or empty"
	ErrDevLessonAPIRejected      = "Lesson API rejected the request"
	ErrDevRenderTemplate         = "Failed to render template"
	ErrDevServerDeadlineExceeded = "Context deadline exceeded"
)
