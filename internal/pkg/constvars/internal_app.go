package constvars

// Session cookie carrying the opaque bearer token issued by the lesson API.
const (
	SessionCookieName    = "auth-token"
	SessionCookieMaxAge  = 7 * 24 * 60 * 60
	TimezoneOffsetCookie = "tz_offset"
	TimezoneOffsetField  = "tzOffset"
	SessionCookiePath    = "/"
)

const (
	RouteLogin     = "/auth/login"
	RouteSignup    = "/auth/signup"
	RouteDashboard = "/dashboard"
)

// Wire formats shared with the lesson API: calendar dates and times-of-day
// are exchanged as UTC strings.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Lesson API resource paths.
const (
	ResourceAuthLogin  = "/auth/login"
	ResourceAuthSignup = "/auth/signup"
	ResourceBooking    = "/booking"
	ResourceTutor      = "/tutor"
)

// AllowedLessonDurations lists the bookable lesson lengths in minutes.
var AllowedLessonDurations = []int{30, 60, 90, 120, 180}
