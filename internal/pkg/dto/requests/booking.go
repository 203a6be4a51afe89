package requests

// CreateBookingForm carries the raw dashboard form input. Times are the
// viewer's wall clock; TimezoneOffset is minutes east of UTC as reported by
// the browser.
type CreateBookingForm struct {
	TutorID         int    `validate:"required,gt=0"`
	Date            string `validate:"required"`
	StartTime       string `validate:"required"`
	DurationMinutes int    `validate:"required,lesson_duration"`
	TimezoneOffset  int
}

// CreateBooking is the UTC-normalized wire payload sent to the lesson API.
type CreateBooking struct {
	TutorID   int    `json:"tutorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
