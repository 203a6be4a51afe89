package constvars

const (
	RegistrationSuccess = "Registration successful! You can now sign in."
	BookingCreated      = "Lesson booked successfully!"
	ResponseUnknown     = "unknown"
)
