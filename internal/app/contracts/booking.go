package contracts

import (
	"context"
	"tutorbook-service/internal/app/models"
	"tutorbook-service/internal/pkg/dto/requests"
)

// BookingAPIClient maps booking actions onto single lesson API calls, each
// authenticated with the caller's bearer token.
type BookingAPIClient interface {
	FindAll(ctx context.Context, token string) ([]models.Booking, error)
	Create(ctx context.Context, token string, request *requests.CreateBooking) error
	Delete(ctx context.Context, token string, bookingID int) error
}

// BookingUsecase drives the dashboard: listing (classified, sorted,
// localized), creation from wall-clock form input, and deletion.
type BookingUsecase interface {
	Dashboard(ctx context.Context, token string, offsetMinutes int) (*DashboardData, error)
	CreateBooking(ctx context.Context, token string, form *requests.CreateBookingForm) error
	DeleteBooking(ctx context.Context, token string, bookingID int) error
}

// BookingView is a booking decorated for rendering: state and deletability
// are derived at render time, display strings are localized to the viewer.
type BookingView struct {
	models.Booking
	State        models.BookingState
	CanDelete    bool
	DateDisplay  string
	StartDisplay string
	EndDisplay   string
}

type DashboardData struct {
	Bookings    []BookingView
	Tutors      []models.Tutor
	TutorsError string
}
