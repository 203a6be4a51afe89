package bookings

import (
	"context"
	"testing"
	"time"
	"tutorbook-service/internal/app/models"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingAPIClient struct {
	mock.Mock
}

func (m *MockBookingAPIClient) FindAll(ctx context.Context, token string) ([]models.Booking, error) {
	args := m.Called(ctx, token)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingAPIClient) Create(ctx context.Context, token string, request *requests.CreateBooking) error {
	args := m.Called(ctx, token, request)
	return args.Error(0)
}

func (m *MockBookingAPIClient) Delete(ctx context.Context, token string, bookingID int) error {
	args := m.Called(ctx, token, bookingID)
	return args.Error(0)
}

type MockTutorAPIClient struct {
	mock.Mock
}

func (m *MockTutorAPIClient) FindAll(ctx context.Context, token string) ([]models.Tutor, error) {
	args := m.Called(ctx, token)
	tutors, _ := args.Get(0).([]models.Tutor)
	return tutors, args.Error(1)
}

func newTestUsecase(bookingClient *MockBookingAPIClient, tutorClient *MockTutorAPIClient, now time.Time) *bookingUsecase {
	return &bookingUsecase{
		BookingAPIClient: bookingClient,
		TutorAPIClient:   tutorClient,
		Log:              zap.NewNop(),
		nowUTC:           func() time.Time { return now },
	}
}

func TestDashboard_ClassifiesSortsAndLocalizes(t *testing.T) {
	now := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	alice := models.Tutor{ID: 7, Name: "Alice"}

	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	bookingClient.On("FindAll", mock.Anything, "token").Return([]models.Booking{
		{ID: 1, Date: "2024-06-01", StartTime: "18:00", EndTime: "19:00", Tutor: alice},
		{ID: 2, Date: "2024-05-30", StartTime: "10:00", EndTime: "11:00", Tutor: alice},
		{ID: 3, Date: "2024-06-02", StartTime: "10:00", EndTime: "11:00", Tutor: alice},
	}, nil)
	tutorClient.On("FindAll", mock.Anything, "token").Return([]models.Tutor{alice}, nil)

	uc := newTestUsecase(bookingClient, tutorClient, now)
	data, err := uc.Dashboard(context.Background(), "token", -240)

	assert.NoError(t, err)
	assert.Len(t, data.Bookings, 3)

	// Ongoing first, then upcoming, then past.
	assert.Equal(t, 1, data.Bookings[0].ID)
	assert.Equal(t, models.BookingOngoing, data.Bookings[0].State)
	assert.True(t, data.Bookings[0].CanDelete)
	assert.Equal(t, 3, data.Bookings[1].ID)
	assert.Equal(t, models.BookingUpcoming, data.Bookings[1].State)
	assert.Equal(t, 2, data.Bookings[2].ID)
	assert.Equal(t, models.BookingPast, data.Bookings[2].State)
	assert.False(t, data.Bookings[2].CanDelete)

	// Display strings are localized to the viewer's offset (UTC-4).
	assert.Equal(t, "Saturday, June 1, 2024", data.Bookings[0].DateDisplay)
	assert.Equal(t, "02:00 PM", data.Bookings[0].StartDisplay)
	assert.Equal(t, "03:00 PM", data.Bookings[0].EndDisplay)

	assert.Equal(t, []models.Tutor{alice}, data.Tutors)
	assert.Empty(t, data.TutorsError)
}

func TestDashboard_MalformedBookingFallsBackToRawStrings(t *testing.T) {
	now := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	bookingClient.On("FindAll", mock.Anything, "token").Return([]models.Booking{
		{ID: 1, Date: "garbage", StartTime: "18:00", EndTime: "19:00"},
	}, nil)
	tutorClient.On("FindAll", mock.Anything, "token").Return([]models.Tutor(nil), nil)

	uc := newTestUsecase(bookingClient, tutorClient, now)
	data, err := uc.Dashboard(context.Background(), "token", -240)

	assert.NoError(t, err)
	assert.Equal(t, "garbage", data.Bookings[0].DateDisplay)
	assert.Equal(t, "18:00", data.Bookings[0].StartDisplay)
	assert.Equal(t, "19:00", data.Bookings[0].EndDisplay)
}

func TestDashboard_TutorListingFallsBackToBookings(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	alice := models.Tutor{ID: 7, Name: "Alice"}
	bob := models.Tutor{ID: 9, Name: "Bob"}

	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	bookingClient.On("FindAll", mock.Anything, "token").Return([]models.Booking{
		{ID: 1, Date: "2024-06-02", StartTime: "10:00", EndTime: "11:00", Tutor: alice},
		{ID: 2, Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00", Tutor: bob},
		{ID: 3, Date: "2024-06-04", StartTime: "10:00", EndTime: "11:00", Tutor: alice},
	}, nil)
	tutorClient.On("FindAll", mock.Anything, "token").
		Return([]models.Tutor(nil), exceptions.ErrLessonAPIRejected(500, constvars.ErrClientLoadTutorsFailed))

	uc := newTestUsecase(bookingClient, tutorClient, now)
	data, err := uc.Dashboard(context.Background(), "token", 0)

	assert.NoError(t, err)
	assert.Equal(t, []models.Tutor{alice, bob}, data.Tutors, "derived set is deduplicated in first-seen order")
	assert.Empty(t, data.TutorsError, "a successful fallback hides the listing failure")
}

func TestDashboard_TutorErrorSurfacesWhenNothingToDerive(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	bookingClient.On("FindAll", mock.Anything, "token").Return([]models.Booking{}, nil)
	tutorClient.On("FindAll", mock.Anything, "token").
		Return([]models.Tutor(nil), exceptions.ErrLessonAPIRejected(500, constvars.ErrClientLoadTutorsFailed))

	uc := newTestUsecase(bookingClient, tutorClient, now)
	data, err := uc.Dashboard(context.Background(), "token", 0)

	assert.NoError(t, err, "bookings still render when only tutors failed")
	assert.Empty(t, data.Tutors)
	assert.Equal(t, constvars.ErrClientLoadTutorsFailed, data.TutorsError)
}

func TestDashboard_BookingListingFailureIsFatal(t *testing.T) {
	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	listErr := exceptions.ErrLessonAPIRejected(500, constvars.ErrClientLoadBookingsFailed)
	bookingClient.On("FindAll", mock.Anything, "token").Return([]models.Booking(nil), listErr)

	uc := newTestUsecase(bookingClient, tutorClient, time.Now().UTC())
	data, err := uc.Dashboard(context.Background(), "token", 0)

	assert.Nil(t, data)
	assert.Equal(t, constvars.ErrClientLoadBookingsFailed, exceptions.ClientMessage(err))
	tutorClient.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestCreateBooking_NormalizesWindowBeforeSubmission(t *testing.T) {
	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	bookingClient.On("Create", mock.Anything, "token", &requests.CreateBooking{
		TutorID:   7,
		Date:      "2024-06-01",
		StartTime: "18:00",
		EndTime:   "19:00",
	}).Return(nil)

	uc := newTestUsecase(bookingClient, tutorClient, time.Now().UTC())
	err := uc.CreateBooking(context.Background(), "token", &requests.CreateBookingForm{
		TutorID:         7,
		Date:            "2024-06-01",
		StartTime:       "14:00",
		DurationMinutes: 60,
		TimezoneOffset:  -240,
	})

	assert.NoError(t, err)
	bookingClient.AssertExpectations(t)
}

func TestCreateBooking_InvalidDurationNeverReachesAPI(t *testing.T) {
	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)

	uc := newTestUsecase(bookingClient, tutorClient, time.Now().UTC())
	err := uc.CreateBooking(context.Background(), "token", &requests.CreateBookingForm{
		TutorID:         7,
		Date:            "2024-06-01",
		StartTime:       "14:00",
		DurationMinutes: 45,
		TimezoneOffset:  0,
	})

	assert.Error(t, err)
	bookingClient.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteBooking_PassesThrough(t *testing.T) {
	bookingClient := new(MockBookingAPIClient)
	tutorClient := new(MockTutorAPIClient)
	bookingClient.On("Delete", mock.Anything, "token", 42).Return(nil)

	uc := newTestUsecase(bookingClient, tutorClient, time.Now().UTC())
	assert.NoError(t, uc.DeleteBooking(context.Background(), "token", 42))
	bookingClient.AssertExpectations(t)
}
