package bookings

import (
	"context"
	"time"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/app/models"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/exceptions"
	"tutorbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingAPIClient contracts.BookingAPIClient
	TutorAPIClient   contracts.TutorAPIClient
	Log              *zap.Logger
	// nowUTC is injectable so classification is deterministic in tests.
	nowUTC func() time.Time
}

func NewBookingUsecase(bookingAPIClient contracts.BookingAPIClient, tutorAPIClient contracts.TutorAPIClient, logger *zap.Logger) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingAPIClient: bookingAPIClient,
		TutorAPIClient:   tutorAPIClient,
		Log:              logger,
		nowUTC:           func() time.Time { return time.Now().UTC() },
	}
}

func (uc *bookingUsecase) Dashboard(ctx context.Context, token string, offsetMinutes int) (*contracts.DashboardData, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bookings, err := uc.BookingAPIClient.FindAll(ctx, token)
	if err != nil {
		return nil, err
	}

	now := uc.nowUTC()
	sorted := models.SortForDisplay(bookings, now)

	bookingViews := make([]contracts.BookingView, 0, len(sorted))
	for _, b := range sorted {
		bookingViews = append(bookingViews, decorate(b, now, offsetMinutes))
	}

	data := &contracts.DashboardData{
		Bookings: bookingViews,
	}

	tutors, tutorsErr := uc.TutorAPIClient.FindAll(ctx, token)
	if tutorsErr != nil {
		// The tutor listing endpoint is flaky on some deployments; the
		// bookings we already hold reference every tutor this user has
		// lessons with, so reuse them before surfacing the failure.
		derived := models.TutorsFromBookings(bookings)
		if len(derived) > 0 {
			uc.Log.Warn("bookingUsecase.Dashboard tutor listing failed, derived tutors from bookings",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingTutorCountKey, len(derived)),
				zap.Error(tutorsErr),
			)
			tutors = derived
			tutorsErr = nil
		}
	}
	data.Tutors = tutors
	if tutorsErr != nil {
		data.TutorsError = exceptions.ClientMessage(tutorsErr)
	}

	return data, nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, token string, form *requests.CreateBookingForm) error {
	window, err := utils.ToUTCWindow(form.Date, form.StartTime, form.DurationMinutes, form.TimezoneOffset)
	if err != nil {
		return err
	}

	return uc.BookingAPIClient.Create(ctx, token, &requests.CreateBooking{
		TutorID:   form.TutorID,
		Date:      window.Date,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
	})
}

func (uc *bookingUsecase) DeleteBooking(ctx context.Context, token string, bookingID int) error {
	return uc.BookingAPIClient.Delete(ctx, token, bookingID)
}

func decorate(b models.Booking, now time.Time, offsetMinutes int) contracts.BookingView {
	view := contracts.BookingView{
		Booking:      b,
		State:        b.Classify(now),
		CanDelete:    b.CanDelete(now),
		DateDisplay:  b.Date,
		StartDisplay: b.StartTime,
		EndDisplay:   b.EndTime,
	}

	// Display localization is best-effort: malformed wire data falls back to
	// the raw UTC strings. End uses the resolved instant so a window that
	// crosses midnight UTC still shows the right local time.
	if start := b.StartInstant(); !start.IsZero() {
		view.DateDisplay = utils.FormatLocalDate(start, offsetMinutes)
		view.StartDisplay = utils.FormatLocalTime(start, offsetMinutes)
	}
	if end := b.EndInstant(); !end.IsZero() {
		view.EndDisplay = utils.FormatLocalTime(end, offsetMinutes)
	}
	return view
}
