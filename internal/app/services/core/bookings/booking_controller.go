package bookings

import (
	"context"
	"net/http"
	"strconv"
	"time"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/app/delivery/http/views"
	"tutorbook-service/internal/app/models"
	"tutorbook-service/internal/app/services/core/session"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/exceptions"
	"tutorbook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	SessionStore   contracts.SessionStore
	Views          *views.Views
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, sessionStore contracts.SessionStore, v *views.Views) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		SessionStore:   sessionStore,
		Views:          v,
	}
}

type dashboardPageData struct {
	Bookings    []contracts.BookingView
	Tutors      []models.Tutor
	TutorsError string
	Error       string
	Success     string
	Today       string
	Durations   []int
}

func (ctrl *BookingController) Dashboard(w http.ResponseWriter, r *http.Request) {
	token, err := session.FromContext(r.Context())
	if err != nil {
		utils.Redirect(w, r, constvars.RouteLogin)
		return
	}
	offsetMinutes := timezoneOffsetFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	data, err := ctrl.BookingUsecase.Dashboard(ctx, token, offsetMinutes)
	if err != nil {
		if exceptions.IsUnauthenticated(err) {
			ctrl.SessionStore.Clear(w)
			utils.Redirect(w, r, constvars.RouteLogin)
			return
		}
		ctrl.Views.Render(w, exceptions.StatusCode(err), "dashboard", dashboardPageData{
			Error:     exceptions.ClientMessage(err),
			Today:     time.Now().UTC().Format(constvars.DateLayout),
			Durations: constvars.AllowedLessonDurations,
		})
		return
	}

	page := dashboardPageData{
		Bookings:    data.Bookings,
		Tutors:      data.Tutors,
		TutorsError: data.TutorsError,
		Today:       time.Now().UTC().Format(constvars.DateLayout),
		Durations:   constvars.AllowedLessonDurations,
	}
	if r.URL.Query().Get("created") == "true" {
		page.Success = constvars.BookingCreated
	}
	ctrl.Views.Render(w, constvars.StatusOK, "dashboard", page)
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	token, err := session.FromContext(r.Context())
	if err != nil {
		utils.Redirect(w, r, constvars.RouteLogin)
		return
	}

	// Bind form to request
	if err := r.ParseForm(); err != nil {
		ctrl.renderDashboardError(w, r, token, exceptions.ErrCannotParseForm(err))
		return
	}
	tutorID, _ := strconv.Atoi(r.PostFormValue("tutorId"))
	duration, _ := strconv.Atoi(r.PostFormValue("duration"))
	form := &requests.CreateBookingForm{
		TutorID:         tutorID,
		Date:            r.PostFormValue("date"),
		StartTime:       r.PostFormValue("startTime"),
		DurationMinutes: duration,
		TimezoneOffset:  utils.ParseTimezoneOffset(r.PostFormValue(constvars.TimezoneOffsetField)),
	}

	// Validate request before any network call
	if err := utils.ValidateStruct(form); err != nil {
		ctrl.renderDashboardError(w, r, token, exceptions.ErrMissingRequiredFields(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Send request to be processed by usecase
	if err := ctrl.BookingUsecase.CreateBooking(ctx, token, form); err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		if exceptions.IsUnauthenticated(err) {
			ctrl.SessionStore.Clear(w)
			utils.Redirect(w, r, constvars.RouteLogin)
			return
		}
		ctrl.renderDashboardError(w, r, token, err)
		return
	}

	// Full reload keeps the rendered list authoritative after a write.
	utils.Redirect(w, r, constvars.RouteDashboard+"?created=true")
}

func (ctrl *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	token, err := session.FromContext(r.Context())
	if err != nil {
		utils.Redirect(w, r, constvars.RouteLogin)
		return
	}

	bookingID, err := strconv.Atoi(chi.URLParam(r, "bookingID"))
	if err != nil {
		ctrl.renderDashboardError(w, r, token, exceptions.ErrURLParamIDValidation(err, "bookingID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Send request to be processed by usecase
	if err := ctrl.BookingUsecase.DeleteBooking(ctx, token, bookingID); err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		if exceptions.IsUnauthenticated(err) {
			ctrl.SessionStore.Clear(w)
			utils.Redirect(w, r, constvars.RouteLogin)
			return
		}
		// The list is left untouched by a failed delete; the re-rendered
		// dashboard shows it unchanged with the error inline.
		ctrl.renderDashboardError(w, r, token, err)
		return
	}

	utils.Redirect(w, r, constvars.RouteDashboard)
}

// renderDashboardError re-renders the dashboard with the error inline next
// to the forms, fetching the current list on a best-effort basis.
func (ctrl *BookingController) renderDashboardError(w http.ResponseWriter, r *http.Request, token string, err error) {
	offsetMinutes := timezoneOffsetFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page := dashboardPageData{
		Error:     exceptions.ClientMessage(err),
		Today:     time.Now().UTC().Format(constvars.DateLayout),
		Durations: constvars.AllowedLessonDurations,
	}
	if data, dashErr := ctrl.BookingUsecase.Dashboard(ctx, token, offsetMinutes); dashErr == nil {
		page.Bookings = data.Bookings
		page.Tutors = data.Tutors
		page.TutorsError = data.TutorsError
	}
	ctrl.Views.Render(w, exceptions.StatusCode(err), "dashboard", page)
}

func timezoneOffsetFromRequest(r *http.Request) int {
	cookie, err := r.Cookie(constvars.TimezoneOffsetCookie)
	if err != nil {
		return 0
	}
	return utils.ParseTimezoneOffset(cookie.Value)
}
