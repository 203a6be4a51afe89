package routers

import (
	"tutorbook-service/internal/app/delivery/http/middlewares"
	"tutorbook-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.Use(middlewares.RequireSession)

	router.Get("/", bookingController.Dashboard)
	router.Post("/bookings", bookingController.CreateBooking)
	router.Post("/bookings/{bookingID}/delete", bookingController.DeleteBooking)
}
