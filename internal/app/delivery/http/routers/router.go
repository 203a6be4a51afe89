package routers

import (
	"net/http"
	"time"
	"tutorbook-service/internal/app/config"
	"tutorbook-service/internal/app/delivery/http/middlewares"
	"tutorbook-service/internal/app/services/core/auth"
	"tutorbook-service/internal/app/services/core/bookings"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	bookingController *bookings.BookingController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.Redirect(w, r, constvars.RouteDashboard)
	})

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
	})

	router.Route("/dashboard", func(r chi.Router) {
		attachDashboardRoutes(r, middlewares, bookingController)
	})
}
