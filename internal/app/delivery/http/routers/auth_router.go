package routers

import (
	"tutorbook-service/internal/app/delivery/http/middlewares"
	"tutorbook-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.With(middlewares.RedirectIfAuthenticated).Get("/login", authController.LoginPage)
	router.With(middlewares.RedirectIfAuthenticated).Post("/login", authController.Login)
	router.With(middlewares.RedirectIfAuthenticated).Get("/signup", authController.SignupPage)
	router.With(middlewares.RedirectIfAuthenticated).Post("/signup", authController.Signup)
	router.Post("/logout", authController.Logout)
}
