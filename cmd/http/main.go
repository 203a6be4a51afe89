package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tutorbook-service/internal/app/config"
	"tutorbook-service/internal/app/delivery/http/middlewares"
	"tutorbook-service/internal/app/delivery/http/routers"
	"tutorbook-service/internal/app/delivery/http/views"
	"tutorbook-service/internal/app/drivers/logger"
	coreauth "tutorbook-service/internal/app/services/core/auth"
	"tutorbook-service/internal/app/services/core/bookings"
	"tutorbook-service/internal/app/services/core/session"
	lessonapi_auth "tutorbook-service/internal/app/services/lessonapi/auth"
	lessonapi_bookings "tutorbook-service/internal/app/services/lessonapi/bookings"
	lessonapi_tutors "tutorbook-service/internal/app/services/lessonapi/tutors"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Views
	v, err := views.New(bootstrap.InternalConfig.App.TemplateDir, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to parse templates: %v", err)
	}

	// Session
	sessionStore := session.NewCookieSessionStore(bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, sessionStore, bootstrap.InternalConfig)

	// Lesson API clients
	baseUrl := bootstrap.InternalConfig.LessonAPI.BaseUrl
	authAPIClient := lessonapi_auth.NewAuthAPIClient(baseUrl, bootstrap.ZapLogger)
	bookingAPIClient := lessonapi_bookings.NewBookingAPIClient(baseUrl, bootstrap.ZapLogger)
	tutorAPIClient := lessonapi_tutors.NewTutorAPIClient(baseUrl, bootstrap.ZapLogger)

	// Auth
	authUsecase := coreauth.NewAuthUsecase(authAPIClient, bootstrap.ZapLogger)
	authController := coreauth.NewAuthController(bootstrap.ZapLogger, authUsecase, sessionStore, v)

	// Bookings
	bookingUsecase := bookings.NewBookingUsecase(bookingAPIClient, tutorAPIClient, bootstrap.ZapLogger)
	bookingController := bookings.NewBookingController(bootstrap.ZapLogger, bookingUsecase, sessionStore, v)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, bookingController)
}
