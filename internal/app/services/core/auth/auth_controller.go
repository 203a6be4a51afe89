package auth

import (
	"context"
	"net/http"
	"time"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/app/delivery/http/views"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/exceptions"
	"tutorbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log          *zap.Logger
	AuthUsecase  contracts.AuthUsecase
	SessionStore contracts.SessionStore
	Views        *views.Views
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, sessionStore contracts.SessionStore, v *views.Views) *AuthController {
	return &AuthController{
		Log:          logger,
		AuthUsecase:  authUsecase,
		SessionStore: sessionStore,
		Views:        v,
	}
}

type loginPageData struct {
	Error   string
	Success string
	Email   string
}

type signupPageData struct {
	Error string
	Email string
}

func (ctrl *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := loginPageData{}
	if r.URL.Query().Get("registered") == "true" {
		data.Success = constvars.RegistrationSuccess
	}
	ctrl.Views.Render(w, constvars.StatusOK, "login", data)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	if err := r.ParseForm(); err != nil {
		customErr := exceptions.ErrCannotParseForm(err)
		ctrl.Views.Render(w, customErr.StatusCode, "login", loginPageData{Error: customErr.ClientMessage})
		return
	}
	request := &requests.LoginUser{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		ctrl.Views.Render(w, customErr.StatusCode, "login", loginPageData{
			Error: customErr.ClientMessage,
			Email: request.Email,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Send request to be processed by usecase
	token, err := ctrl.AuthUsecase.LoginUser(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		ctrl.Views.Render(w, exceptions.StatusCode(err), "login", loginPageData{
			Error: exceptions.ClientMessage(err),
			Email: request.Email,
		})
		return
	}

	// Establish the session and send the user to the dashboard
	ctrl.SessionStore.Set(w, token)
	utils.Redirect(w, r, constvars.RouteDashboard)
}

func (ctrl *AuthController) SignupPage(w http.ResponseWriter, r *http.Request) {
	ctrl.Views.Render(w, constvars.StatusOK, "signup", signupPageData{})
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	if err := r.ParseForm(); err != nil {
		customErr := exceptions.ErrCannotParseForm(err)
		ctrl.Views.Render(w, customErr.StatusCode, "signup", signupPageData{Error: customErr.ClientMessage})
		return
	}
	request := &requests.SignupUser{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		ctrl.Views.Render(w, customErr.StatusCode, "signup", signupPageData{
			Error: customErr.ClientMessage,
			Email: request.Email,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Send request to be processed by usecase
	if err := ctrl.AuthUsecase.SignupUser(ctx, request); err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		ctrl.Views.Render(w, exceptions.StatusCode(err), "signup", signupPageData{
			Error: exceptions.ClientMessage(err),
			Email: request.Email,
		})
		return
	}

	utils.Redirect(w, r, constvars.RouteLogin+"?registered=true")
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	// Clearing is unconditional: a stale or absent cookie still results in a
	// logged-out client.
	ctrl.SessionStore.Clear(w)
	utils.Redirect(w, r, constvars.RouteLogin)
}
