package contracts

import (
	"context"
	"tutorbook-service/internal/pkg/dto/requests"
)

// AuthAPIClient maps authentication actions onto single lesson API calls.
type AuthAPIClient interface {
	// Login exchanges credentials for an opaque bearer token. The token may
	// be empty when the remote response carries no access_token field.
	Login(ctx context.Context, request *requests.LoginUser) (string, error)
	Signup(ctx context.Context, request *requests.SignupUser) error
}

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.LoginUser) (string, error)
	SignupUser(ctx context.Context, request *requests.SignupUser) error
}
