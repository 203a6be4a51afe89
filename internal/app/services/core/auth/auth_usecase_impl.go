package auth

import (
	"context"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthAPIClient contracts.AuthAPIClient
	Log           *zap.Logger
}

func NewAuthUsecase(authAPIClient contracts.AuthAPIClient, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		AuthAPIClient: authAPIClient,
		Log:           logger,
	}
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token, err := uc.AuthAPIClient.Login(ctx, request)
	if err != nil {
		return "", err
	}

	if token == "" {
		uc.Log.Warn("authUsecase.LoginUser received empty access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return token, nil
}

func (uc *authUsecase) SignupUser(ctx context.Context, request *requests.SignupUser) error {
	return uc.AuthAPIClient.Signup(ctx, request)
}
