package middlewares

import (
	"tutorbook-service/internal/app/config"
	"tutorbook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionStore   contracts.SessionStore
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionStore contracts.SessionStore, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionStore:   sessionStore,
		InternalConfig: internalConfig,
	}
}
