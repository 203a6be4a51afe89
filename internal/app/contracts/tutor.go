package contracts

import (
	"context"
	"tutorbook-service/internal/app/models"
)

type TutorAPIClient interface {
	FindAll(ctx context.Context, token string) ([]models.Tutor, error)
}
