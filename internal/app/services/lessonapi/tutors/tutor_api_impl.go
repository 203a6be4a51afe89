package lessonapi_tutors

import (
	"context"
	"io"
	"net/http"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/app/models"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/responses"
	"tutorbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type tutorAPIClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewTutorAPIClient(baseUrl string, logger *zap.Logger) contracts.TutorAPIClient {
	return &tutorAPIClient{
		BaseUrl: baseUrl + constvars.ResourceTutor,
		Log:     logger,
	}
}

func (c *tutorAPIClient) FindAll(ctx context.Context, token string) ([]models.Tutor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("tutorAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("tutorAPIClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildRequest(err, constvars.ErrClientLoadTutorsFailed)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("tutorAPIClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendRequest(err, constvars.ErrClientLoadTutorsFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrReadResponseBody(err, constvars.ErrClientLoadTutorsFailed)
		}
		message := responses.ExtractErrorMessage(bodyBytes, constvars.ErrClientLoadTutorsFailed)
		c.Log.Error("tutorAPIClient.FindAll rejected by lesson API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrLessonAPIRejected(resp.StatusCode, message)
	}

	var tutors []models.Tutor
	if err := json.NewDecoder(resp.Body).Decode(&tutors); err != nil {
		return nil, exceptions.ErrDecodeResponseBody(err, constvars.ErrClientLoadTutorsFailed)
	}
	return tutors, nil
}
