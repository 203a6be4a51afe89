package lessonapi_auth

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/dto/responses"
	"tutorbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authAPIClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewAuthAPIClient(baseUrl string, logger *zap.Logger) contracts.AuthAPIClient {
	return &authAPIClient{
		BaseUrl: baseUrl,
		Log:     logger,
	}
}

func (c *authAPIClient) Login(ctx context.Context, request *requests.LoginUser) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := json.Marshal(request)
	if err != nil {
		return "", exceptions.ErrBuildRequest(err, constvars.ErrClientLoginFailed)
	}

	url := c.BaseUrl + constvars.ResourceAuthLogin
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.Log.Error("authAPIClient.Login error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrBuildRequest(err, constvars.ErrClientLoginFailed)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("authAPIClient.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendRequest(err, constvars.ErrClientNetworkError)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", exceptions.ErrReadResponseBody(err, constvars.ErrClientLoginFailed)
		}
		message := responses.ExtractErrorMessage(bodyBytes, constvars.ErrClientLoginFailed)
		c.Log.Error("authAPIClient.Login rejected by lesson API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrLessonAPIRejected(resp.StatusCode, message)
	}

	var result responses.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", exceptions.ErrDecodeResponseBody(err, constvars.ErrClientLoginFailed)
	}

	// An absent access_token is stored as-is; the session gate rejects the
	// empty value on the next protected request.
	return result.AccessToken, nil
}

func (c *authAPIClient) Signup(ctx context.Context, request *requests.SignupUser) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrBuildRequest(err, constvars.ErrClientRegistrationFailed)
	}

	url := c.BaseUrl + constvars.ResourceAuthSignup
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.Log.Error("authAPIClient.Signup error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBuildRequest(err, constvars.ErrClientRegistrationFailed)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("authAPIClient.Signup error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendRequest(err, constvars.ErrClientNetworkError)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return exceptions.ErrReadResponseBody(err, constvars.ErrClientRegistrationFailed)
		}
		message := responses.ExtractErrorMessage(bodyBytes, constvars.ErrClientRegistrationFailed)
		c.Log.Error("authAPIClient.Signup rejected by lesson API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrLessonAPIRejected(resp.StatusCode, message)
	}

	return nil
}
