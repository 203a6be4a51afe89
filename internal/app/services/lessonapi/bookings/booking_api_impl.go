package lessonapi_bookings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/app/models"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/dto/responses"
	"tutorbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bookingAPIClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewBookingAPIClient(baseUrl string, logger *zap.Logger) contracts.BookingAPIClient {
	return &bookingAPIClient{
		BaseUrl: baseUrl + constvars.ResourceBooking,
		Log:     logger,
	}
}

func (c *bookingAPIClient) FindAll(ctx context.Context, token string) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("bookingAPIClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildRequest(err, constvars.ErrClientLoadBookingsFailed)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("bookingAPIClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendRequest(err, constvars.ErrClientLoadBookingsFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrReadResponseBody(err, constvars.ErrClientLoadBookingsFailed)
		}
		message := responses.ExtractErrorMessage(bodyBytes, constvars.ErrClientLoadBookingsFailed)
		c.Log.Error("bookingAPIClient.FindAll rejected by lesson API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrLessonAPIRejected(resp.StatusCode, message)
	}

	var bookings []models.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, exceptions.ErrDecodeResponseBody(err, constvars.ErrClientLoadBookingsFailed)
	}
	return bookings, nil
}

func (c *bookingAPIClient) Create(ctx context.Context, token string, request *requests.CreateBooking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingAPIClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("tutor_id", request.TutorID),
	)

	payload, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrBuildRequest(err, constvars.ErrClientCreateBookingFailed)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewReader(payload))
	if err != nil {
		c.Log.Error("bookingAPIClient.Create error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBuildRequest(err, constvars.ErrClientCreateBookingFailed)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("bookingAPIClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendRequest(err, constvars.ErrClientCreateBookingFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return exceptions.ErrReadResponseBody(err, constvars.ErrClientCreateBookingFailed)
		}
		message := responses.ExtractErrorMessage(bodyBytes, fmt.Sprintf("Server error: %d", resp.StatusCode))
		c.Log.Error("bookingAPIClient.Create rejected by lesson API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrLessonAPIRejected(resp.StatusCode, message)
	}

	return nil
}

func (c *bookingAPIClient) Delete(ctx context.Context, token string, bookingID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingAPIClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingIDKey, bookingID),
	)

	url := fmt.Sprintf("%s/%d", c.BaseUrl, bookingID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, url, nil)
	if err != nil {
		c.Log.Error("bookingAPIClient.Delete error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBuildRequest(err, constvars.ErrClientDeleteBookingFailed)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("bookingAPIClient.Delete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendRequest(err, constvars.ErrClientDeleteBookingFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return exceptions.ErrReadResponseBody(err, constvars.ErrClientDeleteBookingFailed)
		}
		message := responses.ExtractErrorMessage(bodyBytes, constvars.ErrClientDeleteBookingFailed)
		c.Log.Error("bookingAPIClient.Delete rejected by lesson API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrLessonAPIRejected(resp.StatusCode, message)
	}

	return nil
}
