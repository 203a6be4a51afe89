package lessonapi_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/dto/requests"
	"tutorbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFindAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.MethodGet, r.Method)
		assert.Equal(t, constvars.ResourceBooking, r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get(constvars.HeaderAuthorization))

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`[{"id":1,"date":"2024-06-01","startTime":"18:00","endTime":"19:00","tutor":{"id":7,"name":"Alice"}}]`))
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	bookings, err := client.FindAll(context.Background(), "opaque-token")

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, 1, bookings[0].ID)
	assert.Equal(t, "Alice", bookings[0].Tutor.Name)
}

func TestFindAll_UnauthorizedSurfacesRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	_, err := client.FindAll(context.Background(), "stale-token")

	assert.Error(t, err)
	assert.Equal(t, "Token expired", exceptions.ClientMessage(err))
	assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
	assert.True(t, exceptions.IsUnauthenticated(err))
}

func TestFindAll_BodilessFailureUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	_, err := client.FindAll(context.Background(), "opaque-token")

	assert.Error(t, err)
	assert.Equal(t, constvars.ErrClientLoadBookingsFailed, exceptions.ClientMessage(err))
}

func TestCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.MethodPost, r.Method)
		assert.Equal(t, constvars.ResourceBooking, r.URL.Path)
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(7), payload["tutorId"])
		assert.Equal(t, "2024-06-01", payload["date"])
		assert.Equal(t, "18:00", payload["startTime"])
		assert.Equal(t, "19:00", payload["endTime"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	err := client.Create(context.Background(), "opaque-token", &requests.CreateBooking{
		TutorID:   7,
		Date:      "2024-06-01",
		StartTime: "18:00",
		EndTime:   "19:00",
	})

	assert.NoError(t, err)
}

func TestCreate_BodilessFailureReportsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	err := client.Create(context.Background(), "opaque-token", &requests.CreateBooking{TutorID: 7})

	assert.Error(t, err)
	assert.Equal(t, "Server error: 502", exceptions.ClientMessage(err))
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.MethodDelete, r.Method)
		assert.Equal(t, constvars.ResourceBooking+"/42", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	assert.NoError(t, client.Delete(context.Background(), "opaque-token", 42))
}

func TestDelete_RemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Booking not found"}`))
	}))
	defer server.Close()

	client := NewBookingAPIClient(server.URL, zap.NewNop())
	err := client.Delete(context.Background(), "opaque-token", 42)

	assert.Error(t, err)
	assert.Equal(t, "Booking not found", exceptions.ClientMessage(err))
}
