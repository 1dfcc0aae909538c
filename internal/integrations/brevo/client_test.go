package brevo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_Send(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<msg-1@smtp-relay>"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", Contact{Name: "Training Center", Email: "bookings@example.com"}, time.Second, nopLogger{})

	resp, err := c.Send(context.Background(), &Email{
		To:      []Contact{{Email: "jane@example.com"}},
		Subject: "Booking Confirmation - CPR",
		HTML:    "<p>hi</p>",
		ReplyTo: &Contact{Email: "jane@example.com", Name: "Jane"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<msg-1@smtp-relay>", resp.MessageID)

	assert.Equal(t, "bookings@example.com", got.Sender.Email)
	assert.Equal(t, []Contact{{Email: "jane@example.com"}}, got.To)
	assert.Equal(t, "Booking Confirmation - CPR", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HTMLContent)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "Jane", got.ReplyTo.Name)
}

func TestClient_SendErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rejected", http.StatusBadRequest, `{"code":"invalid_parameter","message":"email is not valid"}`, ErrRejected},
		{"unauthorized", http.StatusUnauthorized, `{"code":"unauthorized","message":"Key not found"}`, ErrUnauthorized},
		{"server error", http.StatusBadGateway, `oops`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "k", Contact{Email: "s@example.com"}, time.Second, nopLogger{})
			_, err := c.Send(context.Background(), &Email{To: []Contact{{Email: "a@example.com"}}, Subject: "s"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("http://unused", "", Contact{}, time.Second, nopLogger{})

	_, err := c.Send(context.Background(), &Email{To: []Contact{{Email: "a@example.com"}}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
