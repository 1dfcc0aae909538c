package handle_webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	handleWebhook "github.com/m04kA/SMC-ClassBookingService/internal/usecase/handle_webhook"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *handleWebhook.Request
	err error
}

func (u *fakeUseCase) Execute(_ context.Context, req *handleWebhook.Request) (*handleWebhook.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return &handleWebhook.Response{EventID: "evt_1", EventType: "checkout.session.completed", Handled: true}, nil
}

func post(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook", bytes.NewReader(body))
	req.Header.Set(SignatureHeader, "t=1,v1=abc")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHandler_PassesRawBodyAndSignature(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	// большое, но допустимое событие доходит до проверки подписи целиком
	body := bytes.Repeat([]byte("a"), 200<<10)
	rec := post(h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, body, uc.got.Payload)
	assert.Equal(t, "t=1,v1=abc", uc.got.Signature)
}

func TestHandler_OversizedPayloadIsRejected(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, bytes.Repeat([]byte("a"), MaxPayloadBytes+1))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, msgPayloadTooLarge, errorMessage(t, rec))
	assert.Nil(t, uc.got)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid signature", fmt.Errorf("%w: bad", handleWebhook.ErrInvalidSignature), http.StatusBadRequest, "Webhook signature verification failed"},
		{"invalid payload", fmt.Errorf("%w: bad json", handleWebhook.ErrInvalidPayload), http.StatusBadRequest, "Invalid webhook event"},
		{"internal", handleWebhook.ErrInternal, http.StatusInternalServerError, "Webhook handler failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := post(h, []byte(`{}`))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}
