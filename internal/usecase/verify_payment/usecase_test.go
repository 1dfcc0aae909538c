package verify_payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reconciler"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReconciler struct {
	result *reconciler.Result
	err    error
	source reconciler.Source
}

func (r *fakeReconciler) Resolve(_ context.Context, _ string, source reconciler.Source) (*reconciler.Result, error) {
	r.source = source
	return r.result, r.err
}

func TestExecute_Paid(t *testing.T) {
	rec := &fakeReconciler{result: &reconciler.Result{Confirmation: &domain.PaymentConfirmation{
		SessionID:     "cs_1",
		Paid:          true,
		PaymentStatus: domain.PaymentStatusPaid,
		Amount:        80,
		ClassName:     "CPR",
		CustomerName:  "Customer",
		CustomerPhone: "N/A",
		CustomerEmail: "jane@example.com",
		BookingDate:   "2024-06-04",
		BookingTime:   "10:00 AM",
	}}}
	uc := NewUseCase(rec, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: " cs_1 "})
	require.NoError(t, err)
	assert.Equal(t, reconciler.SourceVerify, rec.source)
	assert.Equal(t, "confirmed", resp.Step)
	assert.Equal(t, 80.0, resp.Amount)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, "N/A", resp.CustomerPhone)
}

func TestExecute_Unpaid(t *testing.T) {
	rec := &fakeReconciler{result: &reconciler.Result{Confirmation: &domain.PaymentConfirmation{
		SessionID:     "cs_1",
		PaymentStatus: "unpaid",
	}}}
	uc := NewUseCase(rec, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.NoError(t, err)
	assert.Equal(t, "awaiting_payment", resp.Step)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		err       error
		want      error
	}{
		{"empty", "", nil, ErrInvalidInput},
		{"not found", "cs_1", reconciler.ErrSessionNotFound, ErrSessionNotFound},
		{"gateway", "cs_1", reconciler.ErrGateway, ErrGateway},
		{"ledger", "cs_1", reconciler.ErrInternal, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeReconciler{err: tt.err}, nopLogger{})
			_, err := uc.Execute(context.Background(), &Request{SessionID: tt.sessionID})
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
