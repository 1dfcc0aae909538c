package send_contact_message

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
	"github.com/m04kA/SMC-ClassBookingService/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSender struct {
	sent []*notifications.ContactMessage
	err  error
}

func (s *fakeSender) SendContactMessage(_ context.Context, m *notifications.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m)
	return nil
}

func TestExecute_Sends(t *testing.T) {
	sender := &fakeSender{}
	uc := NewUseCase(sender, validation.New(), nopLogger{})

	err := uc.Execute(context.Background(), &Request{Name: " Bob ", Email: "bob@example.com", Message: "Hello"})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Bob", sender.sent[0].Name)
	assert.Equal(t, "bob@example.com", sender.sent[0].Email)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   *Request
		field string
	}{
		{"short name", &Request{Name: "B", Email: "bob@example.com", Message: "hi"}, "name"},
		{"bad email", &Request{Name: "Bob", Email: "bob", Message: "hi"}, "email"},
		{"empty message", &Request{Name: "Bob", Email: "bob@example.com"}, "message"},
		{"long message", &Request{Name: "Bob", Email: "bob@example.com", Message: strings.Repeat("a", 5001)}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			uc := NewUseCase(sender, validation.New(), nopLogger{})

			err := uc.Execute(context.Background(), tt.req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Empty(t, sender.sent)
		})
	}
}

func TestExecute_SendFailure(t *testing.T) {
	uc := NewUseCase(&fakeSender{err: errors.New("brevo down")}, validation.New(), nopLogger{})

	err := uc.Execute(context.Background(), &Request{Name: "Bob", Email: "bob@example.com", Message: "hi"})
	assert.True(t, errors.Is(err, ErrSendFailed))
}
