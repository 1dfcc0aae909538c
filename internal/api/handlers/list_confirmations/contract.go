package list_confirmations

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

type ConfirmationLedger interface {
	List(ctx context.Context, filter domain.ConfirmationFilter) ([]*domain.ConfirmationRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
