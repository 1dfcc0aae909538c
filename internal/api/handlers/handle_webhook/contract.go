package handle_webhook

import (
	"context"

	handleWebhook "github.com/m04kA/SMC-ClassBookingService/internal/usecase/handle_webhook"
)

type HandleWebhookUseCase interface {
	Execute(ctx context.Context, req *handleWebhook.Request) (*handleWebhook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
