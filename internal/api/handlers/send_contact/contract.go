package send_contact

import (
	"context"

	sendContactMessage "github.com/m04kA/SMC-ClassBookingService/internal/usecase/send_contact_message"
)

type SendContactMessageUseCase interface {
	Execute(ctx context.Context, req *sendContactMessage.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
