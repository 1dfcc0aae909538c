package send_contact_message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
)

// UseCase use case отправки сообщения с формы обратной связи
type UseCase struct {
	sender    ContactSender
	validator Validator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sender ContactSender, validator Validator, logger Logger) *UseCase {
	return &UseCase{
		sender:    sender,
		validator: validator,
		logger:    logger,
	}
}

// Execute валидирует сообщение и отправляет его администратору с replyTo отправителя
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	uc.logger.Info("SendContactMessage: from=%s", req.Email)

	// 1. Валидация
	if err := uc.validator.Struct(req); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			uc.logger.Warn("SendContactMessage: validation failed: %v", verr)
			return verr
		}
		uc.logger.Error("SendContactMessage: validator failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Отправка
	if err := uc.sender.SendContactMessage(ctx, &notifications.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		uc.logger.Error("SendContactMessage: failed to send message from %s: %v", req.Email, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("SendContactMessage: message from %s sent", req.Email)
	return nil
}
