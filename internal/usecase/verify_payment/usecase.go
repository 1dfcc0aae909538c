package verify_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reconciler"
)

// UseCase use case проверки оплаты со страницы возврата (pull)
type UseCase struct {
	reconciler PaymentReconciler
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reconciler PaymentReconciler, logger Logger) *UseCase {
	return &UseCase{
		reconciler: reconciler,
		logger:     logger,
	}
}

// Execute сверяет сессию и возвращает данные для отображения.
// Повторные вызовы не рассылают уведомления повторно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		uc.logger.Warn("VerifyPayment: empty session id")
		return nil, ErrInvalidInput
	}

	uc.logger.Info("VerifyPayment: session=%s", sessionID)

	result, err := uc.reconciler.Resolve(ctx, sessionID, reconciler.SourceVerify)
	if err != nil {
		switch {
		case errors.Is(err, reconciler.ErrInvalidInput):
			return nil, ErrInvalidInput
		case errors.Is(err, reconciler.ErrSessionNotFound):
			uc.logger.Warn("VerifyPayment: session=%s not found", sessionID)
			return nil, ErrSessionNotFound
		case errors.Is(err, reconciler.ErrGateway):
			uc.logger.Error("VerifyPayment: provider error for session=%s: %v", sessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrGateway, err)
		}
		uc.logger.Error("VerifyPayment: failed to resolve session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	c := result.Confirmation
	step := string(domain.StepAwaitingPayment)
	if c.Paid {
		step = string(domain.StepConfirmed)
	}

	uc.logger.Info("VerifyPayment: session=%s, status=%s, dispatched=%t", sessionID, c.PaymentStatus, result.Dispatched)

	return &Response{
		SessionID:     c.SessionID,
		ClassName:     c.ClassName,
		Email:         c.CustomerEmail,
		Amount:        c.Amount,
		PaymentStatus: c.PaymentStatus,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		BookingDate:   c.BookingDate,
		BookingTime:   c.BookingTime,
		Step:          step,
	}, nil
}
