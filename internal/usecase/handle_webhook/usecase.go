package handle_webhook

import (
	"context"
	"errors"
	"fmt"

	stripeClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/stripe"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reconciler"
)

// UseCase use case обработки вебхука провайдера (push)
type UseCase struct {
	parser     WebhookParser
	reconciler PaymentReconciler
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(parser WebhookParser, reconciler PaymentReconciler, logger Logger) *UseCase {
	return &UseCase{
		parser:     parser,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Execute проверяет подпись и сверяет сессию. Содержимому события не доверяем,
// статус оплаты всегда берётся у провайдера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Подпись
	event, err := uc.parser.ParseWebhook(req.Payload, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, stripeClient.ErrInvalidSignature):
			uc.logger.Warn("HandleWebhook: signature rejected: %v", err)
			return nil, ErrInvalidSignature
		case errors.Is(err, stripeClient.ErrInvalidPayload):
			uc.logger.Warn("HandleWebhook: invalid payload: %v", err)
			return nil, ErrInvalidPayload
		case errors.Is(err, stripeClient.ErrNotConfigured):
			uc.logger.Error("HandleWebhook: webhook secret is not configured")
			return nil, ErrNotConfigured
		}
		uc.logger.Error("HandleWebhook: failed to parse event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{EventID: event.ID, EventType: event.Type}

	// 2. Прочие события подтверждаем без обработки
	if !event.CompletesPayment() || event.SessionID == "" {
		uc.logger.Info("HandleWebhook: event id=%s type=%s ignored", event.ID, event.Type)
		return resp, nil
	}

	// 3. Сверка
	result, err := uc.reconciler.Resolve(ctx, event.SessionID, reconciler.SourceWebhook)
	if err != nil {
		if errors.Is(err, reconciler.ErrSessionNotFound) {
			uc.logger.Warn("HandleWebhook: event id=%s refers to unknown session=%s", event.ID, event.SessionID)
			resp.Handled = true
			return resp, nil
		}
		uc.logger.Error("HandleWebhook: failed to resolve session=%s from event id=%s: %v", event.SessionID, event.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp.Handled = true
	resp.Dispatched = result.Dispatched
	uc.logger.Info("HandleWebhook: event id=%s session=%s handled, dispatched=%t", event.ID, event.SessionID, result.Dispatched)
	return resp, nil
}
