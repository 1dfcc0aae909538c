package reconciler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	stripeClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/stripe"
)

// Reconciler сводит webhook (push) и verify-payment (pull) к одному подтверждению на sessionId.
// Уведомления отправляет только вызов, выигравший Claim в журнале.
type Reconciler struct {
	provider     PaymentProvider
	ledger       ConfirmationLedger
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewReconciler создает новый экземпляр сверки платежей. metrics может быть nil.
func NewReconciler(
	provider PaymentProvider,
	ledger ConfirmationLedger,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Reconciler {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Reconciler{
		provider:     provider,
		ledger:       ledger,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Resolve получает статус сессии у провайдера и, если оплата прошла впервые, рассылает уведомления
func (r *Reconciler) Resolve(ctx context.Context, sessionID string, source Source) (*Result, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	r.logger.Info("Resolve: session=%s, source=%s", sessionID, source)

	// 1. Актуальный статус у провайдера
	details, err := r.provider.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stripeClient.ErrSessionNotFound) {
			r.logger.Warn("Resolve: session=%s not found at provider", sessionID)
			r.metrics.ObservePaymentResolution(string(source), OutcomeNotFound)
			return nil, ErrSessionNotFound
		}
		r.logger.Error("Resolve: provider lookup failed for session=%s: %v", sessionID, err)
		r.metrics.ObservePaymentResolution(string(source), OutcomeError)
		return nil, fmt.Errorf("%w: session=%s: %v", ErrGateway, sessionID, err)
	}

	confirmation := domain.NewPaymentConfirmation(details)
	result := &Result{Confirmation: confirmation}

	// 2. Не оплачено - ничего не делаем
	if !confirmation.Paid {
		r.logger.Info("Resolve: session=%s is not paid yet, status=%s", sessionID, confirmation.PaymentStatus)
		r.metrics.ObservePaymentResolution(string(source), OutcomeUnpaid)
		return result, nil
	}

	// 3. Атомарно занимаем sessionId в журнале
	now := r.timeProvider.Now()
	claimed, err := r.ledger.Claim(ctx, &domain.ConfirmationRecord{
		SessionID:     sessionID,
		ClassName:     confirmation.ClassName,
		CustomerEmail: confirmation.CustomerEmail,
		AmountMinor:   confirmation.AmountMinor,
		Status:        domain.ConfirmationClaimed,
		Source:        string(source),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		r.logger.Error("Resolve: ledger claim failed for session=%s: %v", sessionID, err)
		r.metrics.ObservePaymentResolution(string(source), OutcomeError)
		return nil, fmt.Errorf("%w: claim session=%s: %v", ErrInternal, sessionID, err)
	}
	if !claimed {
		r.logger.Info("Resolve: session=%s already confirmed, skipping notifications", sessionID)
		r.metrics.ObservePaymentResolution(string(source), OutcomeDuplicate)
		return result, nil
	}

	r.metrics.ObservePaymentResolution(string(source), OutcomeConfirmed)
	result.Dispatched = true

	// 4. Рассылка. Отмена входящего запроса не должна обрывать уже занятую отправку.
	dispatchCtx := context.WithoutCancel(ctx)
	if err := r.notifier.NotifyBookingConfirmed(dispatchCtx, confirmation); err != nil {
		r.logger.Error("Resolve: notification failed for session=%s: %v", sessionID, err)
		r.metrics.ObserveNotification(NotificationFailed)
		if markErr := r.ledger.MarkFailed(dispatchCtx, sessionID, err.Error()); markErr != nil {
			r.logger.Error("Resolve: failed to record notify failure for session=%s: %v", sessionID, markErr)
		}
		return result, nil
	}

	if d, ok := r.notifier.(DeferredNotifier); ok && d.Deferred() {
		r.metrics.ObserveNotification(NotificationQueued)
		r.logger.Info("Resolve: session=%s confirmed via %s, notifications queued", sessionID, source)
		return result, nil
	}

	r.metrics.ObserveNotification(NotificationSent)
	if err := r.ledger.MarkNotified(dispatchCtx, sessionID, r.timeProvider.Now()); err != nil {
		r.logger.Error("Resolve: failed to record notification for session=%s: %v", sessionID, err)
	}

	r.logger.Info("Resolve: session=%s confirmed via %s, amount=%.2f, class=%s",
		sessionID, source, confirmation.Amount, confirmation.ClassName)
	return result, nil
}
