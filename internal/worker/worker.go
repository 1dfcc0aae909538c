package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	confirmationRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/confirmation"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
	"github.com/m04kA/SMC-ClassBookingService/pkg/mq"
)

// Worker читает booking.confirmed и рассылает письма.
// Брокер доставляет сообщение хотя бы раз, поэтому письма отправляются только после
// перехода записи журнала claimed -> sending. Сообщение не возвращается в очередь после
// начала отправки: часть писем могла уйти. Такие сообщения уходят в DLQ.
type Worker struct {
	source   DeliverySource
	notifier Notifier
	ledger   ConfirmationLedger
	logger   Logger
}

// NewWorker создает новый экземпляр воркера
func NewWorker(source DeliverySource, notifier Notifier, ledger ConfirmationLedger, logger Logger) *Worker {
	return &Worker{
		source:   source,
		notifier: notifier,
		ledger:   ledger,
		logger:   logger,
	}
}

// Run обрабатывает сообщения до отмены ctx или закрытия канала
func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.source.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	if d.RoutingKey != notifications.RoutingKeyBookingConfirmed {
		w.logger.Warn("Worker: skip unknown key=%s", d.RoutingKey)
		_ = d.Ack(false)
		return
	}

	msg, err := mq.Decode[notifications.BookingConfirmedMessage](d.Body)
	if err != nil {
		w.logger.Error("Worker: bad payload key=%s: %v -> dead letter", d.RoutingKey, err)
		_ = d.Nack(false, false)
		return
	}

	// 1. Гейт в журнале: отправляет только тот, кто перевёл запись claimed -> sending
	started, err := w.ledger.BeginSending(ctx, msg.SessionID)
	if err != nil {
		// ничего не отправлено, повтор безопасен
		w.logger.Error("Worker: ledger gate failed for session=%s: %v -> requeue", msg.SessionID, err)
		_ = d.Nack(false, true)
		return
	}
	if !started {
		w.skip(ctx, d, msg.SessionID)
		return
	}

	// 2. Рассылка
	if err := w.notifier.NotifyBookingConfirmed(ctx, msg.ToConfirmation()); err != nil {
		w.logger.Error("Worker: notification failed for session=%s: %v -> dead letter", msg.SessionID, err)
		if markErr := w.ledger.MarkFailed(ctx, msg.SessionID, err.Error()); markErr != nil {
			w.logger.Error("Worker: failed to record notify failure for session=%s: %v", msg.SessionID, markErr)
		}
		_ = d.Nack(false, false)
		return
	}

	// 3. Результат
	if err := w.ledger.MarkNotified(ctx, msg.SessionID, time.Now()); err != nil {
		w.logger.Error("Worker: failed to record notification for session=%s: %v", msg.SessionID, err)
	}
	w.logger.Info("Worker: session=%s notified", msg.SessionID)
	_ = d.Ack(false)
}

// skip обрабатывает сообщение, для которого гейт не пройден. Письма не отправляются.
// Уже разосланное подтверждение просто подтверждается, остальное уходит в DLQ для ручной сверки.
func (w *Worker) skip(ctx context.Context, d amqp.Delivery, sessionID string) {
	rec, err := w.ledger.GetBySessionID(ctx, sessionID)
	switch {
	case errors.Is(err, confirmationRepo.ErrConfirmationNotFound):
		w.logger.Error("Worker: session=%s is not in the ledger -> dead letter", sessionID)
		_ = d.Nack(false, false)

	case err != nil:
		w.logger.Error("Worker: failed to load session=%s: %v -> dead letter", sessionID, err)
		_ = d.Nack(false, false)

	case rec.Status == domain.ConfirmationNotified:
		w.logger.Info("Worker: session=%s already notified, redelivered=%t", sessionID, d.Redelivered)
		_ = d.Ack(false)

	default:
		// sending после падения воркера: письма могли уйти
		w.logger.Warn("Worker: session=%s is %s, redelivered=%t, possibly sent -> dead letter",
			sessionID, rec.Status, d.Redelivered)
		_ = d.Nack(false, false)
	}
}
