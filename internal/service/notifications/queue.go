package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// QueueNotifier публикует событие, письма отправляет отдельный воркер
type QueueNotifier struct {
	publisher Publisher
	logger    Logger
}

// NewQueueNotifier создает новый экземпляр уведомителя через брокер
func NewQueueNotifier(publisher Publisher, logger Logger) *QueueNotifier {
	return &QueueNotifier{
		publisher: publisher,
		logger:    logger,
	}
}

// NotifyBookingConfirmed публикует booking.confirmed
func (n *QueueNotifier) NotifyBookingConfirmed(ctx context.Context, c *domain.PaymentConfirmation) error {
	if err := n.publisher.PublishJSON(ctx, RoutingKeyBookingConfirmed, NewBookingConfirmedMessage(c)); err != nil {
		n.logger.Error("NotifyBookingConfirmed: failed to publish session=%s: %v", c.SessionID, err)
		return fmt.Errorf("%w: session=%s: %v", ErrPublishFailed, c.SessionID, err)
	}
	n.logger.Info("NotifyBookingConfirmed: published %s, session=%s", RoutingKeyBookingConfirmed, c.SessionID)
	return nil
}

// Deferred письма отправит воркер, запись журнала остаётся claimed до его ответа
func (n *QueueNotifier) Deferred() bool {
	return true
}
