package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/integrations/brevo"
)

// EmailNotifier рассылает письма через почтового провайдера
type EmailNotifier struct {
	sender     EmailSender
	adminEmail string
	logger     Logger
}

// NewEmailNotifier создает новый экземпляр почтового уведомителя
func NewEmailNotifier(sender EmailSender, adminEmail string, logger Logger) *EmailNotifier {
	return &EmailNotifier{
		sender:     sender,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// NotifyBookingConfirmed отправляет сводку администратору и клиенту.
// Ошибка одного письма не отменяет второе.
func (n *EmailNotifier) NotifyBookingConfirmed(ctx context.Context, c *domain.PaymentConfirmation) error {
	html, err := renderSummary(c, n.adminEmail)
	if err != nil {
		return err
	}

	var errs []error

	// 1. Администратор
	if n.adminEmail != "" {
		if err := n.send(ctx, "admin", &brevo.Email{
			To:      []brevo.Contact{{Email: n.adminEmail}},
			Subject: "New Booking Confirmation - " + c.ClassName,
			HTML:    html,
		}); err != nil {
			errs = append(errs, err)
		}
	} else {
		n.logger.Warn("NotifyBookingConfirmed: admin email is not configured, session=%s", c.SessionID)
	}

	// 2. Клиент
	if c.CustomerEmail != "" {
		if err := n.send(ctx, "customer", &brevo.Email{
			To:      []brevo.Contact{{Name: c.CustomerName, Email: c.CustomerEmail}},
			Subject: "Booking Confirmation - " + c.ClassName,
			HTML:    html,
		}); err != nil {
			errs = append(errs, err)
		}
	} else {
		n.logger.Warn("NotifyBookingConfirmed: customer email is empty, session=%s", c.SessionID)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: session=%s: %v", ErrSendFailed, c.SessionID, errors.Join(errs...))
	}

	n.logger.Info("NotifyBookingConfirmed: emails sent, session=%s", c.SessionID)
	return nil
}

// SendContactMessage пересылает сообщение с формы обратной связи администратору
func (n *EmailNotifier) SendContactMessage(ctx context.Context, m *ContactMessage) error {
	html, err := renderContact(m)
	if err != nil {
		return err
	}

	err = n.send(ctx, "contact", &brevo.Email{
		To:      []brevo.Contact{{Email: n.adminEmail}},
		Subject: "New Contact Form Submission from " + m.Name,
		HTML:    html,
		ReplyTo: &brevo.Contact{Name: m.Name, Email: m.Email},
	})
	if err != nil {
		return fmt.Errorf("%w: contact from %s: %v", ErrSendFailed, m.Email, err)
	}
	return nil
}

func (n *EmailNotifier) send(ctx context.Context, kind string, email *brevo.Email) error {
	resp, err := n.sender.Send(ctx, email)
	if err != nil {
		n.logger.Error("Notifications: failed to send %s email to %s: %v", kind, email.To[0].Email, err)
		return err
	}
	n.logger.Info("Notifications: %s email sent to %s, message_id=%s", kind, email.To[0].Email, resp.MessageID)
	return nil
}
