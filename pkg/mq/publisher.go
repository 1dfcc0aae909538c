package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConfirmed брокер ответил nack на публикацию
var ErrNotConfirmed = errors.New("mq: publish not confirmed by broker")

// publishFunc отправляет сообщение и возвращает подтверждение брокера (ack = true)
type publishFunc func(ctx context.Context, exchange, key string, msg amqp.Publishing) (bool, error)

// Publisher публикует JSON-сообщения в topic exchange.
// Канал работает в режиме publisher confirms: PublishJSON возвращается после ack брокера.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	publish  publishFunc
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	p := &Publisher{conn: conn, ch: ch, exchange: exchange}
	p.publish = p.publishConfirmed
	return p, nil
}

func (p *Publisher) publishConfirmed(ctx context.Context, exchange, key string, msg amqp.Publishing) (bool, error) {
	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return false, err
	}
	return confirmation.WaitContext(ctx)
}

// PublishJSON сериализует v, отправляет с ключом маршрутизации key и ждёт ack брокера
func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	acked, err := p.publish(ctx, p.exchange, key, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	if !acked {
		return fmt.Errorf("%w: key=%s", ErrNotConfirmed, key)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
