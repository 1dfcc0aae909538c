package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	confirmationRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/confirmation"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// acker записывает исход обработки каждого сообщения
type acker struct {
	mu      sync.Mutex
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (a *acker) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked = append(a.acked, tag)
	return nil
}

func (a *acker) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked = append(a.nacked, tag)
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *acker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type chanSource struct{ ch chan amqp.Delivery }

func (s *chanSource) Deliveries(context.Context) (<-chan amqp.Delivery, error) {
	return s.ch, nil
}

type fakeNotifier struct {
	got []*domain.PaymentConfirmation
	err error
}

func (n *fakeNotifier) NotifyBookingConfirmed(_ context.Context, c *domain.PaymentConfirmation) error {
	n.got = append(n.got, c)
	return n.err
}

// fakeLedger журнал со статусами, как у postgres-репозитория
type fakeLedger struct {
	status   map[string]domain.ConfirmationStatus
	gateErr  error
	notified []string
	failed   []string
}

func newFakeLedger(claimed ...string) *fakeLedger {
	l := &fakeLedger{status: make(map[string]domain.ConfirmationStatus)}
	for _, id := range claimed {
		l.status[id] = domain.ConfirmationClaimed
	}
	return l
}

func (l *fakeLedger) BeginSending(_ context.Context, id string) (bool, error) {
	if l.gateErr != nil {
		return false, l.gateErr
	}
	if l.status[id] != domain.ConfirmationClaimed {
		return false, nil
	}
	l.status[id] = domain.ConfirmationSending
	return true, nil
}

func (l *fakeLedger) GetBySessionID(_ context.Context, id string) (*domain.ConfirmationRecord, error) {
	status, ok := l.status[id]
	if !ok {
		return nil, confirmationRepo.ErrConfirmationNotFound
	}
	return &domain.ConfirmationRecord{SessionID: id, Status: status}, nil
}

func (l *fakeLedger) MarkNotified(_ context.Context, id string, _ time.Time) error {
	l.notified = append(l.notified, id)
	l.status[id] = domain.ConfirmationNotified
	return nil
}

func (l *fakeLedger) MarkFailed(_ context.Context, id, _ string) error {
	l.failed = append(l.failed, id)
	l.status[id] = domain.ConfirmationNotifyFailed
	return nil
}

func delivery(t *testing.T, ack *acker, tag uint64, key string, v any) amqp.Delivery {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, RoutingKey: key, Body: body}
}

func runAll(t *testing.T, w *Worker, deliveries ...amqp.Delivery) {
	t.Helper()
	ch := make(chan amqp.Delivery, len(deliveries))
	for _, d := range deliveries {
		ch <- d
	}
	close(ch)
	w.source = &chanSource{ch: ch}
	require.NoError(t, w.Run(context.Background()))
}

func message() *notifications.BookingConfirmedMessage {
	return &notifications.BookingConfirmedMessage{
		SessionID:     "cs_1",
		PaymentStatus: domain.PaymentStatusPaid,
		AmountMinor:   8000,
		ClassName:     "CPR",
		CustomerEmail: "jane@example.com",
	}
}

func TestWorker_SendsAndAcks(t *testing.T) {
	ack := &acker{}
	notifier := &fakeNotifier{}
	ledger := newFakeLedger("cs_1")
	w := NewWorker(nil, notifier, ledger, nopLogger{})

	runAll(t, w, delivery(t, ack, 1, notifications.RoutingKeyBookingConfirmed, message()))

	require.Len(t, notifier.got, 1)
	assert.Equal(t, 80.0, notifier.got[0].Amount)
	assert.True(t, notifier.got[0].Paid)
	assert.Equal(t, []string{"cs_1"}, ledger.notified)
	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Empty(t, ack.nacked)
}

func TestWorker_FailureIsDeadLetteredNotRequeued(t *testing.T) {
	ack := &acker{}
	ledger := newFakeLedger("cs_1")
	w := NewWorker(nil, &fakeNotifier{err: errors.New("brevo down")}, ledger, nopLogger{})

	runAll(t, w, delivery(t, ack, 7, notifications.RoutingKeyBookingConfirmed, message()))

	assert.Equal(t, []string{"cs_1"}, ledger.failed)
	assert.Equal(t, []uint64{7}, ack.nacked)
	assert.Equal(t, []bool{false}, ack.requeue)
}

func TestWorker_BadPayloadAndUnknownKey(t *testing.T) {
	ack := &acker{}
	notifier := &fakeNotifier{}
	w := NewWorker(nil, notifier, newFakeLedger("cs_1"), nopLogger{})

	bad := amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, RoutingKey: notifications.RoutingKeyBookingConfirmed, Body: []byte("{")}
	unknown := delivery(t, ack, 2, "booking.cancelled", map[string]string{})

	runAll(t, w, bad, unknown)

	assert.Empty(t, notifier.got)
	assert.Equal(t, []uint64{1}, ack.nacked)
	assert.Equal(t, []uint64{2}, ack.acked)
}

func TestWorker_RedeliveryAfterSendIsNotSentAgain(t *testing.T) {
	ack := &acker{}
	notifier := &fakeNotifier{}
	ledger := newFakeLedger("cs_1")
	w := NewWorker(nil, notifier, ledger, nopLogger{})

	first := delivery(t, ack, 1, notifications.RoutingKeyBookingConfirmed, message())
	again := delivery(t, ack, 2, notifications.RoutingKeyBookingConfirmed, message())
	again.Redelivered = true

	runAll(t, w, first, again)

	assert.Len(t, notifier.got, 1)
	assert.Equal(t, []uint64{1, 2}, ack.acked)
	assert.Empty(t, ack.nacked)
}

func TestWorker_CrashMidSendIsDeadLettered(t *testing.T) {
	ack := &acker{}
	notifier := &fakeNotifier{}
	ledger := newFakeLedger()
	// прошлый воркер успел перевести запись в sending и упал до Ack
	ledger.status["cs_1"] = domain.ConfirmationSending
	w := NewWorker(nil, notifier, ledger, nopLogger{})

	d := delivery(t, ack, 3, notifications.RoutingKeyBookingConfirmed, message())
	d.Redelivered = true
	runAll(t, w, d)

	assert.Empty(t, notifier.got)
	assert.Equal(t, []uint64{3}, ack.nacked)
	assert.Equal(t, []bool{false}, ack.requeue)
	assert.Equal(t, domain.ConfirmationSending, ledger.status["cs_1"])
}

func TestWorker_UnknownSessionIsDeadLettered(t *testing.T) {
	ack := &acker{}
	notifier := &fakeNotifier{}
	w := NewWorker(nil, notifier, newFakeLedger(), nopLogger{})

	runAll(t, w, delivery(t, ack, 4, notifications.RoutingKeyBookingConfirmed, message()))

	assert.Empty(t, notifier.got)
	assert.Equal(t, []uint64{4}, ack.nacked)
	assert.Equal(t, []bool{false}, ack.requeue)
}

func TestWorker_LedgerErrorRequeuesWithoutSending(t *testing.T) {
	ack := &acker{}
	notifier := &fakeNotifier{}
	ledger := newFakeLedger("cs_1")
	ledger.gateErr = errors.New("connection refused")
	w := NewWorker(nil, notifier, ledger, nopLogger{})

	runAll(t, w, delivery(t, ack, 5, notifications.RoutingKeyBookingConfirmed, message()))

	assert.Empty(t, notifier.got)
	assert.Equal(t, []uint64{5}, ack.nacked)
	assert.Equal(t, []bool{true}, ack.requeue)
}
