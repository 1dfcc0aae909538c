package reconciler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	stripeClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/stripe"
	"github.com/m04kA/SMC-ClassBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProvider struct {
	sessions map[string]*domain.SessionDetails
	err      error
}

func (p *fakeProvider) GetSession(_ context.Context, id string) (*domain.SessionDetails, error) {
	if p.err != nil {
		return nil, p.err
	}
	s, ok := p.sessions[id]
	if !ok {
		return nil, stripeClient.ErrSessionNotFound
	}
	return s, nil
}

type memoryLedger struct {
	mu       sync.Mutex
	records  map[string]*domain.ConfirmationRecord
	claimErr error
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{records: make(map[string]*domain.ConfirmationRecord)}
}

func (l *memoryLedger) Claim(_ context.Context, rec *domain.ConfirmationRecord) (bool, error) {
	if l.claimErr != nil {
		return false, l.claimErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.records[rec.SessionID]; ok {
		return false, nil
	}
	cp := *rec
	l.records[rec.SessionID] = &cp
	return true, nil
}

func (l *memoryLedger) MarkNotified(_ context.Context, id string, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[id].Status = domain.ConfirmationNotified
	l.records[id].NotifiedAt = &at
	return nil
}

func (l *memoryLedger) MarkFailed(_ context.Context, id, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[id].Status = domain.ConfirmationNotifyFailed
	l.records[id].LastError = &reason
	return nil
}

func (l *memoryLedger) status(id string) domain.ConfirmationStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[id].Status
}

type countingNotifier struct {
	calls atomic.Int32
	err   error
}

func (n *countingNotifier) NotifyBookingConfirmed(context.Context, *domain.PaymentConfirmation) error {
	n.calls.Add(1)
	// окно гонки между Claim и отправкой
	time.Sleep(5 * time.Millisecond)
	return n.err
}

func paidSession(id string) *domain.SessionDetails {
	return &domain.SessionDetails{
		ID:            id,
		PaymentStatus: domain.PaymentStatusPaid,
		AmountTotal:   8000,
		Currency:      "usd",
		CustomerEmail: ptr.Ptr("jane@example.com"),
		Metadata: map[string]string{
			domain.MetaClassName:    "Adult First Aid, CPR AED and Infant/Child CPR AED",
			domain.MetaCustomerName: "Jane Doe",
			domain.MetaBookingDate:  "2024-06-04",
			domain.MetaBookingTime:  "10:00 AM",
		},
	}
}

func newTestReconciler(provider PaymentProvider, ledger ConfirmationLedger, notifier Notifier) *Reconciler {
	return NewReconciler(provider, ledger, notifier, nil, nopLogger{})
}

func TestResolve_ConcurrentSignalsDispatchOnce(t *testing.T) {
	provider := &fakeProvider{sessions: map[string]*domain.SessionDetails{"cs_1": paidSession("cs_1")}}
	ledger := newMemoryLedger()
	notifier := &countingNotifier{}
	r := newTestReconciler(provider, ledger, notifier)

	const n = 20
	var (
		wg         sync.WaitGroup
		dispatched atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		source := SourceVerify
		if i%2 == 0 {
			source = SourceWebhook
		}
		go func() {
			defer wg.Done()
			res, err := r.Resolve(context.Background(), "cs_1", source)
			assert.NoError(t, err)
			if res != nil && res.Dispatched {
				dispatched.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), notifier.calls.Load())
	assert.Equal(t, int32(1), dispatched.Load())
	assert.Equal(t, domain.ConfirmationNotified, ledger.status("cs_1"))
}

func TestResolve_RepeatedCallsReturnSamePayload(t *testing.T) {
	provider := &fakeProvider{sessions: map[string]*domain.SessionDetails{"cs_1": paidSession("cs_1")}}
	notifier := &countingNotifier{}
	r := newTestReconciler(provider, newMemoryLedger(), notifier)
	ctx := context.Background()

	first, err := r.Resolve(ctx, "cs_1", SourceWebhook)
	require.NoError(t, err)
	second, err := r.Resolve(ctx, "cs_1", SourceVerify)
	require.NoError(t, err)

	assert.True(t, first.Dispatched)
	assert.False(t, second.Dispatched)
	assert.Equal(t, first.Confirmation, second.Confirmation)
	assert.Equal(t, 80.0, second.Confirmation.Amount)
	assert.Equal(t, int32(1), notifier.calls.Load())
}

func TestResolve_UnpaidDoesNotClaim(t *testing.T) {
	session := paidSession("cs_2")
	session.PaymentStatus = "unpaid"
	provider := &fakeProvider{sessions: map[string]*domain.SessionDetails{"cs_2": session}}
	ledger := newMemoryLedger()
	notifier := &countingNotifier{}
	r := newTestReconciler(provider, ledger, notifier)

	res, err := r.Resolve(context.Background(), "cs_2", SourceVerify)
	require.NoError(t, err)
	assert.False(t, res.Confirmation.Paid)
	assert.False(t, res.Dispatched)
	assert.Empty(t, ledger.records)
	assert.Zero(t, notifier.calls.Load())
}

func TestResolve_Errors(t *testing.T) {
	ctx := context.Background()

	r := newTestReconciler(&fakeProvider{}, newMemoryLedger(), &countingNotifier{})
	_, err := r.Resolve(ctx, "  ", SourceVerify)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = r.Resolve(ctx, "cs_missing", SourceVerify)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	r = newTestReconciler(&fakeProvider{err: stripeClient.ErrProvider}, newMemoryLedger(), &countingNotifier{})
	_, err = r.Resolve(ctx, "cs_1", SourceWebhook)
	assert.ErrorIs(t, err, ErrGateway)

	ledger := newMemoryLedger()
	ledger.claimErr = errors.New("connection refused")
	notifier := &countingNotifier{}
	provider := &fakeProvider{sessions: map[string]*domain.SessionDetails{"cs_1": paidSession("cs_1")}}
	r = newTestReconciler(provider, ledger, notifier)
	_, err = r.Resolve(ctx, "cs_1", SourceWebhook)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, notifier.calls.Load())
}

func TestResolve_NotificationFailureIsRecordedNotRetried(t *testing.T) {
	provider := &fakeProvider{sessions: map[string]*domain.SessionDetails{"cs_1": paidSession("cs_1")}}
	ledger := newMemoryLedger()
	notifier := &countingNotifier{err: errors.New("brevo down")}
	r := newTestReconciler(provider, ledger, notifier)
	ctx := context.Background()

	res, err := r.Resolve(ctx, "cs_1", SourceWebhook)
	require.NoError(t, err)
	assert.True(t, res.Dispatched)
	assert.Equal(t, domain.ConfirmationNotifyFailed, ledger.status("cs_1"))

	_, err = r.Resolve(ctx, "cs_1", SourceVerify)
	require.NoError(t, err)
	assert.Equal(t, int32(1), notifier.calls.Load())
}

// queueingNotifier ставит рассылку в очередь, письма шлёт воркер
type queueingNotifier struct {
	countingNotifier
}

func (*queueingNotifier) Deferred() bool { return true }

func TestResolve_QueuedNotificationLeavesRowClaimed(t *testing.T) {
	provider := &fakeProvider{sessions: map[string]*domain.SessionDetails{"cs_1": paidSession("cs_1")}}
	ledger := newMemoryLedger()
	notifier := &queueingNotifier{}
	r := newTestReconciler(provider, ledger, notifier)
	ctx := context.Background()

	res, err := r.Resolve(ctx, "cs_1", SourceWebhook)
	require.NoError(t, err)
	assert.True(t, res.Dispatched)
	assert.Equal(t, int32(1), notifier.calls.Load())
	assert.Equal(t, domain.ConfirmationClaimed, ledger.status("cs_1"))

	res, err = r.Resolve(ctx, "cs_1", SourceVerify)
	require.NoError(t, err)
	assert.False(t, res.Dispatched)
	assert.Equal(t, int32(1), notifier.calls.Load())
}
