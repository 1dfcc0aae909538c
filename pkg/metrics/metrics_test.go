package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_PaymentCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "booking")

	m.ObservePaymentResolution("webhook", "paid")
	m.ObservePaymentResolution("webhook", "paid")
	m.ObserveNotification("sent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PaymentResolutions.WithLabelValues("booking", "webhook", "paid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsDispatched.WithLabelValues("booking", "sent")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObservePaymentResolution("verify", "unpaid")
		m.ObserveNotification("failed")
	})
	assert.Empty(t, m.ServiceName())
}
