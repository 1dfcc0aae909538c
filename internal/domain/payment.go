package domain

import "time"

// PaymentStatusPaid is the provider status of a settled session
const PaymentStatusPaid = "paid"

// CheckoutRequest is the frozen booking snapshot sent to the payment provider
type CheckoutRequest struct {
	ClassID   string
	ClassName string
	Price     float64
	Contact   Contact
	Date      string
	Time      string
	DraftID   string // empty for direct checkout

	// IdempotencyKey makes repeated submits of the same draft version map to one session
	IdempotencyKey string
}

// Metadata returns the snapshot as provider session metadata
func (r *CheckoutRequest) Metadata() map[string]string {
	m := map[string]string{
		MetaClassID:       r.ClassID,
		MetaClassName:     r.ClassName,
		MetaCustomerName:  r.Contact.Name,
		MetaCustomerEmail: r.Contact.Email,
		MetaCustomerPhone: r.Contact.Phone,
		MetaBookingDate:   r.Date,
		MetaBookingTime:   r.Time,
	}
	if r.DraftID != "" {
		m[MetaDraftID] = r.DraftID
	}
	return m
}

// PaymentSession is a created provider checkout session
type PaymentSession struct {
	ID  string
	URL string
}

// SessionDetails is the provider view of a checkout session.
// Customer fields are nil when the provider did not collect them.
type SessionDetails struct {
	ID            string
	PaymentStatus string
	AmountTotal   int64 // minor units
	Currency      string
	CustomerEmail *string
	CustomerName  *string
	CustomerPhone *string
	Metadata      map[string]string
}

// PaymentConfirmation is the normalized result of resolving a session
type PaymentConfirmation struct {
	SessionID     string
	Paid          bool
	PaymentStatus string
	Amount        float64
	AmountMinor   int64
	Currency      string
	ClassID       string
	ClassName     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   string
	BookingTime   string
}

// NewPaymentConfirmation applies the metadata and customer fallbacks to the provider view
func NewPaymentConfirmation(s *SessionDetails) *PaymentConfirmation {
	meta := s.Metadata
	if meta == nil {
		meta = map[string]string{}
	}

	email := deref(s.CustomerEmail)
	if email == "" {
		email = meta[MetaCustomerEmail]
	}

	return &PaymentConfirmation{
		SessionID:     s.ID,
		Paid:          s.PaymentStatus == PaymentStatusPaid,
		PaymentStatus: s.PaymentStatus,
		Amount:        FromMinorUnits(s.AmountTotal),
		AmountMinor:   s.AmountTotal,
		Currency:      s.Currency,
		ClassID:       meta[MetaClassID],
		ClassName:     meta[MetaClassName],
		CustomerName:  firstNonEmpty(meta[MetaCustomerName], deref(s.CustomerName), FallbackCustomerName),
		CustomerEmail: email,
		CustomerPhone: firstNonEmpty(meta[MetaCustomerPhone], deref(s.CustomerPhone), FallbackCustomerPhone),
		BookingDate:   meta[MetaBookingDate],
		BookingTime:   meta[MetaBookingTime],
	}
}

// ConfirmationStatus is the state of a ledger row
type ConfirmationStatus string

const (
	ConfirmationClaimed      ConfirmationStatus = "claimed"
	ConfirmationSending      ConfirmationStatus = "sending" // queue worker started sending, a crash leaves the row here
	ConfirmationNotified     ConfirmationStatus = "notified"
	ConfirmationNotifyFailed ConfirmationStatus = "notify_failed"
)

// IsValid returns true for a known ledger status
func (s ConfirmationStatus) IsValid() bool {
	switch s {
	case ConfirmationClaimed, ConfirmationSending, ConfirmationNotified, ConfirmationNotifyFailed:
		return true
	}
	return false
}

// ConfirmationRecord is a row of the confirmation ledger
type ConfirmationRecord struct {
	SessionID     string
	ClassName     string
	CustomerEmail string
	AmountMinor   int64
	Status        ConfirmationStatus
	Source        string
	LastError     *string
	NotifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConfirmationFilter filters the ledger listing
type ConfirmationFilter struct {
	From   *time.Time
	To     *time.Time
	Status *ConfirmationStatus
	Limit  int
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
