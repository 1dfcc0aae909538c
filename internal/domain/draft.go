package domain

import "time"

// Step is a state of the booking flow
type Step string

const (
	StepSelectingClass  Step = "selecting_class"
	StepEnteringDetails Step = "entering_details"
	StepAwaitingPayment Step = "awaiting_payment"
	StepConfirmed       Step = "confirmed"
)

// IsValid returns true for a known step
func (s Step) IsValid() bool {
	switch s {
	case StepSelectingClass, StepEnteringDetails, StepAwaitingPayment, StepConfirmed:
		return true
	}
	return false
}

// Previous returns the step "back" leads to. Only the details and payment steps can go back.
func (s Step) Previous() (Step, bool) {
	switch s {
	case StepEnteringDetails:
		return StepSelectingClass, true
	case StepAwaitingPayment:
		return StepEnteringDetails, true
	}
	return s, false
}

// Contact is the customer contact block of a draft
type Contact struct {
	Name  string
	Email string
	Phone string
}

// BookingDraft is the in-progress booking of one visitor.
// It lives only until a payment session is created for it.
type BookingDraft struct {
	ID      string
	Step    Step
	ClassID string
	Date    string // YYYY-MM-DD, business timezone
	Time    string // slot label, set only together with Date
	Contact Contact
	Version int // bumped on every change

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasClass returns true if a class has been selected
func (d *BookingDraft) HasClass() bool {
	return d.ClassID != ""
}

// HasSchedule returns true if both date and time are set
func (d *BookingDraft) HasSchedule() bool {
	return d.Date != "" && d.Time != ""
}

// SameDetails returns true if the draft already holds exactly these details
func (d *BookingDraft) SameDetails(date, slot string, contact Contact) bool {
	return d.Date == date && d.Time == slot && d.Contact == contact
}

// CanCheckout returns true if the draft waits for payment
func (d *BookingDraft) CanCheckout() bool {
	return d.Step == StepAwaitingPayment && d.HasClass() && d.HasSchedule()
}

// Touch bumps the version and the update timestamp
func (d *BookingDraft) Touch(now time.Time) {
	d.Version++
	d.UpdatedAt = now
}
