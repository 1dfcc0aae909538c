package domain

// Default configuration values
const (
	DefaultTimezone                = "America/Los_Angeles"
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 0 // 0 = off
	DefaultCurrency                = "usd"
)

// Business validation constants
const (
	MinNameLength     = 2
	MaxNameLength     = 100
	MinPhoneDigits    = 7
	MaxContactMessage = 5000
)

// Fallbacks used when the payment provider has no value
const (
	FallbackCustomerName  = "Customer"
	FallbackCustomerPhone = "N/A"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Payment session metadata keys
const (
	MetaClassID       = "classId"
	MetaClassName     = "className"
	MetaCustomerName  = "customerName"
	MetaCustomerEmail = "customerEmail"
	MetaCustomerPhone = "customerPhone"
	MetaBookingDate   = "bookingDate"
	MetaBookingTime   = "bookingTime"
	MetaDraftID       = "draftId"
)
