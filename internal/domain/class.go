package domain

import "math"

// ClassOffering is a training class from the static catalog
type ClassOffering struct {
	ID          string
	Title       string
	Price       *float64 // nil = price not announced, the class cannot be purchased
	Duration    string
	Description string
	Includes    []string

	AvailableForBooking bool
	ContactOnly         bool // booked through the contact form, never through checkout
	ComingSoon          bool
}

// IsBookable returns true if the class can go through the checkout flow
func (c *ClassOffering) IsBookable() bool {
	return c.AvailableForBooking && !c.ContactOnly && !c.ComingSoon && c.Price != nil
}

// PriceMinor returns the price in minor currency units (cents)
func (c *ClassOffering) PriceMinor() int64 {
	if c.Price == nil {
		return 0
	}
	return ToMinorUnits(*c.Price)
}

// ToMinorUnits converts an amount in dollars to cents
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts cents to dollars
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
