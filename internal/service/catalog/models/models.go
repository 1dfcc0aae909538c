package models

// ClassResponse модель класса для API
type ClassResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Price               *float64 `json:"price"`
	Duration            string   `json:"duration"`
	Description         string   `json:"description"`
	Includes            []string `json:"includes"`
	AvailableForBooking bool     `json:"availableForBooking"`
	ContactOnly         bool     `json:"contactOnly"`
	ComingSoon          bool     `json:"comingSoon"`
}
