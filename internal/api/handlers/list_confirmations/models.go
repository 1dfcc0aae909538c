package list_confirmations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// ConfirmationResponse строка журнала подтверждений
type ConfirmationResponse struct {
	SessionID     string  `json:"sessionId"`
	ClassName     string  `json:"className"`
	CustomerEmail string  `json:"customerEmail"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Source        string  `json:"source"`
	LastError     *string `json:"lastError,omitempty"`
	NotifiedAt    *string `json:"notifiedAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToFilter разбирает query параметры: from, to (YYYY-MM-DD или RFC3339), status, limit
func ToFilter(fromStr, toStr, statusStr, limitStr string) (domain.ConfirmationFilter, error) {
	var filter domain.ConfirmationFilter

	if fromStr != "" {
		from, err := parseTime(fromStr)
		if err != nil {
			return filter, fmt.Errorf("from: %w", err)
		}
		filter.From = &from
	}

	if toStr != "" {
		to, err := parseTime(toStr)
		if err != nil {
			return filter, fmt.Errorf("to: %w", err)
		}
		// дата без времени включает весь день
		if len(toStr) == len(domain.DateFormat) {
			to = to.AddDate(0, 0, 1)
		}
		filter.To = &to
	}

	if statusStr != "" {
		status := domain.ConfirmationStatus(statusStr)
		if !status.IsValid() {
			return filter, fmt.Errorf("status: unknown value %q", statusStr)
		}
		filter.Status = &status
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return filter, fmt.Errorf("limit: must be a positive integer")
		}
		filter.Limit = limit
	}

	return filter, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, s)
}

// FromDomain конвертирует записи журнала в HTTP response
func FromDomain(records []*domain.ConfirmationRecord) []ConfirmationResponse {
	result := make([]ConfirmationResponse, 0, len(records))
	for _, rec := range records {
		item := ConfirmationResponse{
			SessionID:     rec.SessionID,
			ClassName:     rec.ClassName,
			CustomerEmail: rec.CustomerEmail,
			Amount:        domain.FromMinorUnits(rec.AmountMinor),
			Status:        string(rec.Status),
			Source:        rec.Source,
			LastError:     rec.LastError,
			CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     rec.UpdatedAt.Format(time.RFC3339),
		}
		if rec.NotifiedAt != nil {
			s := rec.NotifiedAt.Format(time.RFC3339)
			item.NotifiedAt = &s
		}
		result = append(result, item)
	}
	return result
}
