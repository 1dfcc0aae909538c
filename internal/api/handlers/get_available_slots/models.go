package get_available_slots

import getAvailableSlots "github.com/m04kA/SMC-ClassBookingService/internal/usecase/get_available_slots"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ClassID string          `json:"classId"`
	Date    string          `json:"date"`
	Slots   []AvailableSlot `json:"slots"`
	Reason  string          `json:"reason,omitempty"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{Hour: slot.Hour, Label: slot.Label}
	}

	return &AvailableSlotsResponse{
		ClassID: resp.ClassID,
		Date:    resp.Date,
		Slots:   slots,
		Reason:  string(resp.Reason),
	}
}
