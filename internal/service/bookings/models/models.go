package models

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Request модели

// SelectClassRequest запрос на выбор класса
type SelectClassRequest struct {
	DraftID string `json:"-"`
	ClassID string `json:"classId"`
}

// SubmitDetailsRequest запрос на ввод даты, времени и контактов
type SubmitDetailsRequest struct {
	DraftID string `json:"-"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
}

// Contact возвращает контактный блок запроса
func (r *SubmitDetailsRequest) Contact() domain.Contact {
	return domain.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// Response модели

// ContactResponse контактные данные черновика
type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DraftResponse ответ с данными черновика
type DraftResponse struct {
	ID        string          `json:"id"`
	Step      string          `json:"step"`
	ClassID   string          `json:"classId,omitempty"`
	Date      string          `json:"date,omitempty"`
	Time      string          `json:"time,omitempty"`
	Contact   ContactResponse `json:"contact"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromDomainDraft конвертирует domain модель в DTO
func FromDomainDraft(d *domain.BookingDraft) *DraftResponse {
	if d == nil {
		return nil
	}
	return &DraftResponse{
		ID:      d.ID,
		Step:    string(d.Step),
		ClassID: d.ClassID,
		Date:    d.Date,
		Time:    d.Time,
		Contact: ContactResponse{
			Name:  d.Contact.Name,
			Email: d.Contact.Email,
			Phone: d.Contact.Phone,
		},
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
