package draft

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// record представление черновика в Redis
type record struct {
	ID        string    `json:"id"`
	Step      string    `json:"step"`
	ClassID   string    `json:"classId,omitempty"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromDomain(d *domain.BookingDraft) record {
	return record{
		ID:        d.ID,
		Step:      string(d.Step),
		ClassID:   d.ClassID,
		Date:      d.Date,
		Time:      d.Time,
		Name:      d.Contact.Name,
		Email:     d.Contact.Email,
		Phone:     d.Contact.Phone,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r record) toDomain() *domain.BookingDraft {
	return &domain.BookingDraft{
		ID:      r.ID,
		Step:    domain.Step(r.Step),
		ClassID: r.ClassID,
		Date:    r.Date,
		Time:    r.Time,
		Contact: domain.Contact{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
