package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog/models"
)

// Service каталог классов. Данные статические и только читаются.
type Service struct {
	classes []domain.ClassOffering
	byID    map[string]int
	logger  Logger
}

// NewService создает каталог из списка классов
func NewService(classes []domain.ClassOffering, logger Logger) *Service {
	byID := make(map[string]int, len(classes))
	for i, c := range classes {
		byID[c.ID] = i
	}
	return &Service{
		classes: classes,
		byID:    byID,
		logger:  logger,
	}
}

// List возвращает все классы в порядке каталога
func (s *Service) List(ctx context.Context) ([]*models.ClassResponse, error) {
	result := make([]*models.ClassResponse, 0, len(s.classes))
	for i := range s.classes {
		result = append(result, toResponse(&s.classes[i]))
	}
	return result, nil
}

// Get возвращает класс по ID
func (s *Service) Get(ctx context.Context, classID string) (*models.ClassResponse, error) {
	offering, err := s.GetOffering(ctx, classID)
	if err != nil {
		return nil, err
	}
	return toResponse(offering), nil
}

// GetOffering возвращает копию доменной модели класса
func (s *Service) GetOffering(ctx context.Context, classID string) (*domain.ClassOffering, error) {
	idx, ok := s.byID[classID]
	if !ok {
		s.logger.Warn("GetOffering: class id=%s not found", classID)
		return nil, ErrClassNotFound
	}
	offering := s.classes[idx]
	return &offering, nil
}

// GetBookable возвращает класс, только если его можно оплатить онлайн
func (s *Service) GetBookable(ctx context.Context, classID string) (*domain.ClassOffering, error) {
	offering, err := s.GetOffering(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !offering.IsBookable() {
		s.logger.Warn("GetBookable: class id=%s is not bookable (contactOnly=%t, comingSoon=%t)",
			classID, offering.ContactOnly, offering.ComingSoon)
		return nil, ErrClassNotBookable
	}
	return offering, nil
}

// CheckPrice сверяет цену из запроса с каталогом
func (s *Service) CheckPrice(offering *domain.ClassOffering, price float64) error {
	if offering.PriceMinor() != domain.ToMinorUnits(price) {
		return fmt.Errorf("%w: expected %.2f, got %.2f", ErrPriceMismatch, *offering.Price, price)
	}
	return nil
}

func toResponse(c *domain.ClassOffering) *models.ClassResponse {
	return &models.ClassResponse{
		ID:                  c.ID,
		Title:               c.Title,
		Price:               c.Price,
		Duration:            c.Duration,
		Description:         c.Description,
		Includes:            append([]string(nil), c.Includes...),
		AvailableForBooking: c.IsBookable(),
		ContactOnly:         c.ContactOnly,
		ComingSoon:          c.ComingSoon,
	}
}
