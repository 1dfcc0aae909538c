package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	draftRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
)

// Service машина состояний черновика бронирования:
// selecting_class -> entering_details -> awaiting_payment.
// Переход в confirmed выполняет сверка платежей.
type Service struct {
	draftRepo    DraftRepository
	catalog      ClassCatalog
	calendar     Calendar
	validator    Validator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	draftRepo DraftRepository,
	catalog ClassCatalog,
	calendar Calendar,
	validator Validator,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:    draftRepo,
		catalog:      catalog,
		calendar:     calendar,
		validator:    validator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает пустой черновик на шаге выбора класса
func (s *Service) Create(ctx context.Context) (*models.DraftResponse, error) {
	now := s.timeProvider.Now()
	draft := &domain.BookingDraft{
		ID:        uuid.NewString(),
		Step:      domain.StepSelectingClass,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.draftRepo.Create(ctx, draft); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: draft id=%s created", draft.ID)
	return models.FromDomainDraft(draft), nil
}

// Get возвращает черновик по ID
func (s *Service) Get(ctx context.Context, draftID string) (*models.DraftResponse, error) {
	draft, err := s.load(ctx, "Get", draftID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(draft), nil
}

// SelectClass переводит черновик selecting_class -> entering_details.
// Класс должен существовать и продаваться онлайн.
func (s *Service) SelectClass(ctx context.Context, req *models.SelectClassRequest) (*models.DraftResponse, error) {
	s.logger.Info("SelectClass: draft=%s, class=%s", req.DraftID, req.ClassID)

	draft, err := s.load(ctx, "SelectClass", req.DraftID)
	if err != nil {
		return nil, err
	}

	// 1. Проверяем шаг
	if draft.Step != domain.StepSelectingClass {
		s.logger.Warn("SelectClass: draft=%s is at step=%s", draft.ID, draft.Step)
		return nil, fmt.Errorf("%w: cannot select class at step %s", ErrInvalidTransition, draft.Step)
	}

	// 2. Guard: класс существует и доступен для оплаты
	if _, err := s.catalog.GetBookable(ctx, req.ClassID); err != nil {
		verr := domain.NewValidationError()
		switch {
		case errors.Is(err, catalog.ErrClassNotFound):
			verr.Add("classId", "unknown class")
		case errors.Is(err, catalog.ErrClassNotBookable):
			verr.Add("classId", "class is not available for online booking")
		default:
			s.logger.Error("SelectClass: catalog error for class=%s: %v", req.ClassID, err)
			return nil, fmt.Errorf("%w: SelectClass - catalog error: %v", ErrInternal, err)
		}
		s.logger.Warn("SelectClass: guard failed for draft=%s: %v", draft.ID, verr)
		return nil, verr
	}

	// 3. Переход
	expected := draft.Version
	draft.ClassID = req.ClassID
	draft.Step = domain.StepEnteringDetails
	draft.Touch(s.timeProvider.Now())

	if err := s.save(ctx, "SelectClass", draft, expected); err != nil {
		return nil, err
	}

	s.logger.Info("SelectClass: draft=%s moved to %s", draft.ID, draft.Step)
	return models.FromDomainDraft(draft), nil
}

// SubmitDetails переводит черновик entering_details -> awaiting_payment.
// Повторная отправка тех же данных на шаге awaiting_payment возвращает черновик без изменений.
func (s *Service) SubmitDetails(ctx context.Context, req *models.SubmitDetailsRequest) (*models.DraftResponse, error) {
	s.logger.Info("SubmitDetails: draft=%s, date=%s, time=%s", req.DraftID, req.Date, req.Time)

	draft, err := s.load(ctx, "SubmitDetails", req.DraftID)
	if err != nil {
		return nil, err
	}

	contact := req.Contact()

	// 1. Проверяем шаг
	switch draft.Step {
	case domain.StepEnteringDetails:
	case domain.StepAwaitingPayment:
		if draft.SameDetails(req.Date, req.Time, contact) {
			s.logger.Info("SubmitDetails: draft=%s already awaiting payment with same details", draft.ID)
			return models.FromDomainDraft(draft), nil
		}
		s.logger.Warn("SubmitDetails: draft=%s awaiting payment, details differ", draft.ID)
		return nil, fmt.Errorf("%w: go back before changing details", ErrInvalidTransition)
	default:
		s.logger.Warn("SubmitDetails: draft=%s is at step=%s", draft.ID, draft.Step)
		return nil, fmt.Errorf("%w: cannot submit details at step %s", ErrInvalidTransition, draft.Step)
	}

	// 2. Guard: поля, дата и слот
	if err := s.checkDetails(req); err != nil {
		s.logger.Warn("SubmitDetails: guard failed for draft=%s: %v", draft.ID, err)
		return nil, err
	}

	// 3. Переход
	expected := draft.Version
	draft.Date = req.Date
	draft.Time = req.Time
	draft.Contact = contact
	draft.Step = domain.StepAwaitingPayment
	draft.Touch(s.timeProvider.Now())

	if err := s.save(ctx, "SubmitDetails", draft, expected); err != nil {
		return nil, err
	}

	s.logger.Info("SubmitDetails: draft=%s moved to %s", draft.ID, draft.Step)
	return models.FromDomainDraft(draft), nil
}

// Back возвращает черновик на предыдущий шаг, введённые значения сохраняются
func (s *Service) Back(ctx context.Context, draftID string) (*models.DraftResponse, error) {
	draft, err := s.load(ctx, "Back", draftID)
	if err != nil {
		return nil, err
	}

	prev, ok := draft.Step.Previous()
	if !ok {
		s.logger.Warn("Back: draft=%s cannot go back from step=%s", draft.ID, draft.Step)
		return nil, fmt.Errorf("%w: cannot go back from step %s", ErrInvalidTransition, draft.Step)
	}

	expected := draft.Version
	draft.Step = prev
	draft.Touch(s.timeProvider.Now())

	if err := s.save(ctx, "Back", draft, expected); err != nil {
		return nil, err
	}

	s.logger.Info("Back: draft=%s moved to %s", draft.ID, draft.Step)
	return models.FromDomainDraft(draft), nil
}

// checkDetails проверяет контакты, дату и принадлежность времени слотам даты
func (s *Service) checkDetails(req *models.SubmitDetailsRequest) error {
	verr := domain.NewValidationError()
	if err := s.validator.Struct(req); err != nil {
		var fieldErr *domain.ValidationError
		if !errors.As(err, &fieldErr) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		verr = fieldErr
	}

	if req.Date == "" {
		return verr.OrNil()
	}

	availability, err := s.calendar.SlotsForDate(req.Date, s.timeProvider.Now())
	if err != nil {
		verr.Add("date", "must be a date in YYYY-MM-DD format")
		return verr
	}
	if !availability.IsOpen() {
		verr.Add("date", fmt.Sprintf("date is not available (%s)", availability.Reason))
		return verr
	}
	if req.Time != "" && !availability.HasSlot(req.Time) {
		verr.Add("time", "time is not available on the selected date")
	}

	return verr.OrNil()
}

func (s *Service) load(ctx context.Context, op, draftID string) (*domain.BookingDraft, error) {
	draft, err := s.draftRepo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("%s: draft id=%s not found", op, draftID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("%s: repository error for draft id=%s: %v", op, draftID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return draft, nil
}

func (s *Service) save(ctx context.Context, op string, draft *domain.BookingDraft, expectedVersion int) error {
	if err := s.draftRepo.Update(ctx, draft, expectedVersion); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			s.logger.Warn("%s: draft id=%s expired before save", op, draft.ID)
			return ErrDraftNotFound
		case errors.Is(err, draftRepo.ErrVersionConflict):
			s.logger.Warn("%s: draft id=%s version conflict, expected=%d", op, draft.ID, expectedVersion)
			return ErrConcurrentUpdate
		}
		s.logger.Error("%s: repository error for draft id=%s: %v", op, draft.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
