package create_checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	draftRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
)

// UseCase use case для создания платёжной сессии
type UseCase struct {
	gateway      PaymentGateway
	catalog      ClassCatalog
	calendar     Calendar
	draftRepo    DraftRepository
	validator    Validator
	enabled      bool
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway PaymentGateway,
	catalog ClassCatalog,
	calendar Calendar,
	draftRepo DraftRepository,
	validator Validator,
	enabled bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		gateway:      gateway,
		catalog:      catalog,
		calendar:     calendar,
		draftRepo:    draftRepo,
		validator:    validator,
		enabled:      enabled,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает сессию по снимку бронирования из тела запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: class=%s, date=%s, time=%s", req.ClassID, req.BookingDate, req.BookingTime)

	// 1. Оплата включена
	if !uc.enabled {
		uc.logger.Warn("CreateCheckout: checkout is disabled")
		return nil, ErrCheckoutDisabled
	}

	// 2. Валидация полей
	verr, err := fieldErrors(uc.validator.Struct(req))
	if err != nil {
		uc.logger.Error("CreateCheckout: validator failed: %v", err)
		return nil, err
	}

	// 3. Класс и цена сверяются с каталогом
	offering, err := uc.bookable(ctx, "CreateCheckout", req.ClassID, verr)
	if err != nil {
		return nil, err
	}
	if offering != nil && req.Price > 0 {
		if err := uc.catalog.CheckPrice(offering, req.Price); err != nil {
			verr.Add("price", "price does not match the class")
		}
	}

	// 4. Дата и время должны быть в слотах
	if req.BookingDate != "" && req.BookingTime != "" {
		checkSlot(uc.calendar, verr, "bookingDate", "bookingTime", req.BookingDate, req.BookingTime, uc.timeProvider.Now())
	}

	if verr.HasErrors() {
		uc.logger.Warn("CreateCheckout: validation failed: %v", verr)
		return nil, verr
	}

	// 5. Создаем сессию у провайдера
	return uc.createSession(ctx, "CreateCheckout", &domain.CheckoutRequest{
		ClassID:   offering.ID,
		ClassName: offering.Title,
		Price:     *offering.Price,
		Contact:   req.Contact(),
		Date:      req.BookingDate,
		Time:      req.BookingTime,
	})
}

// ExecuteDraft создает сессию по черновику на шаге awaiting_payment.
// Черновик удаляется после успешного создания сессии.
func (uc *UseCase) ExecuteDraft(ctx context.Context, draftID string) (*Response, error) {
	uc.logger.Info("CheckoutDraft: draft=%s", draftID)

	// 1. Оплата включена
	if !uc.enabled {
		uc.logger.Warn("CheckoutDraft: checkout is disabled")
		return nil, ErrCheckoutDisabled
	}

	// 2. Загружаем черновик
	draft, err := uc.draftRepo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("CheckoutDraft: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("CheckoutDraft: failed to get draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !draft.CanCheckout() {
		uc.logger.Warn("CheckoutDraft: draft=%s is at step=%s", draft.ID, draft.Step)
		return nil, fmt.Errorf("%w: step %s", ErrInvalidTransition, draft.Step)
	}

	// 3. Класс и слот перепроверяются: черновик мог пролежать до начала слота
	verr := domain.NewValidationError()
	offering, err := uc.bookable(ctx, "CheckoutDraft", draft.ClassID, verr)
	if err != nil {
		return nil, err
	}
	checkSlot(uc.calendar, verr, "date", "time", draft.Date, draft.Time, uc.timeProvider.Now())
	if verr.HasErrors() {
		uc.logger.Warn("CheckoutDraft: draft=%s is no longer valid: %v", draft.ID, verr)
		return nil, verr
	}

	// 4. Создаем сессию. Ключ идемпотентности привязан к версии черновика.
	resp, err := uc.createSession(ctx, "CheckoutDraft", &domain.CheckoutRequest{
		ClassID:        offering.ID,
		ClassName:      offering.Title,
		Price:          *offering.Price,
		Contact:        draft.Contact,
		Date:           draft.Date,
		Time:           draft.Time,
		DraftID:        draft.ID,
		IdempotencyKey: "draft-" + draft.ID + "-v" + strconv.Itoa(draft.Version),
	})
	if err != nil {
		return nil, err
	}
	resp.DraftID = draft.ID

	// 5. Черновик больше не нужен
	if err := uc.draftRepo.Delete(ctx, draft.ID); err != nil {
		uc.logger.Warn("CheckoutDraft: failed to delete draft id=%s: %v", draft.ID, err)
	}

	return resp, nil
}

// bookable возвращает класс из каталога. Неизвестный или непродаваемый класс - ошибка поля classId.
func (uc *UseCase) bookable(ctx context.Context, op, classID string, verr *domain.ValidationError) (*domain.ClassOffering, error) {
	if classID == "" {
		return nil, nil
	}
	offering, err := uc.catalog.GetBookable(ctx, classID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrClassNotFound):
			verr.Add("classId", "unknown class")
		case errors.Is(err, catalog.ErrClassNotBookable):
			verr.Add("classId", "class is not available for online booking")
		default:
			uc.logger.Error("%s: catalog error for class=%s: %v", op, classID, err)
			return nil, fmt.Errorf("%w: catalog error: %v", ErrInternal, err)
		}
		return nil, nil
	}
	return offering, nil
}

func (uc *UseCase) createSession(ctx context.Context, op string, req *domain.CheckoutRequest) (*Response, error) {
	session, err := uc.gateway.CreateSession(ctx, req)
	if err != nil {
		uc.logger.Error("%s: failed to create payment session for class=%s: %v", op, req.ClassID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	uc.logger.Info("%s: session id=%s created for class=%s", op, session.ID, req.ClassID)
	return &Response{SessionID: session.ID, URL: session.URL}, nil
}
