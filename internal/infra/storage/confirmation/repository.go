package confirmation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/psqlbuilder"
)

const (
	table        = "payment_confirmations"
	defaultLimit = 100
	maxLimit     = 500
)

var columns = []string{
	"session_id",
	"class_name",
	"customer_email",
	"amount_minor",
	"status",
	"source",
	"last_error",
	"notified_at",
	"created_at",
	"updated_at",
}

// Repository журнал подтверждённых оплат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подтверждений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Claim атомарно создаёт запись о сессии.
// Возвращает true, если запись создана этим вызовом, и false, если сессия уже была в журнале.
// Работает между процессами: уникальность обеспечивает первичный ключ session_id.
func (r *Repository) Claim(ctx context.Context, rec *domain.ConfirmationRecord) (bool, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"session_id",
			"class_name",
			"customer_email",
			"amount_minor",
			"status",
			"source",
			"created_at",
			"updated_at",
		).
		Values(
			rec.SessionID,
			rec.ClassName,
			rec.CustomerEmail,
			rec.AmountMinor,
			string(rec.Status),
			rec.Source,
			rec.CreatedAt,
			rec.UpdatedAt,
		).
		Suffix("ON CONFLICT (session_id) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Claim - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Claim - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Claim - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// BeginSending переводит запись claimed -> sending.
// true получает только один вызов: повторная доставка того же события увидит false.
func (r *Repository) BeginSending(ctx context.Context, sessionID string) (bool, error) {
	query, args, err := psqlbuilder.Update(table).
		Set("status", string(domain.ConfirmationSending)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"session_id": sessionID,
			"status":     string(domain.ConfirmationClaimed),
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: BeginSending - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: BeginSending - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: BeginSending - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// MarkNotified отмечает успешную рассылку уведомлений
func (r *Repository) MarkNotified(ctx context.Context, sessionID string, at time.Time) error {
	return r.updateStatus(ctx, "MarkNotified", sessionID, psqlbuilder.Update(table).
		Set("status", string(domain.ConfirmationNotified)).
		Set("notified_at", at).
		Set("last_error", nil))
}

// MarkFailed отмечает неудачную рассылку для ручной сверки
func (r *Repository) MarkFailed(ctx context.Context, sessionID string, reason string) error {
	return r.updateStatus(ctx, "MarkFailed", sessionID, psqlbuilder.Update(table).
		Set("status", string(domain.ConfirmationNotifyFailed)).
		Set("last_error", reason))
}

func (r *Repository) updateStatus(ctx context.Context, op, sessionID string, builder squirrel.UpdateBuilder) error {
	query, args, err := builder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrConfirmationNotFound
	}

	return nil
}

// GetBySessionID получает запись по sessionId
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.ConfirmationRecord, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfirmationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - scan: %v", ErrScanRow, err)
	}

	return rec, nil
}

// List возвращает записи журнала, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.ConfirmationFilter) ([]*domain.ConfirmationRecord, error) {
	selectBuilder := psqlbuilder.Select(columns...).From(table)

	// Фильтрация по периоду
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"created_at": *filter.To})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ConfirmationRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*domain.ConfirmationRecord, error) {
	var (
		rec        domain.ConfirmationRecord
		status     string
		lastError  sql.NullString
		notifiedAt sql.NullTime
	)

	if err := s.Scan(
		&rec.SessionID,
		&rec.ClassName,
		&rec.CustomerEmail,
		&rec.AmountMinor,
		&status,
		&rec.Source,
		&lastError,
		&notifiedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.Status = domain.ConfirmationStatus(status)
	if lastError.Valid {
		rec.LastError = &lastError.String
	}
	if notifiedAt.Valid {
		rec.NotifiedAt = &notifiedAt.Time
	}
	return &rec, nil
}
