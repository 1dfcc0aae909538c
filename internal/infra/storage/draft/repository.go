package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

const keyPrefix = "booking:draft:"

// Repository хранилище черновиков в Redis. Каждый черновик живёт ttl с момента последнего изменения.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Create сохраняет новый черновик
func (r *Repository) Create(ctx context.Context, d *domain.BookingDraft) error {
	data, err := json.Marshal(fromDomain(d))
	if err != nil {
		return fmt.Errorf("%w: Create - marshal: %v", ErrEncode, err)
	}

	ok, err := r.client.SetNX(ctx, key(d.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: Create - setnx: %v", ErrExecCommand, err)
	}
	if !ok {
		return ErrDraftExists
	}
	return nil
}

// Get получает черновик по ID
func (r *Repository) Get(ctx context.Context, id string) (*domain.BookingDraft, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrExecCommand, err)
	}
	return decode(data)
}

// Update перезаписывает черновик, если в хранилище лежит версия expectedVersion.
// Проверка и запись выполняются под WATCH, параллельная запись даёт ErrVersionConflict.
func (r *Repository) Update(ctx context.Context, d *domain.BookingDraft, expectedVersion int) error {
	data, err := json.Marshal(fromDomain(d))
	if err != nil {
		return fmt.Errorf("%w: Update - marshal: %v", ErrEncode, err)
	}

	k := key(d.ID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrDraftNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Update - get: %v", ErrExecCommand, err)
		}

		stored, err := decode(current)
		if err != nil {
			return err
		}
		if stored.Version != expectedVersion {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, r.ttl)
			return nil
		})
		return err
	}, k)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return ErrVersionConflict
	case errors.Is(err, ErrDraftNotFound), errors.Is(err, ErrVersionConflict),
		errors.Is(err, ErrExecCommand), errors.Is(err, ErrDecode):
		return err
	default:
		return fmt.Errorf("%w: Update - exec: %v", ErrExecCommand, err)
	}
}

// Delete удаляет черновик. Отсутствие черновика не считается ошибкой.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrExecCommand, err)
	}
	return nil
}

func decode(data []byte) (*domain.BookingDraft, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return rec.toDomain(), nil
}
