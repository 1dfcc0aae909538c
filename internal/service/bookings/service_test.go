package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	draftRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/calendar"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-ClassBookingService/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(t *testing.T) (*Service, *draftRepo.Repository) {
	t.Helper()

	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	hours := []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	cal := calendar.New(calendar.Options{
		Template: domain.NewWeeklyTemplate(map[time.Weekday][]int{
			time.Monday: hours, time.Tuesday: hours, time.Wednesday: hours,
			time.Thursday: hours, time.Friday: hours, time.Saturday: {10, 11, 12, 13, 14},
		}),
		Holidays: domain.NewHolidayCalendar([]string{"2024-07-04"}),
		Location: loc,
	})

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := draftRepo.NewRepository(client, time.Hour)

	svc := NewService(repo, catalog.NewService(catalog.DefaultClasses(), nopLogger{}), cal, validation.New(), nopLogger{})
	// понедельник 2024-06-03 08:00 по времени бизнеса
	svc.timeProvider = fixedTime{now: time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)}
	return svc, repo
}

func validDetails(draftID string) *models.SubmitDetailsRequest {
	return &models.SubmitDetailsRequest{
		DraftID: draftID,
		Date:    "2024-06-04", // вторник
		Time:    "10:00 AM",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "360-314-7506",
	}
}

func draftAtDetails(t *testing.T, svc *Service) *models.DraftResponse {
	t.Helper()
	ctx := context.Background()
	d, err := svc.Create(ctx)
	require.NoError(t, err)
	d, err = svc.SelectClass(ctx, &models.SelectClassRequest{DraftID: d.ID, ClassID: "adult-first-aid-cpr-aed"})
	require.NoError(t, err)
	return d
}

func TestService_HappyPath(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepSelectingClass), d.Step)
	assert.Equal(t, 1, d.Version)

	d, err = svc.SelectClass(ctx, &models.SelectClassRequest{DraftID: d.ID, ClassID: "adult-first-aid-cpr-aed"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepEnteringDetails), d.Step)

	d, err = svc.SubmitDetails(ctx, validDetails(d.ID))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepAwaitingPayment), d.Step)
	assert.Equal(t, "2024-06-04", d.Date)
	assert.Equal(t, "10:00 AM", d.Time)
	assert.Equal(t, 3, d.Version)
}

func TestService_SelectClassGuard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx)
	require.NoError(t, err)

	for _, classID := range []string{"workday-training", "firearm-safety", "nope"} {
		_, err := svc.SelectClass(ctx, &models.SelectClassRequest{DraftID: d.ID, ClassID: classID})

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "class %s", classID)
		assert.Contains(t, verr.Fields, "classId")
	}

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepSelectingClass), got.Step)
}

func TestService_SubmitDetails_TimeNotInSlots(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	d := draftAtDetails(t, svc)

	req := validDetails(d.ID)
	req.Time = "8:00 PM"

	_, err := svc.SubmitDetails(ctx, req)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "time")

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepEnteringDetails), got.Step)
	assert.Empty(t, got.Time)
}

func TestService_SubmitDetails_Guards(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *models.SubmitDetailsRequest)
		field  string
	}{
		{"short name", func(r *models.SubmitDetailsRequest) { r.Name = "J" }, "name"},
		{"bad email", func(r *models.SubmitDetailsRequest) { r.Email = "jane.example.com" }, "email"},
		{"short phone", func(r *models.SubmitDetailsRequest) { r.Phone = "12345" }, "phone"},
		{"sunday", func(r *models.SubmitDetailsRequest) { r.Date = "2024-06-09" }, "date"},
		{"holiday", func(r *models.SubmitDetailsRequest) { r.Date = "2024-07-04" }, "date"},
		{"past date", func(r *models.SubmitDetailsRequest) { r.Date = "2024-06-01" }, "date"},
		{"bad date", func(r *models.SubmitDetailsRequest) { r.Date = "06/04/2024" }, "date"},
		{"saturday evening", func(r *models.SubmitDetailsRequest) {
			r.Date = "2024-06-08"
			r.Time = "5:00 PM"
		}, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftAtDetails(t, svc)
			req := validDetails(d.ID)
			tt.mutate(req)

			_, err := svc.SubmitDetails(ctx, req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)

			got, err := svc.Get(ctx, d.ID)
			require.NoError(t, err)
			assert.Equal(t, string(domain.StepEnteringDetails), got.Step)
		})
	}
}

func TestService_SubmitDetails_IdempotentInAwaitingPayment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	d := draftAtDetails(t, svc)

	first, err := svc.SubmitDetails(ctx, validDetails(d.ID))
	require.NoError(t, err)

	second, err := svc.SubmitDetails(ctx, validDetails(d.ID))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	changed := validDetails(d.ID)
	changed.Time = "11:00 AM"
	_, err = svc.SubmitDetails(ctx, changed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Back(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	d := draftAtDetails(t, svc)

	d, err := svc.SubmitDetails(ctx, validDetails(d.ID))
	require.NoError(t, err)

	d, err = svc.Back(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepEnteringDetails), d.Step)
	assert.Equal(t, "10:00 AM", d.Time)
	assert.Equal(t, "Jane Doe", d.Contact.Name)

	d, err = svc.Back(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepSelectingClass), d.Step)
	assert.Equal(t, "adult-first-aid-cpr-aed", d.ClassID)

	_, err = svc.Back(ctx, d.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_InvalidTransitions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitDetails(ctx, validDetails(d.ID))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	d = draftAtDetails(t, svc)
	_, err = svc.SelectClass(ctx, &models.SelectClassRequest{DraftID: d.ID, ClassID: "defensive-driving"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_DraftNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = svc.Back(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
