package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_List(t *testing.T) {
	svc := NewService(DefaultClasses(), nopLogger{})

	classes, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 6)

	assert.Equal(t, "adult-first-aid-cpr-aed", classes[0].ID)
	assert.Equal(t, 80.0, *classes[0].Price)
	assert.True(t, classes[0].AvailableForBooking)
}

func TestService_GetBookable(t *testing.T) {
	svc := NewService(DefaultClasses(), nopLogger{})
	ctx := context.Background()

	offering, err := svc.GetBookable(ctx, "bloodborne-pathogens")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), offering.PriceMinor())

	_, err = svc.GetBookable(ctx, "workday-training")
	assert.ErrorIs(t, err, ErrClassNotBookable)

	_, err = svc.GetBookable(ctx, "ois")
	assert.ErrorIs(t, err, ErrClassNotBookable)

	_, err = svc.GetBookable(ctx, "underwater-basket-weaving")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestService_GetOfferingReturnsCopy(t *testing.T) {
	svc := NewService(DefaultClasses(), nopLogger{})

	first, err := svc.GetOffering(context.Background(), "defensive-driving")
	require.NoError(t, err)
	first.Title = "changed"

	second, err := svc.GetOffering(context.Background(), "defensive-driving")
	require.NoError(t, err)
	assert.Equal(t, "Defensive Driver Safety", second.Title)
}

func TestService_CheckPrice(t *testing.T) {
	svc := NewService(DefaultClasses(), nopLogger{})
	offering, err := svc.GetBookable(context.Background(), "adult-first-aid-cpr-aed")
	require.NoError(t, err)

	assert.NoError(t, svc.CheckPrice(offering, 80))
	assert.NoError(t, svc.CheckPrice(offering, 80.001))
	assert.ErrorIs(t, svc.CheckPrice(offering, 1), ErrPriceMismatch)
}
