package drafts

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
)

type DraftService interface {
	Create(ctx context.Context) (*models.DraftResponse, error)
	Get(ctx context.Context, draftID string) (*models.DraftResponse, error)
	SelectClass(ctx context.Context, req *models.SelectClassRequest) (*models.DraftResponse, error)
	SubmitDetails(ctx context.Context, req *models.SubmitDetailsRequest) (*models.DraftResponse, error)
	Back(ctx context.Context, draftID string) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
