package get_class

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog/models"
)

type ClassService interface {
	Get(ctx context.Context, classID string) (*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
