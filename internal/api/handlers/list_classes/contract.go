package list_classes

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog/models"
)

type ClassService interface {
	List(ctx context.Context) ([]*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
