package confirmation

import "github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics: *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
