package stripe

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// leveledLogger адаптер Logger к stripe.LeveledLoggerInterface
type leveledLogger struct {
	log Logger
}

func (l leveledLogger) Debugf(format string, v ...interface{}) {}

func (l leveledLogger) Infof(format string, v ...interface{}) {
	l.log.Info("stripe: "+format, v...)
}

func (l leveledLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn("stripe: "+format, v...)
}

func (l leveledLogger) Errorf(format string, v ...interface{}) {
	l.log.Error("stripe: "+format, v...)
}
