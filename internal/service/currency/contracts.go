package currency

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource источник курсов: сколько единиц валюты стоит одна единица базовой
type RateSource interface {
	Rates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// MetricsRecorder метрики конвертации
type MetricsRecorder interface {
	ObserveCurrencyConversion(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
