package currency

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Исходы конвертации для метрик
const (
	OutcomeConverted   = "converted"
	OutcomeSame        = "same_currency"
	OutcomeUnknownCode = "unknown_code"
)

// Источник курсов в результате конвертации
const (
	SourceLive   = "live"
	SourceStatic = "static"
)

// Conversion результат конвертации
// RateFound == false означает, что сумма возвращена без изменений
type Conversion struct {
	Amount    decimal.Decimal
	From      string
	To        string
	Converted decimal.Decimal
	Rate      decimal.Decimal
	RateFound bool
	Source    string
}

// Converter конвертирует суммы между валютами
type Converter struct {
	live     RateSource
	fallback StaticRates
	metrics  MetricsRecorder
	logger   Logger
}

// NewConverter создает конвертер; live может быть nil, тогда используется только статическая таблица
func NewConverter(live RateSource, fallback StaticRates, metrics MetricsRecorder, logger Logger) *Converter {
	if fallback == nil {
		fallback = DefaultRates()
	}
	return &Converter{
		live:     live,
		fallback: fallback,
		metrics:  metrics,
		logger:   logger,
	}
}

// Convert пересчитывает amount из from в to через базовую валюту
// Неизвестный код не является ошибкой: сумма возвращается без изменений с предупреждением в логе
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) Conversion {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	result := Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: amount,
		Rate:      decimal.NewFromInt(1),
	}

	if from == to && from != "" {
		result.RateFound = true
		result.Source = SourceStatic
		c.observe(OutcomeSame)
		return result
	}

	rates, source := c.rates(ctx)
	fromRate, toRate, ok := pairRates(rates, from, to)
	if !ok && source == SourceLive {
		// Живая таблица может быть неполной, пару берем целиком из статической
		c.logger.Warn("Convert: live rates lack %s/%s, using static table", from, to)
		rates, source = c.fallback, SourceStatic
		fromRate, toRate, ok = pairRates(rates, from, to)
	}
	if !ok {
		c.logger.Warn("Convert: unknown currency code (from=%q, to=%q), returning amount unchanged", from, to)
		c.observe(OutcomeUnknownCode)
		return result
	}

	result.Rate = toRate.Div(fromRate)
	result.Converted = amount.Mul(toRate).Div(fromRate).Round(domain.MoneyPlaces)
	result.RateFound = true
	result.Source = source
	c.observe(OutcomeConverted)

	return result
}

func (c *Converter) rates(ctx context.Context) (map[string]decimal.Decimal, string) {
	if c.live == nil {
		return c.fallback, SourceStatic
	}

	live, err := c.live.Rates(ctx)
	if err != nil || len(live) == 0 {
		c.logger.Warn("Convert: live rates unavailable, using static table: %v", err)
		return c.fallback, SourceStatic
	}
	return live, SourceLive
}

func pairRates(rates map[string]decimal.Decimal, from, to string) (decimal.Decimal, decimal.Decimal, bool) {
	fromRate, okFrom := rates[from]
	toRate, okTo := rates[to]
	if !okFrom || !okTo || !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, decimal.Zero, false
	}
	return fromRate, toRate, true
}

func (c *Converter) observe(outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveCurrencyConversion(outcome)
	}
}
