package currency

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// BaseCurrency валюта, относительно которой заданы курсы
const BaseCurrency = "USD"

// StaticRates статическая таблица курсов относительно BaseCurrency
type StaticRates map[string]decimal.Decimal

// DefaultRates встроенная таблица курсов
func DefaultRates() StaticRates {
	return StaticRates{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.79"),
		"JPY": decimal.RequireFromString("149.50"),
		"CAD": decimal.RequireFromString("1.36"),
		"AUD": decimal.RequireFromString("1.52"),
		"CHF": decimal.RequireFromString("0.88"),
		"CNY": decimal.RequireFromString("7.24"),
		"INR": decimal.RequireFromString("83.12"),
		"MXN": decimal.RequireFromString("17.05"),
		"BRL": decimal.RequireFromString("4.97"),
		"RUB": decimal.RequireFromString("92.50"),
	}
}

// WithOverrides возвращает копию таблицы с курсами из конфигурации
func (s StaticRates) WithOverrides(overrides map[string]float64) StaticRates {
	result := make(StaticRates, len(s)+len(overrides))
	for code, rate := range s {
		result[code] = rate
	}
	for code, rate := range overrides {
		if rate > 0 {
			result[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
		}
	}
	return result
}

func (s StaticRates) Rates(context.Context) (map[string]decimal.Decimal, error) {
	return s, nil
}
