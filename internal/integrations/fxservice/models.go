package fxservice

import "github.com/shopspring/decimal"

// RatesResponse курсы валют относительно базовой: 1 Base = Rates[code] code
type RatesResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ErrorResponse модель ошибки от сервиса курсов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
