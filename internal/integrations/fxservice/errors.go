package fxservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fxservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fxservice client: invalid response")

	// ErrUnsupportedBase возвращается, когда сервис не знает базовую валюту
	ErrUnsupportedBase = errors.New("fxservice client: unsupported base currency")
)
