package calculate_price

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("calculate_price: venue not found")

	// ErrFullDayWrapNotAllowed возвращается, когда время начала и окончания совпадают, а 24-часовая аренда запрещена
	ErrFullDayWrapNotAllowed = errors.New("calculate_price: equal start and end time is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
