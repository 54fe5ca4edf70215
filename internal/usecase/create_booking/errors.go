package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrInvalidDate возвращается, когда дата события в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid event date")

	// ErrCapacityExceeded возвращается, когда гостей больше, чем вмещает площадка
	ErrCapacityExceeded = errors.New("create_booking: guests exceed venue capacity")

	// ErrFullDayWrapNotAllowed возвращается, когда время начала и окончания совпадают, а 24-часовая аренда запрещена
	ErrFullDayWrapNotAllowed = errors.New("create_booking: equal start and end time is not allowed")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с бронированием или блокировкой
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
