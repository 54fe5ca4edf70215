package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с другим активным бронированием (exclusion constraint)
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrInvalidInterval возвращается, когда время бронирования нельзя разрешить в интервал
	ErrInvalidInterval = errors.New("booking.repository: invalid booking interval")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrStatusChanged возвращается, когда статус бронирования изменился до обновления
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrCannotCancel возвращается, когда бронирование уже не в отменяемом статусе
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)
