package domain

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxDiscountCodeLength       = 64
	MaxGuests                   = 100000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Rounding of monetary and duration outputs
const (
	MoneyPlaces = 2
	HoursPlaces = 4
)

// DefaultCurrency is used when a venue has no currency configured
const DefaultCurrency = "USD"

// OccupyingStatuses статусы бронирований, занимающих время площадки
// Только они участвуют в проверке пересечений
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы бронирований, не занимающих время площадки
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelledByUser,
	StatusCancelledByVenue,
	StatusCancelled,
	StatusRejected,
}
