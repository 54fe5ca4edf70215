package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByVenue BookingStatus = "cancelled_by_venue"
	StatusCancelled        BookingStatus = "cancelled" // imported rows without a known initiator
	StatusRejected         BookingStatus = "rejected"
)

// Booking represents a venue reservation
type Booking struct {
	ID      int64
	VenueID int64
	UserID  int64

	EventDate    time.Time
	EventEndDate *time.Time // multi-day events; nil means the booking starts and ends on EventDate (modulo overnight wrap)
	StartTime    types.TimeString
	EndTime      types.TimeString

	Guests     int
	Status     BookingStatus
	TotalPrice decimal.Decimal
	Currency   string

	DiscountCode *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval resolves the booking into absolute instants
func (b *Booking) Interval() (Interval, error) {
	return ResolveInterval(b.EventDate, b.EventEndDate, b.StartTime, b.EndTime)
}

// OccupiesSlot returns true if the booking blocks its time range for others
func (b *Booking) OccupiesSlot() bool {
	for _, s := range OccupyingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the venue owner may move the booking to next.
// Cancellation has its own path and is not a transition here.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusRejected
	case StatusConfirmed:
		return next == StatusCompleted
	}
	return false
}

// BookingsFilter фильтр для выборки бронирований площадки
type BookingsFilter struct {
	VenueID   int64           // Обязательный параметр
	StartDate *time.Time      // Бронирования, заканчивающиеся не раньше этой даты (по дате окончания)
	EndDate   *time.Time      // Бронирования, начинающиеся не позже этой даты
	Statuses  []BookingStatus // Пустой список - любые статусы
}
