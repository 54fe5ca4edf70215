package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// ID пользователя берется из заголовка X-User-ID
type CreateBookingRequest struct {
	VenueID      int64   `json:"venueId"`
	EventDate    string  `json:"eventDate"`              // "2025-10-15"
	EventEndDate *string `json:"eventEndDate,omitempty"` // "2025-10-16"
	StartTime    string  `json:"startTime"`              // "20:00"
	EndTime      string  `json:"endTime"`                // "02:00"
	Guests       int     `json:"guests"`
	DiscountCode *string `json:"discountCode,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking   *models.BookingResponse          `json:"booking"`
	StartsAt  string                           `json:"startsAt"` // RFC3339, UTC
	EndsAt    string                           `json:"endsAt"`
	Breakdown *handlers.PriceBreakdownResponse `json:"breakdown"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:       userID,
		VenueID:      r.VenueID,
		EventDate:    r.EventDate,
		EventEndDate: r.EventEndDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Guests:       r.Guests,
		DiscountCode: r.DiscountCode,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:   models.FromDomainBooking(resp.Booking),
		StartsAt:  resp.Interval.Start.Format(time.RFC3339),
		EndsAt:    resp.Interval.End.Format(time.RFC3339),
		Breakdown: handlers.FromDomainBreakdown(resp.Breakdown),
	}
}
