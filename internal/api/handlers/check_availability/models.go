package check_availability

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-VenueBooking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VenueID   int64          `json:"venueId"`
	Available bool           `json:"available"`
	Reason    string         `json:"reason"`
	StartsAt  *string        `json:"startsAt,omitempty"` // RFC3339, UTC
	EndsAt    *string        `json:"endsAt,omitempty"`
	Conflict  *ConflictModel `json:"conflict,omitempty"`
}

// ConflictModel модель найденного пересечения
type ConflictModel struct {
	Type      string  `json:"type"` // booking | blackout
	ID        int64   `json:"id"`
	StartsAt  string  `json:"startsAt"`
	EndsAt    string  `json:"endsAt"`
	Reason    *string `json:"reason,omitempty"` // причина блокировки площадки
	IsFullDay bool    `json:"isFullDay,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Значения не разбираются здесь: некорректный ввод отражается в reason ответа
func ToUseCaseRequest(venueID int64, query url.Values) *checkAvailability.Request {
	req := &checkAvailability.Request{
		VenueID:   venueID,
		EventDate: query.Get("date"),
		StartTime: query.Get("startTime"),
		EndTime:   query.Get("endTime"),
	}
	if endDate := query.Get("endDate"); endDate != "" {
		req.EventEndDate = &endDate
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		VenueID:   resp.VenueID,
		Available: resp.Available,
		Reason:    string(resp.Reason),
	}

	if resp.Interval != nil {
		startsAt := resp.Interval.Start.Format(time.RFC3339)
		endsAt := resp.Interval.End.Format(time.RFC3339)
		out.StartsAt = &startsAt
		out.EndsAt = &endsAt
	}

	if c := resp.Conflict; c != nil {
		model := &ConflictModel{
			Type:     string(c.Type),
			StartsAt: c.Interval.Start.Format(time.RFC3339),
			EndsAt:   c.Interval.End.Format(time.RFC3339),
		}
		switch c.Type {
		case domain.ConflictBooking:
			if c.Booking != nil {
				model.ID = c.Booking.ID
			}
		case domain.ConflictBlackout:
			if c.Blackout != nil {
				model.ID = c.Blackout.ID
				model.Reason = c.Blackout.Reason
				model.IsFullDay = c.Blackout.IsFullDay
			}
		}
		out.Conflict = model
	}

	return out
}
