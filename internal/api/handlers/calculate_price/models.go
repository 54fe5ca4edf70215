package calculate_price

import (
	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	calculatePrice "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	EventDate       string  `json:"eventDate"`              // "2025-10-15"
	EventEndDate    *string `json:"eventEndDate,omitempty"` // "2025-10-16"
	StartTime       string  `json:"startTime"`              // "20:00"
	EndTime         string  `json:"endTime"`                // "02:00"
	DiscountCode    *string `json:"discountCode,omitempty"`
	DisplayCurrency *string `json:"displayCurrency,omitempty"` // "EUR"
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VenueID   int64                            `json:"venueId"`
	Breakdown *handlers.PriceBreakdownResponse `json:"breakdown"`
	Display   *DisplayPriceModel               `json:"display,omitempty"`
}

// DisplayPriceModel итог в валюте отображения
type DisplayPriceModel struct {
	Currency   string `json:"currency"`
	Subtotal   string `json:"subtotal"`
	FinalPrice string `json:"finalPrice"`
	RateFound  bool   `json:"rateFound"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(venueID int64) *calculatePrice.Request {
	return &calculatePrice.Request{
		VenueID:         venueID,
		EventDate:       r.EventDate,
		EventEndDate:    r.EventEndDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DiscountCode:    r.DiscountCode,
		DisplayCurrency: r.DisplayCurrency,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *QuoteResponse {
	out := &QuoteResponse{
		VenueID:   resp.VenueID,
		Breakdown: handlers.FromDomainBreakdown(resp.Breakdown),
	}

	if d := resp.Display; d != nil {
		out.Display = &DisplayPriceModel{
			Currency:   d.Currency,
			Subtotal:   d.Subtotal.StringFixed(domain.MoneyPlaces),
			FinalPrice: d.FinalPrice.StringFixed(domain.MoneyPlaces),
			RateFound:  d.RateFound,
		}
	}

	return out
}
