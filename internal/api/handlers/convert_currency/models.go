package convert_currency

import (
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/currency"
)

// ConversionResponse HTTP response model
type ConversionResponse struct {
	Amount    string `json:"amount"`
	From      string `json:"from"`
	To        string `json:"to"`
	Converted string `json:"converted"`
	Rate      string `json:"rate,omitempty"`
	RateFound bool   `json:"rateFound"`
	Source    string `json:"source,omitempty"` // live | static
}

// FromConversion конвертирует результат конвертера в HTTP response
func FromConversion(c currency.Conversion) *ConversionResponse {
	resp := &ConversionResponse{
		Amount:    c.Amount.StringFixed(domain.MoneyPlaces),
		From:      c.From,
		To:        c.To,
		Converted: c.Converted.StringFixed(domain.MoneyPlaces),
		RateFound: c.RateFound,
		Source:    c.Source,
	}
	if c.RateFound {
		resp.Rate = c.Rate.String()
	}
	return resp
}
