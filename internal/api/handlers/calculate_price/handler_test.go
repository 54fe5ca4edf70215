package calculate_price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	calculatePrice "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_price"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type fakeUseCase struct {
	got  *calculatePrice.Request
	resp *calculatePrice.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *calculatePrice.Request) (*calculatePrice.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, venue, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/venues/{venueId}/quote", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/venues/"+venue+"/quote", strings.NewReader(body)))
	return rec
}

func TestHandler_Quote(t *testing.T) {
	uc := &fakeUseCase{resp: &calculatePrice.Response{
		VenueID: 3,
		Breakdown: &domain.PriceBreakdown{
			Hours:            decimal.NewFromInt(4),
			BasePricePerHour: decimal.NewFromInt(50),
			AdjustedPerHour:  decimal.NewFromInt(50),
			BaseTotal:        decimal.NewFromInt(200),
			Subtotal:         decimal.NewFromInt(200),
			FinalPrice:       decimal.NewFromInt(200),
			DiscountMessage:  "Invalid discount code",
			Currency:         "USD",
		},
		Display: &calculatePrice.DisplayPrice{
			Currency:   "EUR",
			Subtotal:   decimal.RequireFromString("184"),
			FinalPrice: decimal.RequireFromString("184"),
			RateFound:  true,
		},
	}}

	rec := serve(uc, "3", `{"eventDate":"2024-06-12","startTime":"10:00","endTime":"14:00","discountCode":"NOPE","displayCurrency":"EUR"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(3), uc.got.VenueID)
	assert.Equal(t, "NOPE", *uc.got.DiscountCode)
	assert.Equal(t, "EUR", *uc.got.DisplayCurrency)

	var body QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "200.00", body.Breakdown.FinalPrice)
	assert.Equal(t, "4.0000", body.Breakdown.Hours)
	assert.False(t, body.Breakdown.DiscountApplied)
	assert.Equal(t, "Invalid discount code", body.Breakdown.DiscountMessage)
	assert.Equal(t, "184.00", body.Display.FinalPrice)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		venue  string
		body   string
		err    error
		status int
	}{
		{name: "bad venue id", venue: "x", body: `{}`, status: http.StatusBadRequest},
		{name: "bad json", venue: "3", body: `{`, status: http.StatusBadRequest},
		{name: "missing date", venue: "3", body: `{"startTime":"10:00","endTime":"12:00"}`, status: http.StatusBadRequest},
		{name: "venue not found", venue: "3", body: `{"eventDate":"2024-06-12"}`, err: calculatePrice.ErrVenueNotFound, status: http.StatusNotFound},
		{name: "invalid input", venue: "3", body: `{"eventDate":"2024-06-12"}`, err: fmt.Errorf("%w: bad time", calculatePrice.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "full day wrap", venue: "3", body: `{"eventDate":"2024-06-12"}`, err: calculatePrice.ErrFullDayWrapNotAllowed, status: http.StatusBadRequest},
		{name: "internal", venue: "3", body: `{"eventDate":"2024-06-12"}`, err: calculatePrice.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.venue, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
