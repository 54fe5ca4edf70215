package convert_currency

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/service/currency"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

func newHandler() *Handler {
	rates := currency.StaticRates{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
	}
	conv := currency.NewConverter(nil, rates, nil, logger.NewNop())
	return NewHandler(conv, logger.NewNop())
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Convert(t *testing.T) {
	rec := get(newHandler(), "/currency/convert?amount=100&from=USD&to=EUR")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ConversionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "92.00", body.Converted)
	assert.True(t, body.RateFound)
	assert.Equal(t, "static", body.Source)
}

func TestHandler_UnknownCurrencyReturnsAmountUnchanged(t *testing.T) {
	rec := get(newHandler(), "/currency/convert?amount=100&from=USD&to=XYZ")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ConversionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "100.00", body.Converted)
	assert.False(t, body.RateFound)
}

func TestHandler_BadInput(t *testing.T) {
	h := newHandler()
	assert.Equal(t, http.StatusBadRequest, get(h, "/currency/convert?from=USD&to=EUR").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/currency/convert?amount=abc&from=USD&to=EUR").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/currency/convert?amount=1&from=USD").Code)
}
