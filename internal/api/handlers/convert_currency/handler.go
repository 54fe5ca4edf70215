package convert_currency

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
)

const (
	msgMissingAmount   = "сумма обязательна"
	msgInvalidAmount   = "некорректная сумма"
	msgMissingCurrency = "коды валют from и to обязательны"
)

type Handler struct {
	converter CurrencyConverter
	logger    Logger
}

func NewHandler(converter CurrencyConverter, logger Logger) *Handler {
	return &Handler{
		converter: converter,
		logger:    logger,
	}
}

// Handle GET /api/v1/currency/convert
// Query params: amount, from, to
// Неизвестный код валюты не ошибка: сумма возвращается как есть, rateFound=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	amountStr := query.Get("amount")
	if amountStr == "" {
		h.logger.Warn("GET /currency/convert - Missing amount")
		handlers.RespondBadRequest(w, msgMissingAmount)
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		h.logger.Warn("GET /currency/convert - Invalid amount %q: %v", amountStr, err)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		h.logger.Warn("GET /currency/convert - Missing currency code: from=%q, to=%q", from, to)
		handlers.RespondBadRequest(w, msgMissingCurrency)
		return
	}

	result := h.converter.Convert(r.Context(), amount, from, to)

	h.logger.Info("GET /currency/convert - %s %s -> %s %s (rate_found=%t)",
		amount.String(), result.From, result.Converted.String(), result.To, result.RateFound)
	handlers.RespondJSON(w, http.StatusOK, FromConversion(result))
}
