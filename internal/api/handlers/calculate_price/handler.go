package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_price"
)

const (
	msgInvalidVenueID   = "некорректный ID площадки"
	msgInvalidInput     = "некорректные дата или время события"
	msgFullDayWrap      = "время начала и окончания совпадают"
	msgVenueNotFound    = "площадка не найдена"
	msgMissingEventDate = "дата события обязательна"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/quote
// Невалидный код скидки не является ошибкой: результат валидации в breakdown.discountMessage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/quote - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/quote - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	if req.EventDate == "" {
		h.logger.Warn("POST /venues/{id}/quote - Missing event date: venue_id=%d", venueID)
		handlers.RespondBadRequest(w, msgMissingEventDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(venueID))
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/quote - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, calculatePrice.ErrFullDayWrapNotAllowed):
			h.logger.Warn("POST /venues/{id}/quote - Full day wrap rejected: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgFullDayWrap)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/quote - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /venues/{id}/quote - Failed to calculate price: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/quote - Quote calculated: venue_id=%d, final=%s %s",
		venueID, result.Breakdown.FinalPrice.StringFixed(2), result.Breakdown.Currency)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
