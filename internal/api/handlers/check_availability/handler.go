package check_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
// Query params: date (YYYY-MM-DD), startTime (HH:MM), endTime (HH:MM), endDate (опционально)
// Ответ всегда 200: недоступность, сбой проверки и некорректный ввод отражаются в поле reason
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueIDStr := mux.Vars(r)["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result := h.useCase.Execute(r.Context(), ToUseCaseRequest(venueID, r.URL.Query()))

	h.logger.Info("GET /venues/{id}/availability - venue_id=%d, available=%t, reason=%s",
		venueID, result.Available, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
