package cancel_booking

import (
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// Пустая причина не сохраняется
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	var reason *string
	if r.CancellationReason != nil {
		if trimmed := strings.TrimSpace(*r.CancellationReason); trimmed != "" {
			reason = ptr.Ptr(trimmed)
		}
	}

	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: reason,
	}
}
