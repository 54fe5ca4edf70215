package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) UpdateStatus(context.Context, int64, *models.UpdateStatusRequest) error {
	return f.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "confirmed", body: `{"status":"confirmed"}`, status: http.StatusNoContent},
		{name: "empty body", body: ``, status: http.StatusBadRequest},
		{name: "bad status", body: `{"status":"bogus"}`, err: bookings.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not owner", body: `{"status":"confirmed"}`, err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{name: "transition", body: `{"status":"completed"}`, err: bookings.ErrInvalidTransition, status: http.StatusConflict},
		{name: "not found", body: `{"status":"confirmed"}`, err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.Use(middleware.Auth)
			r.HandleFunc("/bookings/{bookingId}/status", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			req := httptest.NewRequest(http.MethodPatch, "/bookings/5/status", strings.NewReader(tt.body))
			req.Header.Set("X-User-ID", "7")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
