package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func (f *fakeService) GetByID(_ context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, UserID: userID, Status: "pending"}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "ok", path: "/bookings/5", status: http.StatusOK},
		{name: "bad id", path: "/bookings/x", status: http.StatusBadRequest},
		{name: "not found", path: "/bookings/5", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "forbidden", path: "/bookings/5", err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{name: "internal", path: "/bookings/5", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.Use(middleware.Auth)
			r.HandleFunc("/bookings/{bookingId}", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("X-User-ID", "42")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
