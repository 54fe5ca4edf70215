package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type fakeService struct {
	got *models.CancelBookingRequest
	err error
}

func (f *fakeService) Cancel(_ context.Context, _ int64, req *models.CancelBookingRequest) error {
	f.got = req
	return f.err
}

func patch(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5/cancel", strings.NewReader(body))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Cancel(t *testing.T) {
	svc := &fakeService{}
	rec := patch(svc, `{"cancellationReason":"  plans changed "}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), svc.got.UserID)
	assert.Equal(t, "plans changed", *svc.got.CancellationReason)

	svc = &fakeService{}
	rec = patch(svc, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, svc.got.CancellationReason)
}

func TestHandler_CancelErrors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, patch(&fakeService{err: bookings.ErrBookingNotFound}, "").Code)
	assert.Equal(t, http.StatusForbidden, patch(&fakeService{err: bookings.ErrAccessDenied}, "").Code)
	assert.Equal(t, http.StatusConflict, patch(&fakeService{err: bookings.ErrCannotCancel}, "").Code)
	assert.Equal(t, http.StatusBadRequest, patch(&fakeService{}, "{").Code)
	assert.Equal(t, http.StatusInternalServerError, patch(&fakeService{err: bookings.ErrInternal}, "").Code)
}
