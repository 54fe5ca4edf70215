package get_venue_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
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
	got *models.GetVenueBookingsRequest
	err error
}

func (f *fakeService) GetVenueBookings(_ context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/venues/{venueId}/bookings", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(3, 7, url.Values{"date": {"2024-06-15"}, "from": {"2024-01-01"}})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", req.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-06-15", req.EndDate.Format("2006-01-02"))

	req, err = ToServiceRequest(3, 7, url.Values{"from": {"2024-06-01"}, "includeInactive": {"true"}})
	require.NoError(t, err)
	assert.NotNil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.True(t, req.IncludeInactive)

	_, err = ToServiceRequest(3, 7, url.Values{"to": {"15.06.2024"}})
	assert.Error(t, err)

	_, err = ToServiceRequest(3, 7, url.Values{"includeInactive": {"maybe"}})
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	svc := &fakeService{}
	require.Equal(t, http.StatusOK, get(svc, "/venues/3/bookings?status=pending").Code)
	assert.Equal(t, int64(3), svc.got.VenueID)
	assert.Equal(t, int64(7), svc.got.UserID)

	assert.Equal(t, http.StatusForbidden, get(&fakeService{err: bookings.ErrAccessDenied}, "/venues/3/bookings").Code)
	assert.Equal(t, http.StatusNotFound, get(&fakeService{err: bookings.ErrVenueNotFound}, "/venues/3/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/venues/3/bookings?date=bad").Code)
}
