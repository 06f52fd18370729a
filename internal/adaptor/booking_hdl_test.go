package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	resp *response.BookingResponse
	err  error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func postBooking(t *testing.T, svc usecase.BookingService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/auth/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)
	return rec
}

func TestCreateBookingReturnsCreated(t *testing.T) {
	svc := &stubBookingService{
		resp: &response.BookingResponse{
			Numb:       7,
			MovieTitle: "Dune",
			Seats:      2,
			TotalPrice: 500,
		},
	}

	rec := postBooking(t, svc, `{"movieTitle":"Dune","date":"2024-03-02","time":"10:00","seats":2,"totalPrice":500}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got response.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.Numb)
	assert.Equal(t, "Dune", got.MovieTitle)
}

func TestCreateBookingRejectionsMapToBadRequest(t *testing.T) {
	for _, err := range []error{usecase.ErrInvalidMovieTitle, usecase.ErrBeforeReleaseDate} {
		rec := postBooking(t, &stubBookingService{err: err}, `{"movieTitle":"Dune","date":"2024-02-01","time":"10:00"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "for %v", err)
	}
}

func TestCreateBookingUpstreamFailureIsGeneric500(t *testing.T) {
	rec := postBooking(t, &stubBookingService{err: assert.AnError}, `{"movieTitle":"Dune","date":"2024-03-02","time":"10:00"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Raw internal errors never reach the caller.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestCreateBookingMalformedBody(t *testing.T) {
	rec := postBooking(t, &stubBookingService{}, `{"movieTitle":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
