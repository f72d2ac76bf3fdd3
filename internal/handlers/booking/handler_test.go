package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourdesk/infras/otel/mocks"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	serviceMocks "tourdesk/internal/domains/booking/service/mocks"
	"tourdesk/internal/handlers/booking"
	"tourdesk/shared/constant"
	"tourdesk/shared/failure"
)

func newTestRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, mockService
}

const submissionBody = `{
	"fullName": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+15551234567",
	"age": 30,
	"country": "USA",
	"bookingType": "individual",
	"numberOfPeople": 1,
	"selectedPackage": "southern-ethiopia"
}`

func TestSubmitBooking_Success(t *testing.T) {
	router, mockService := newTestRouter(t)

	persisted := model.Booking{
		ID:              1,
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "+15551234567",
		Age:             30,
		Country:         "USA",
		BookingType:     constant.BookingTypeIndividual,
		NumberOfPeople:  1,
		SelectedPackage: "southern-ethiopia",
		Status:          constant.BookingStatusPending,
	}

	var res dto.CreateBookingResponse
	res.FromModel(persisted, "TRB-1756600000-A1B2C3")

	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(res, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(submissionBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                      `json:"success"`
		Data    dto.CreateBookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Data.BookingID)
	assert.Equal(t, constant.BookingStatusPending, body.Data.Booking.Status)
}

func TestSubmitBooking_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t)

	// No Create expectation: an invalid payload must never reach the service.
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{"fullName": "Jane Doe"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitBooking_Duplicate(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(dto.CreateBookingResponse{}, failure.Conflict("a booking for package southern-ethiopia already exists for this email"))

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(submissionBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "southern-ethiopia")
}

func TestDeleteBooking_Acknowledgement(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().
		Delete(gomock.Any(), int64(404)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/bookings/404", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking deleted successfully")
}
