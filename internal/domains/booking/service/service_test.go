package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	bookingMocks "tourdesk/internal/domains/booking/mocks"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/service"
	mirrorMocks "tourdesk/internal/mirror/mocks"
	"tourdesk/shared/cache"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/reference"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

func newTestService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *mirrorMocks.MockNotifier, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockNotifier := mirrorMocks.NewMockNotifier(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// Cache invalidation runs in a goroutine after the response is
	// already decided; the calls may land after the test returns.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockNotifier, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockNotifier, mockCache
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		FullName:        "Abebe Bikila",
		Email:           "abebe@example.com",
		Phone:           "+251911000000",
		Age:             35,
		Country:         "Ethiopia",
		BookingType:     constant.BookingTypeIndividual,
		NumberOfPeople:  2,
		SelectedPackage: "simien-mountains",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo, mockNotifier, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			Return(int64(7), nil)

		mockNotifier.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.BookingID)
		assert.True(t, strings.HasPrefix(res.Reference, reference.Prefix+"-"))
		assert.Equal(t, constant.BookingStatusPending, res.Booking.Status)
		assert.Equal(t, "simien-mountains", res.Booking.SelectedPackage)
	})

	t.Run("duplicate caught by pre-check", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), "simien-mountains")
	})

	t.Run("duplicate caught by unique index", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("mirror failure does not fail the booking", func(t *testing.T) {
		svc, mockRepo, mockNotifier, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			Return(int64(8), nil)

		mockNotifier.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Return(errors.New("spreadsheet unavailable"))

		res, err := svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(8), res.BookingID)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	persisted := model.Booking{
		ID:              7,
		FullName:        "Abebe Bikila",
		Email:           "abebe@example.com",
		Phone:           "+251911000000",
		Age:             35,
		Country:         "Ethiopia",
		BookingType:     constant.BookingTypeIndividual,
		NumberOfPeople:  2,
		SelectedPackage: "simien-mountains",
		Status:          constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(persisted, nil)

		res, err := svc.Get(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.ID)
		assert.Equal(t, "Abebe Bikila", res.FullName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), 999)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	// list and count are cached independently; both miss here
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(12, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Booking{{ID: 1}, {ID: 2}}, nil)

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestBookingService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, 7)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: constant.BookingStatusConfirmed}, 7)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful update returns updated row", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		updated := model.Booking{
			ID:     7,
			Status: constant.BookingStatusConfirmed,
		}

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(updated, nil)

		res, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: constant.BookingStatusConfirmed}, 7)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 7))
	})

	t.Run("delete of a missing booking still succeeds", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		// No existence check: the repository reports success whether or
		// not a row was removed.
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 404))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		assert.Error(t, svc.Delete(context.Background(), 7))
	})
}
