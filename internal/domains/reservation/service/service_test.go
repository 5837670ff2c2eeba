package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	kafkaMocks "inn/infras/kafka/mocks"
	"inn/infras/otel/mocks"
	reservationMocks "inn/internal/domains/reservation/mocks"
	"inn/internal/domains/reservation/model"
	"inn/internal/domains/reservation/model/dto"
	"inn/internal/domains/reservation/service"
	roomTypeMocks "inn/internal/domains/roomtype/mocks"
	roomTypeModel "inn/internal/domains/roomtype/model"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
)

type reservationTestDeps struct {
	repo         *reservationMocks.MockReservation
	roomTypeRepo *roomTypeMocks.MockRoomType
	cache        *cacheMocks.MockRedisCache
	kafka        *kafkaMocks.MockClient
	svc          service.Reservation
}

func newReservationTestDeps(ctrl *gomock.Controller) reservationTestDeps {
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache invalidation and event publishing run on detached goroutines.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return reservationTestDeps{
		repo:         mockRepo,
		roomTypeRepo: mockRoomTypeRepo,
		cache:        mockCache,
		kafka:        mockKafka,
		svc:          service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockOtel, mockKafka),
	}
}

func activeRoomType() roomTypeModel.RoomType {
	return roomTypeModel.RoomType{
		ID:            "room-type-1",
		Name:          "Standard",
		PricePerNight: 500_000,
		MaxCapacity:   2,
		TotalUnits:    3,
		Active:        true,
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newReservationTestDeps(ctrl)

	validReq := dto.CreateReservationRequest{
		RoomTypeID: "room-type-1",
		GuestName:  "Jane Doe",
		GuestEmail: "jane@example.com",
		Checkin:    "2026-09-10",
		Checkout:   "2026-09-12",
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoomType(), nil)

				deps.repo.EXPECT().
					CountOccupying(gomock.Any(), "room-type-1", gomock.Any(), gomock.Any()).
					Return(2, nil)

				deps.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
						assert.Equal(t, constant.ReservationStatusPending, reservation.Status)
						assert.Equal(t, 2, reservation.Nights)
						assert.Equal(t, int64(1_000_000), reservation.TotalPrice)

						return nil
					})
			},
		},
		{
			name: "invalid checkin format",
			req: dto.CreateReservationRequest{
				RoomTypeID: "room-type-1",
				GuestName:  "Jane Doe",
				Checkin:    "10-09-2026",
				Checkout:   "2026-09-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "checkout not after checkin",
			req: dto.CreateReservationRequest{
				RoomTypeID: "room-type-1",
				GuestName:  "Jane Doe",
				Checkin:    "2026-09-12",
				Checkout:   "2026-09-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "room type does not exist",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomTypeModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "room type inactive",
			req:  validReq,
			setupMock: func() {
				inactive := activeRoomType()
				inactive.Active = false

				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "no units available",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoomType(), nil)

				deps.repo.EXPECT().
					CountOccupying(gomock.Any(), "room-type-1", gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				deps.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoomType(), nil)

				deps.repo.EXPECT().
					CountOccupying(gomock.Any(), "room-type-1", gomock.Any(), gomock.Any()).
					Return(0, nil)

				deps.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			id, err := deps.svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}

func TestReservationService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newReservationTestDeps(ctrl)

	checkin := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkout := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	roomTypes := []roomTypeModel.RoomType{
		{ID: "rt-small", Name: "Single", PricePerNight: 300_000, MaxCapacity: 1, TotalUnits: 2, Active: true},
		{ID: "rt-family", Name: "Family", PricePerNight: 900_000, MaxCapacity: 4, TotalUnits: 1, Active: true},
	}

	t.Run("offers per room type with availability counts", func(t *testing.T) {
		deps.roomTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypes, nil)

		deps.repo.EXPECT().
			CountOccupying(gomock.Any(), "rt-small", checkin, checkout).
			Return(1, nil)

		deps.repo.EXPECT().
			CountOccupying(gomock.Any(), "rt-family", checkin, checkout).
			Return(0, nil)

		res, err := deps.svc.Availability(context.Background(), checkin, checkout, 0)
		assert.NoError(t, err)
		assert.Equal(t, "2026-09-10", res.Checkin)
		assert.Equal(t, "2026-09-13", res.Checkout)
		assert.Equal(t, 3, res.Nights)
		assert.Len(t, res.Offers, 2)
		assert.Equal(t, 1, res.Offers[0].AvailableCount)
		assert.Equal(t, 1, res.Offers[1].AvailableCount)
	})

	t.Run("guest count filters out small rooms", func(t *testing.T) {
		deps.roomTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypes, nil)

		deps.repo.EXPECT().
			CountOccupying(gomock.Any(), "rt-family", checkin, checkout).
			Return(0, nil)

		res, err := deps.svc.Availability(context.Background(), checkin, checkout, 3)
		assert.NoError(t, err)
		assert.Len(t, res.Offers, 1)
		assert.Equal(t, "rt-family", res.Offers[0].RoomTypeID)
	})

	t.Run("oversold room type clamps to zero", func(t *testing.T) {
		deps.roomTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypes[:1], nil)

		deps.repo.EXPECT().
			CountOccupying(gomock.Any(), "rt-small", checkin, checkout).
			Return(5, nil)

		res, err := deps.svc.Availability(context.Background(), checkin, checkout, 0)
		assert.NoError(t, err)
		assert.Len(t, res.Offers, 1)
		assert.Equal(t, 0, res.Offers[0].AvailableCount)
	})

	t.Run("room type lookup fails", func(t *testing.T) {
		deps.roomTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := deps.svc.Availability(context.Background(), checkin, checkout, 0)
		assert.Error(t, err)
	})
}

func TestReservationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newReservationTestDeps(ctrl)

	pendingReservation := model.Reservation{
		ID:         "reservation-1",
		RoomTypeID: "room-type-1",
		GuestName:  "Jane Doe",
		Status:     constant.ReservationStatusPending,
		Checkin:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Checkout:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "confirm pending reservation",
			req:  dto.UpdateReservationRequest{Status: constant.ReservationStatusConfirmed},
			setupMock: func() {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation, nil)

				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cancel pending reservation",
			req:  dto.UpdateReservationRequest{Status: constant.ReservationStatusCancelled},
			setupMock: func() {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation, nil)

				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "pending cannot check out",
			req:  dto.UpdateReservationRequest{Status: constant.ReservationStatusCheckedOut},
			setupMock: func() {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "checked out is terminal",
			req:  dto.UpdateReservationRequest{Status: constant.ReservationStatusPending},
			setupMock: func() {
				checkedOut := pendingReservation
				checkedOut.Status = constant.ReservationStatusCheckedOut

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedOut, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:      "no fields to update",
			req:       dto.UpdateReservationRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "reservation not found",
			req:  dto.UpdateReservationRequest{Status: constant.ReservationStatusConfirmed},
			setupMock: func() {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := deps.svc.Update(ctx, tt.req, "reservation-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newReservationTestDeps(ctrl)

	t.Run("found on cache miss", func(t *testing.T) {
		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{
				ID:       "reservation-1",
				Status:   constant.ReservationStatusPending,
				Checkin:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				Checkout: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			}, nil)

		res, err := deps.svc.Get(context.Background(), "reservation-1")
		assert.NoError(t, err)
		assert.Equal(t, "reservation-1", res.ID)
		assert.Equal(t, "2026-09-10", res.Checkin)
	})

	t.Run("not found", func(t *testing.T) {
		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		_, err := deps.svc.Get(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newReservationTestDeps(ctrl)

	t.Run("successful delete", func(t *testing.T) {
		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		deps.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, deps.svc.Delete(context.Background(), "reservation-1"))
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := deps.svc.Delete(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
