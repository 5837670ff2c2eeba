package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	s3Mocks "inn/infras/s3/mocks"
	roomTypeMocks "inn/internal/domains/roomtype/mocks"
	"inn/internal/domains/roomtype/model"
	"inn/internal/domains/roomtype/model/dto"
	"inn/internal/domains/roomtype/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
)

type roomTypeTestDeps struct {
	repo  *roomTypeMocks.MockRoomType
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.RoomType
}

func newRoomTypeTestDeps(ctrl *gomock.Controller) roomTypeTestDeps {
	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidation run on detached goroutines.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return roomTypeTestDeps{
		repo:  mockRepo,
		cache: mockCache,
		s3:    mockS3,
		svc:   service.New(mockRepo, cfg, mockCache, mockOtel, mockS3),
	}
}

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newRoomTypeTestDeps(ctrl)

	validReq := dto.CreateRoomTypeRequest{
		Name:          "Deluxe",
		Description:   "King bed, sea view",
		PricePerNight: 900_000,
		MaxCapacity:   4,
		TotalUnits:    2,
	}

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				deps.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				deps.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
						assert.True(t, roomType.Active)
						assert.Equal(t, "Deluxe", roomType.Name)

						return nil
					})
			},
		},
		{
			name: "duplicate name",
			req:  validReq,
			setupMock: func() {
				deps.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				deps.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

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
			err := deps.svc.Create(ctx, tt.req)

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

func TestRoomTypeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newRoomTypeTestDeps(ctrl)

	t.Run("found on cache miss", func(t *testing.T) {
		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: "room-type-1", Name: "Deluxe", Active: true}, nil)

		res, err := deps.svc.Get(context.Background(), "room-type-1")
		assert.NoError(t, err)
		assert.Equal(t, "Deluxe", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := deps.svc.Get(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newRoomTypeTestDeps(ctrl)

	t.Run("successful update", func(t *testing.T) {
		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: "room-type-1", Name: "Deluxe", Active: true}, nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		newPrice := int64(950_000)
		err := deps.svc.Update(context.Background(), dto.UpdateRoomTypeRequest{PricePerNight: &newPrice}, "room-type-1")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		err := deps.svc.Update(context.Background(), dto.UpdateRoomTypeRequest{Name: "Suite"}, "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newRoomTypeTestDeps(ctrl)

	t.Run("successful delete", func(t *testing.T) {
		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		deps.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, deps.svc.Delete(context.Background(), "room-type-1"))
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
