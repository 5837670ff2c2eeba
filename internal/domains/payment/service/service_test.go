package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	paymentMocks "inn/internal/domains/payment/mocks"
	"inn/internal/domains/payment/model"
	"inn/internal/domains/payment/model/dto"
	"inn/internal/domains/payment/service"
	reservationMocks "inn/internal/domains/reservation/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, &config.Config{}, mockOtel)

	validReq := dto.CreatePaymentRequest{
		ReservationID: "reservation-1",
		Amount:        1_000_000,
		Method:        "card",
	}

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockReservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment model.Payment) error {
						assert.Equal(t, constant.PaymentStatusPending, payment.Status)
						assert.Nil(t, payment.PaidAt)

						return nil
					})
			},
		},
		{
			name: "paid on creation stamps paid_at",
			req: dto.CreatePaymentRequest{
				ReservationID: "reservation-1",
				Amount:        1_000_000,
				Method:        "cash",
				Status:        constant.PaymentStatusPaid,
			},
			setupMock: func() {
				mockReservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment model.Payment) error {
						assert.Equal(t, constant.PaymentStatusPaid, payment.Status)
						assert.NotNil(t, payment.PaidAt)

						return nil
					})
			},
		},
		{
			name: "reservation does not exist",
			req:  validReq,
			setupMock: func() {
				mockReservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				mockReservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
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
			err := svc.Create(ctx, tt.req)

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

func TestPaymentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, &config.Config{}, mockOtel)

	pendingPayment := model.Payment{
		ID:            "payment-1",
		ReservationID: "reservation-1",
		Amount:        1_000_000,
		Method:        "card",
		Status:        constant.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "marking paid stamps paid_at",
			req:  dto.UpdatePaymentRequest{Status: constant.PaymentStatusPaid},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingPayment, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, model.FieldPaidAt)

						return nil
					})
			},
		},
		{
			name: "already paid keeps the original paid_at",
			req:  dto.UpdatePaymentRequest{Status: constant.PaymentStatusPaid},
			setupMock: func() {
				paid := pendingPayment
				paid.Status = constant.PaymentStatusPaid

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.NotContains(t, fields, model.FieldPaidAt)

						return nil
					})
			},
		},
		{
			name:      "no fields to update",
			req:       dto.UpdatePaymentRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "payment not found",
			req:  dto.UpdatePaymentRequest{Status: constant.PaymentStatusPaid},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "payment-1")

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

func TestPaymentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, &config.Config{}, mockOtel)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{ID: "payment-1", Status: constant.PaymentStatusPending}, nil)

		res, err := svc.Get(context.Background(), "payment-1")
		assert.NoError(t, err)
		assert.Equal(t, "payment-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPaymentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, &config.Config{}, mockOtel)

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "payment-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
