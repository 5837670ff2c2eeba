package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/payment/model"
	"inn/internal/domains/payment/model/dto"
	"inn/internal/domains/payment/repository"
	reservationModel "inn/internal/domains/reservation/model"
	reservationRepo "inn/internal/domains/reservation/repository"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Payment
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	otel            otel.Otel
}

func New(repo repository.Payment, reservationRepo reservationRepo.Reservation, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservationExists, err := s.reservationRepo.Exist(ctx, shared.FilterByID(req.ReservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !reservationExists {
		return failure.BadRequestFromString("reservation does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePaymentRequest{}) {
		return failure.BadRequestFromString("no fields to update") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	// Stamp paid_at the moment a payment transitions to paid
	if req.Status == constant.PaymentStatusPaid && current.Status != constant.PaymentStatusPaid {
		updatedFields[model.FieldPaidAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}
