package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/reservation/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gRepo "inn/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountOccupying(ctx context.Context, roomTypeID string, checkin, checkout time.Time) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountOccupying counts reservations of a room type whose stay overlaps the
// given range. Overlap is half-open (reservation.checkin < checkout AND
// reservation.checkout > checkin), so back-to-back stays never collide.
func (repo *repositoryImpl) CountOccupying(ctx context.Context, roomTypeID string, checkin, checkout time.Time) (int, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomTypeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    constant.ReservationOccupyingStatuses,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_checkout",
				Field:    model.FieldCheckin,
				Operator: gDto.FilterOperatorLess,
				Value:    checkout,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_checkin",
				Field:    model.FieldCheckout,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkin,
				Table:    model.TableName,
			},
		},
	}

	return repo.Count(ctx, filter) //nolint:wrapcheck
}
