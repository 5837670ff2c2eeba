package service

import (
	"context"
	"errors"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/cart/model"
	"inn/internal/domains/cart/model/dto"
	"inn/internal/domains/cart/repository"
	reservationDto "inn/internal/domains/reservation/model/dto"
	reservationService "inn/internal/domains/reservation/service"
	"inn/shared/constant"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Cart interface {
	Start(ctx context.Context, req dto.StartCartRequest) (dto.CartResponse, error)
	Get(ctx context.Context, id string) (dto.CartResponse, error)
	Adjust(ctx context.Context, id string, req dto.AdjustLineRequest) (dto.CartResponse, error)
	Checkout(ctx context.Context, id string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	store          repository.Store
	reservationSvc reservationService.Reservation
	cfg            *config.Config
	otel           otel.Otel
}

func New(store repository.Store, reservationSvc reservationService.Reservation, cfg *config.Config, otel otel.Otel) Cart {
	return &serviceImpl{
		store:          store,
		reservationSvc: reservationSvc,
		cfg:            cfg,
		otel:           otel,
	}
}

// Start validates the requested stay and opens a fresh cart session against a
// new availability snapshot. Any previous selection for another stay is
// abandoned, never migrated.
func (s *serviceImpl) Start(ctx context.Context, req dto.StartCartRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := model.ValidateStay(req.Checkin, req.Checkout, timezone.Now())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	availability, err := s.reservationSvc.Availability(ctx, stay.Checkin, stay.Checkout, req.Guests)
	if err != nil {
		log.Error().Err(err).Msg("failed to query availability")

		return res, fmt.Errorf("failed to query availability: %w", err)
	}

	cart := model.NewCart(uuid.NewString(), stay, s.cfg.App.TaxRate, toOffers(availability.Offers))

	if err = s.store.Save(ctx, cart, s.cfg.Cart.SessionTTLSeconds); err != nil {
		return res, err
	}

	scope.AddEvent("Cart session started " + cart.ID)

	res.FromCart(cart)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cart, err := s.loadCart(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromCart(cart)

	return res, nil
}

// Adjust applies a single +1/-1 step to a line. An unknown room type means
// the offers expired between render and click; the caller should start a new
// search, so it surfaces as a conflict rather than a server failure.
func (s *serviceImpl) Adjust(ctx context.Context, id string, req dto.AdjustLineRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Adjust")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.loadCart(ctx, id)
	if err != nil {
		return res, err
	}

	if err = cart.Adjust(req.RoomTypeID, req.Delta); err != nil {
		if errors.Is(err, model.ErrUnknownRoomType) {
			return res, failure.Conflict("room type is no longer offered, start a new search") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to adjust cart line: %w", err)
	}

	if err = s.store.Save(ctx, cart, s.cfg.Cart.SessionTTLSeconds); err != nil {
		return res, err
	}

	res.FromCart(cart)

	return res, nil
}

// Checkout expands the cart into one draft per room unit and submits the
// drafts sequentially. Each submission succeeds or fails on its own; a
// failure does not roll back earlier reservations and does not stop later
// drafts. The session is closed only when every draft succeeded.
func (s *serviceImpl) Checkout(ctx context.Context, id string, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.loadCart(ctx, id)
	if err != nil {
		return res, err
	}

	if !cart.HasSelection() {
		return res, failure.BadRequestFromString("cart has no selected rooms") // nolint:wrapcheck
	}

	drafts := cart.Drafts(req.ToGuestInfo())

	res.ReservationIDs = []string{}
	res.Failed = []dto.FailedDraft{}

	for _, draft := range drafts {
		reservationID, submitErr := s.reservationSvc.Create(ctx, toReservationRequest(draft))
		if submitErr != nil {
			log.Warn().Err(submitErr).Str("roomTypeID", draft.RoomTypeID).Msg("reservation draft failed")

			res.Failed = append(res.Failed, dto.FailedDraft{
				Draft: draft,
				Error: submitErr.Error(),
			})

			continue
		}

		res.Succeeded++
		res.ReservationIDs = append(res.ReservationIDs, reservationID)
	}

	if len(res.Failed) == 0 {
		if err := s.store.Delete(ctx, cart.ID); err != nil {
			log.Warn().Err(err).Str("cartID", cart.ID).Msg("failed to close cart session after checkout")
		}
	}

	scope.AddEvent(fmt.Sprintf("Checkout submitted: %d succeeded, %d failed", res.Succeeded, len(res.Failed)))

	return res, nil
}

func (s *serviceImpl) loadCart(ctx context.Context, id string) (model.Cart, error) {
	cart, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return cart, failure.NotFound("cart session not found or expired") // nolint:wrapcheck
		}

		return cart, err
	}

	return cart, nil
}

func toOffers(offers []reservationDto.Offer) []model.Offer {
	res := make([]model.Offer, len(offers))

	for i, offer := range offers {
		res[i] = model.Offer{
			RoomTypeID:     offer.RoomTypeID,
			TypeName:       offer.TypeName,
			PricePerNight:  offer.PricePerNight,
			MaxCapacity:    offer.MaxCapacity,
			AvailableCount: offer.AvailableCount,
		}
	}

	return res
}

func toReservationRequest(draft model.Draft) reservationDto.CreateReservationRequest {
	return reservationDto.CreateReservationRequest{
		RoomTypeID: draft.RoomTypeID,
		GuestID:    draft.Guest.GuestID,
		GuestName:  draft.Guest.Name,
		GuestEmail: draft.Guest.Email,
		GuestPhone: draft.Guest.Phone,
		Checkin:    draft.Stay.Checkin.Format(constant.DateOnlyFormat),
		Checkout:   draft.Stay.Checkout.Format(constant.DateOnlyFormat),
	}
}
