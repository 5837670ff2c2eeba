package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/internal/domains/reservation/model"
	"inn/internal/domains/reservation/model/dto"
	"inn/internal/domains/reservation/repository"
	roomTypeModel "inn/internal/domains/roomtype/model"
	roomTypeRepo "inn/internal/domains/roomtype/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	"inn/shared/daterange"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

// statusTransitions lists the allowed next statuses for each current status.
var statusTransitions = map[string][]string{
	constant.ReservationStatusPending:    {constant.ReservationStatusConfirmed, constant.ReservationStatusCancelled},
	constant.ReservationStatusConfirmed:  {constant.ReservationStatusCheckedIn, constant.ReservationStatusCancelled},
	constant.ReservationStatusCheckedIn:  {constant.ReservationStatusCheckedOut},
	constant.ReservationStatusCheckedOut: {},
	constant.ReservationStatusCancelled:  {},
}

// Event is the payload published to the reservation events topic.
type Event struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	RoomTypeID    string `json:"room_type_id"`
	Status        string `json:"status"`
	Checkin       string `json:"checkin"`
	Checkout      string `json:"checkout"`
	OccurredAt    string `json:"occurred_at"`
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (string, error)
	Availability(ctx context.Context, checkin, checkout time.Time, guests int) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(repo repository.Reservation, roomTypeRepo roomTypeRepo.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Reservation {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkin, err := timezone.Parse(constant.DateOnlyFormat, req.Checkin)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("invalid checkin date format") // nolint:wrapcheck
	}

	checkout, err := timezone.Parse(constant.DateOnlyFormat, req.Checkout)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("invalid checkout date format") // nolint:wrapcheck
	}

	if !checkout.After(checkin) {
		return constant.Empty, failure.BadRequestFromString("checkout must be after checkin") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return constant.Empty, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || !roomType.Active {
		return constant.Empty, failure.BadRequestFromString("room type does not exist") // nolint:wrapcheck
	}

	occupied, err := s.repo.CountOccupying(ctx, roomType.ID, checkin, checkout)
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupying reservations")

		return constant.Empty, fmt.Errorf("failed to count occupying reservations: %w", err)
	}

	if occupied >= roomType.TotalUnits {
		return constant.Empty, failure.Conflict("no units available for the requested stay") // nolint:wrapcheck
	}

	nights := daterange.Nights(checkin, checkout)
	reservation := req.ToModel(user, checkin, checkout, nights, int64(nights)*roomType.PricePerNight)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return constant.Empty, fmt.Errorf("failed to create reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, EventReservationCreated, reservation)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return reservation.ID, nil
}

// Availability computes one offer per active room type for the given stay:
// available units = total units minus reservations in an occupying status
// that overlap the range. The counts are a snapshot, valid until the next
// search.
func (s *serviceImpl) Availability(ctx context.Context, checkin, checkout time.Time, guests int) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomTypeModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomTypeModel.TableName,
			},
		},
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomTypeModel.FieldName, SortDir: gDto.SortDirAsc}, activeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types for availability")

		return res, fmt.Errorf("failed to get room types for availability: %w", err)
	}

	res.Checkin = checkin.Format(constant.DateOnlyFormat)
	res.Checkout = checkout.Format(constant.DateOnlyFormat)
	res.Nights = daterange.Nights(checkin, checkout)
	res.Offers = []dto.Offer{}

	for _, roomType := range roomTypes {
		if guests > 0 && roomType.MaxCapacity < guests {
			continue
		}

		occupied, err := s.repo.CountOccupying(ctx, roomType.ID, checkin, checkout)
		if err != nil {
			log.Error().Err(err).Str("roomTypeID", roomType.ID).Msg("failed to count occupying reservations")

			return res, fmt.Errorf("failed to count occupying reservations: %w", err)
		}

		available := roomType.TotalUnits - occupied
		if available < 0 {
			available = 0
		}

		res.Offers = append(res.Offers, dto.Offer{
			RoomTypeID:     roomType.ID,
			TypeName:       roomType.Name,
			PricePerNight:  roomType.PricePerNight,
			MaxCapacity:    roomType.MaxCapacity,
			AvailableCount: available,
		})
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("no fields to update") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if req.Status != constant.Empty && req.Status != current.Status {
		if !transitionAllowed(current.Status, req.Status) {
			return failure.Conflict(fmt.Sprintf("cannot change status from %s to %s", current.Status, req.Status)) // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if req.Status != constant.Empty && req.Status != current.Status {
			current.Status = req.Status
			s.publishEvent(c, EventReservationStatusChanged, current)
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	event := Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		RoomTypeID:    reservation.RoomTypeID,
		Status:        reservation.Status,
		Checkin:       reservation.Checkin.Format(constant.DateOnlyFormat),
		Checkout:      reservation.Checkout.Format(constant.DateOnlyFormat),
		OccurredAt:    timezone.Now().Format(constant.DateFormat),
	}

	message := kafka.Message{
		Key:   reservation.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.ReservationEvents, message); err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to publish reservation event")
	}
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
