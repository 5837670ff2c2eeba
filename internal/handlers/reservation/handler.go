package reservation

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/reservation/model"
	"inn/internal/domains/reservation/model/dto"
	"inn/internal/domains/reservation/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/myreservations", handler.GetMyReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a new reservation
// @Description Create a new reservation after re-checking room type availability.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[string] "ID of the created reservation"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, id)
}

// GetAvailability searches available room types for a stay.
// @Summary Search room type availability
// @Description List room types with at least one free unit for the requested stay, optionally filtered by guest count.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param checkin query string true "Check-in date (YYYY-MM-DD)"
// @Param checkout query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query integer false "Number of guests per room"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability offers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	checkin, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get("checkin"))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("checkin must be a valid date (YYYY-MM-DD)"))

		return
	}

	checkout, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get("checkout"))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("checkout must be a valid date (YYYY-MM-DD)"))

		return
	}

	guests := 0
	if guestsStr := r.URL.Query().Get("guests"); guestsStr != "" {
		if g, err := shared.ConvertStringToInt(guestsStr); err == nil {
			guests = g
		}
	}

	availability, err := handler.service.Availability(ctx, checkin, checkout, guests)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability searched successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetReservations retrieves all reservations based on query parameters.
// @Summary Get all reservations
// @Description Retrieve all reservations with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type_id query string false "Filter by room type ID"
// @Param status query string false "Filter by status (pending, confirmed, checked_in, checked_out, cancelled)"
// @Success 200 {object} response.Data[dto.ReservationResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildFilters(r, nil)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetMyReservations retrieves reservations for the authenticated guest.
// @Summary Get my reservations
// @Description Retrieve all reservations created by the currently authenticated guest.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, checked_in, checked_out, cancelled)"
// @Success 200 {object} response.Data[dto.ReservationResponse] "List of the guest's reservations"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/myreservations [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	ownFilter := gDto.Filter{
		Field:    model.FieldGuestID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	}

	filterGroup := handler.buildFilters(r, &ownFilter)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest reservations retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, reservations)
}

func (handler *Handler) buildFilters(r *http.Request, base *gDto.Filter) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if base != nil {
		filterGroup.Filters = append(filterGroup.Filters, *base)
	}

	if roomTypeID := r.URL.Query().Get(model.FieldRoomTypeID); roomTypeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomTypeID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation updates an existing reservation by its ID.
// @Summary Update a reservation by ID
// @Description Update guest details or transition the status of an existing reservation.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Message "Reservation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation updated successfully")
}

// DeleteReservation deletes a reservation by its ID.
// @Summary Delete a reservation by ID
// @Description Delete a reservation using its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}
