package roomtype

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/roomtype/model"
	"inn/internal/domains/roomtype/model/dto"
	"inn/internal/domains/roomtype/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
	})
}

// CreateRoomType handles the creation of a new room type.
// @Summary Create a new room type
// @Description Create a new room type with the provided details.
// @Tags RoomType
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Room type name"
// @Param description formData string false "Room type description"
// @Param price_per_night formData integer true "Price per night in minor currency units"
// @Param max_capacity formData integer true "Maximum guests per unit"
// @Param total_units formData integer true "Number of physical units"
// @Param active formData boolean false "Room type active status"
// @Param image formData file false "Room type image"
// @Success 201 {object} response.Message "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomTypeRequest{
		Name:        request.FormValue("name"),
		Description: request.FormValue("description"),
	}

	if priceStr := request.FormValue("price_per_night"); priceStr != "" {
		if p, err := shared.ConvertStringToInt64(priceStr); err == nil {
			req.PricePerNight = p
		}
	}

	if capStr := request.FormValue("max_capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.MaxCapacity = c
		}
	}

	if unitsStr := request.FormValue("total_units"); unitsStr != "" {
		if u, err := shared.ConvertStringToInt(unitsStr); err == nil {
			req.TotalUnits = u
		}
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room type created successfully")
}

// GetRoomTypes retrieves all room types based on query parameters.
// @Summary Get all room types
// @Description Retrieve all room types with optional filtering and pagination.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "List of room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type by its ID.
// @Summary Get a room type by ID
// @Description Retrieve a room type by its unique identifier.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomType)
}

// UpdateRoomType updates an existing room type by its ID.
// @Summary Update a room type by ID
// @Description Update the details of an existing room type.
// @Tags RoomType
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room type ID"
// @Param name formData string false "Room type name"
// @Param description formData string false "Room type description"
// @Param price_per_night formData integer false "Price per night in minor currency units"
// @Param max_capacity formData integer false "Maximum guests per unit"
// @Param total_units formData integer false "Number of physical units"
// @Param active formData boolean false "Room type active status"
// @Param image formData file false "Room type image"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomTypeRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("price_per_night"); priceStr != "" {
		if p, err := shared.ConvertStringToInt64(priceStr); err == nil {
			req.PricePerNight = &p
		}
	}

	if capStr := r.FormValue("max_capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.MaxCapacity = &c
		}
	}

	if unitsStr := r.FormValue("total_units"); unitsStr != "" {
		if u, err := shared.ConvertStringToInt(unitsStr); err == nil {
			req.TotalUnits = &u
		}
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType deletes a room type by its ID.
// @Summary Delete a room type by ID
// @Description Delete a room type using its unique identifier.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}
