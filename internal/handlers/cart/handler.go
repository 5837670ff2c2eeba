package cart

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/cart/model/dto"
	"inn/internal/domains/cart/service"
	"inn/shared/constant"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/carts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartCart)
		routerGroup.Get("/{id}", handler.GetCart)
		routerGroup.Patch("/{id}/lines", handler.AdjustLine)
		routerGroup.Post("/{id}/checkout", handler.Checkout)
	})
}

// StartCart opens a booking cart for a stay.
// @Summary Start a booking cart
// @Description Validate the stay dates, snapshot current availability and open a cart session.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.StartCartRequest true "Start Cart Request"
// @Success 201 {object} response.Data[dto.CartResponse] "The opened cart"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carts [post]
func (handler *Handler) StartCart(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartCart")
	defer scope.End()

	req := dto.StartCartRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	cart, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start cart")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cart started successfully")

	response.WithJSON(writer, http.StatusCreated, cart)
}

// GetCart retrieves a cart session by its ID.
// @Summary Get a cart
// @Description Retrieve a cart session with its offers, lines and cost summary.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Data[dto.CartResponse] "Cart details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carts/{id} [get]
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	cart, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart retrieved successfully")

	response.WithJSON(w, http.StatusOK, cart)
}

// AdjustLine increments or decrements a cart line.
// @Summary Adjust a cart line
// @Description Change the quantity of one room type in the cart by +1 or -1, clamped to availability.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.AdjustLineRequest true "Adjust Line Request"
// @Success 200 {object} response.Data[dto.CartResponse] "Cart after the adjustment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carts/{id}/lines [patch]
func (handler *Handler) AdjustLine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustLine")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AdjustLineRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.Adjust(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust cart line")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart line adjusted successfully")

	response.WithJSON(w, http.StatusOK, cart)
}

// Checkout submits the cart as reservations.
// @Summary Check out a cart
// @Description Expand the cart into per-unit reservation drafts and submit them one by one, reporting partial failures.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.CheckoutRequest true "Checkout Request"
// @Success 200 {object} response.Data[dto.CheckoutResponse] "Per-draft checkout outcome"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carts/{id}/checkout [post]
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CheckoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Checkout(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart checked out")

	response.WithJSON(w, http.StatusOK, result)
}
