//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	"github.com/google/wire"

	authService "inn/internal/domains/auth/service"
	cartRepository "inn/internal/domains/cart/repository"
	cartService "inn/internal/domains/cart/service"
	paymentRepository "inn/internal/domains/payment/repository"
	paymentService "inn/internal/domains/payment/service"
	reservationRepository "inn/internal/domains/reservation/repository"
	reservationService "inn/internal/domains/reservation/service"
	roomTypeRepository "inn/internal/domains/roomtype/repository"
	roomTypeService "inn/internal/domains/roomtype/service"
	userRepository "inn/internal/domains/user/repository"
	userService "inn/internal/domains/user/service"

	authHandler "inn/internal/handlers/auth"
	cartHandler "inn/internal/handlers/cart"
	paymentHandler "inn/internal/handlers/payment"
	reservationHandler "inn/internal/handlers/reservation"
	roomTypeHandler "inn/internal/handlers/roomtype"
	userHandler "inn/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var cartDomain = wire.NewSet(
	cartRepository.NewStore,
	cartService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomTypeDomain,
	reservationDomain,
	cartDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomTypeHandler.New,
	reservationHandler.New,
	cartHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
