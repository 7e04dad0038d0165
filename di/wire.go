//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/infras/s3"
	"innkeep/permissions"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	"github.com/google/wire"

	authService "innkeep/internal/domains/auth/service"
	bookingRepository "innkeep/internal/domains/booking/repository"
	bookingService "innkeep/internal/domains/booking/service"
	consoleService "innkeep/internal/domains/console/service"
	locationRepository "innkeep/internal/domains/location/repository"
	locationService "innkeep/internal/domains/location/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"

	authHandler "innkeep/internal/handlers/auth"
	bookingHandler "innkeep/internal/handlers/booking"
	consoleHandler "innkeep/internal/handlers/console"
	healthHandler "innkeep/internal/handlers/health"
	locationHandler "innkeep/internal/handlers/location"
	roomHandler "innkeep/internal/handlers/room"
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
	provideEventHub,
)

var authDomain = wire.NewSet(
	authService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var consoleDomain = wire.NewSet(
	consoleService.New,
)

var domains = wire.NewSet(
	authDomain,
	locationDomain,
	roomDomain,
	bookingDomain,
	consoleDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	locationHandler.New,
	roomHandler.New,
	bookingHandler.New,
	consoleHandler.New,
	healthHandler.New,
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
