//go:build wireinject
// +build wireinject

package di

import (
	"tourdesk/config"
	"tourdesk/infras/jwt"
	"tourdesk/infras/kafka"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/infras/redis"
	"tourdesk/infras/sheets"
	"tourdesk/internal/mirror"
	"tourdesk/permissions"
	"tourdesk/shared/cache"
	"tourdesk/transport/http"
	"tourdesk/transport/http/middleware"
	"tourdesk/transport/http/router"

	"github.com/google/wire"

	authService "tourdesk/internal/domains/auth/service"
	bookingRepository "tourdesk/internal/domains/booking/repository"
	bookingService "tourdesk/internal/domains/booking/service"
	userRepository "tourdesk/internal/domains/user/repository"
	authHandler "tourdesk/internal/handlers/auth"
	bookingHandler "tourdesk/internal/handlers/booking"
	healthHandler "tourdesk/internal/handlers/health"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	mirror.NewNotifier,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
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

func InitializeRelay() *mirror.Relay {
	wire.Build(
		configurations,
		kafka.New,
		sheets.New,
		mirror.NewRelay,
	)

	return &mirror.Relay{}
}
