//go:build wireinject
// +build wireinject

package di

import (
	"jumatrek/config"
	"jumatrek/infras/jwt"
	"jumatrek/infras/kafka"
	"jumatrek/infras/mailer"
	"jumatrek/infras/otel"
	"jumatrek/infras/postgres"
	"jumatrek/infras/redis"
	"jumatrek/internal/events"
	"jumatrek/permissions"
	"jumatrek/shared/cache"
	"jumatrek/transport/http"
	"jumatrek/transport/http/middleware"
	"jumatrek/transport/http/router"

	inquiryRepository "jumatrek/internal/domains/inquiry/repository"
	inquiryService "jumatrek/internal/domains/inquiry/service"
	trekRepository "jumatrek/internal/domains/trek/repository"
	trekService "jumatrek/internal/domains/trek/service"
	tripRepository "jumatrek/internal/domains/trip/repository"
	tripService "jumatrek/internal/domains/trip/service"
	userRepository "jumatrek/internal/domains/user/repository"

	inquiryHandler "jumatrek/internal/handlers/inquiry"
	trekHandler "jumatrek/internal/handlers/trek"
	tripHandler "jumatrek/internal/handlers/trip"

	"github.com/google/wire"
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
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var tripDomain = wire.NewSet(
	tripRepository.New,
	tripService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var trekDomain = wire.NewSet(
	trekRepository.New,
	trekService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
)

var domains = wire.NewSet(
	tripDomain,
	inquiryDomain,
	trekDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	tripHandler.New,
	inquiryHandler.New,
	trekHandler.New,
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
