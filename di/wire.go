//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"safar/config"
	"safar/infras/jwt"
	"safar/infras/kafka"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/infras/redis"
	"safar/shared/identifier"
	"safar/shared/kvstore"
	"safar/transport/http"
	"safar/transport/http/middleware"
	"safar/transport/http/router"

	adminService "safar/internal/domains/admin/service"
	authService "safar/internal/domains/auth/service"
	bookingRepository "safar/internal/domains/booking/repository"
	bookingService "safar/internal/domains/booking/service"
	contactRepository "safar/internal/domains/contact/repository"
	contactService "safar/internal/domains/contact/service"
	packagesRepository "safar/internal/domains/packages/repository"
	packagesService "safar/internal/domains/packages/service"
	userRepository "safar/internal/domains/user/repository"

	adminHandler "safar/internal/handlers/admin"
	authHandler "safar/internal/handlers/auth"
	bookingHandler "safar/internal/handlers/booking"
	contactHandler "safar/internal/handlers/contact"
	packagesHandler "safar/internal/handlers/packages"
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
	middleware.NewApp,
	middleware.NewAuth,
	middleware.NewLimiter,
)

var sharedHelpers = wire.NewSet(
	kvstore.New,
	identifier.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var packagesDomain = wire.NewSet(
	packagesRepository.New,
	packagesService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	contactDomain,
	packagesDomain,
	bookingDomain,
	adminDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	contactHandler.New,
	packagesHandler.New,
	bookingHandler.New,
	adminHandler.New,
	authHandler.New,
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
