//go:build wireinject
// +build wireinject

package di

import (
	"lagoon/config"
	"lagoon/infras/jwt"
	"lagoon/infras/kafka"
	"lagoon/infras/otel"
	"lagoon/infras/postgres"
	"lagoon/infras/redis"
	"lagoon/infras/s3"
	"lagoon/permissions"
	"lagoon/shared/cache"
	"lagoon/shared/watch"
	"lagoon/transport/http"
	"lagoon/transport/http/middleware"
	"lagoon/transport/http/router"

	auditlogRepository "lagoon/internal/domains/auditlog/repository"
	auditlogService "lagoon/internal/domains/auditlog/service"
	authService "lagoon/internal/domains/auth/service"
	bookingRepository "lagoon/internal/domains/booking/repository"
	bookingService "lagoon/internal/domains/booking/service"
	facilityRepository "lagoon/internal/domains/facility/repository"
	facilityService "lagoon/internal/domains/facility/service"
	favoriteRepository "lagoon/internal/domains/favorite/repository"
	favoriteService "lagoon/internal/domains/favorite/service"
	galleryRepository "lagoon/internal/domains/gallery/repository"
	galleryService "lagoon/internal/domains/gallery/service"
	reviewRepository "lagoon/internal/domains/review/repository"
	reviewService "lagoon/internal/domains/review/service"
	userRepository "lagoon/internal/domains/user/repository"
	userService "lagoon/internal/domains/user/service"

	auditlogHandler "lagoon/internal/handlers/auditlog"
	authHandler "lagoon/internal/handlers/auth"
	bookingHandler "lagoon/internal/handlers/booking"
	facilityHandler "lagoon/internal/handlers/facility"
	favoriteHandler "lagoon/internal/handlers/favorite"
	galleryHandler "lagoon/internal/handlers/gallery"
	healthHandler "lagoon/internal/handlers/health"
	reviewHandler "lagoon/internal/handlers/review"
	userHandler "lagoon/internal/handlers/user"

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
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	watch.NewRedisWatcher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var favoriteDomain = wire.NewSet(
	favoriteRepository.New,
	favoriteService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var auditlogDomain = wire.NewSet(
	auditlogRepository.New,
	auditlogService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	facilityDomain,
	bookingDomain,
	reviewDomain,
	favoriteDomain,
	galleryDomain,
	auditlogDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	facilityHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	favoriteHandler.New,
	galleryHandler.New,
	auditlogHandler.New,
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
