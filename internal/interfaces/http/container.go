package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appauth "tavolo/internal/application/auth"
	appplan "tavolo/internal/application/plan"
	appreservation "tavolo/internal/application/reservation"
	apprestaurant "tavolo/internal/application/restaurant"
	appsubscription "tavolo/internal/application/subscription"
	"tavolo/internal/domain/access"
	"tavolo/internal/infrastructure/auth"
	"tavolo/internal/infrastructure/cache"
	"tavolo/internal/infrastructure/config"
	"tavolo/internal/infrastructure/repository"
	"tavolo/internal/interfaces/http/handlers"
	"tavolo/internal/interfaces/http/middleware"
	"tavolo/internal/shared/logger"
)

// Container wires repositories, the access engine, application services and
// handlers. Built once at startup.
type Container struct {
	cfg *config.Config
	log logger.Interface

	redisClient *redis.Client

	authMiddleware   *middleware.AuthMiddleware
	accessMiddleware *middleware.AccessMiddleware

	authHandler         *handlers.AuthHandler
	restaurantHandler   *handlers.RestaurantHandler
	settingsHandler     *handlers.SettingsHandler
	reservationHandler  *handlers.ReservationHandler
	publicHandler       *handlers.PublicHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
}

// NewContainer builds the full dependency graph on top of the database
// connection. When caching is enabled the access engine's store reads go
// through Redis; otherwise they hit the repositories directly.
func NewContainer(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{cfg: cfg, log: log}

	restaurantRepo := repository.NewRestaurantRepository(db, log)
	reservationRepo := repository.NewReservationRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	directory := repository.NewTenantDirectory(restaurantRepo, reservationRepo)

	var (
		toggleStore        access.ToggleStore        = restaurantRepo
		subscriptionStore  access.SubscriptionStore  = subscriptionRepo
		toggleInvalidator  apprestaurant.ToggleCacheInvalidator
		billingInvalidator appsubscription.CacheInvalidator
	)

	if cfg.Cache.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return nil, err
		}
		c.redisClient = client
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

		cachedToggles := cache.NewRedisToggleStore(c.redisClient, restaurantRepo, ttl, log)
		cachedSubscriptions := cache.NewRedisSubscriptionStore(c.redisClient, subscriptionRepo, ttl, log)

		toggleStore = cachedToggles
		subscriptionStore = cachedSubscriptions
		toggleInvalidator = cachedToggles
		billingInvalidator = cachedSubscriptions
	}

	table := access.NewEntitlementTable()
	engine := access.NewEngine(
		access.NewClassifier(access.DefaultRouteRules()),
		access.NewTenantResolver(directory, log),
		access.NewToggleGate(toggleStore, log),
		access.NewEntitlementGate(subscriptionStore, table, log),
		log,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)

	authService := appauth.NewService(userRepo, jwtService, hasher, log)
	restaurantService := apprestaurant.NewService(restaurantRepo, toggleInvalidator, log)
	reservationService := appreservation.NewService(reservationRepo, restaurantRepo, log)
	planService := appplan.NewService(table, subscriptionStore, toggleStore, log)
	subscriptionService := appsubscription.NewService(subscriptionRepo, billingInvalidator, log)

	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, log)
	c.accessMiddleware = middleware.NewAccessMiddleware(engine, log)

	c.authHandler = handlers.NewAuthHandler(authService, log)
	c.restaurantHandler = handlers.NewRestaurantHandler(restaurantService, log)
	c.settingsHandler = handlers.NewSettingsHandler(restaurantService, log)
	c.reservationHandler = handlers.NewReservationHandler(reservationService, log)
	c.publicHandler = handlers.NewPublicHandler(restaurantService, reservationService, log)
	c.planHandler = handlers.NewPlanHandler(planService, log)
	c.subscriptionHandler = handlers.NewSubscriptionHandler(subscriptionService, log)

	return c, nil
}

// Close releases the container's external connections
func (c *Container) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.GetAddr(),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established")

	return client, nil
}
