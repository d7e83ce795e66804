package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"tourism-server/api"
	"tourism-server/api/tourism"
	"tourism-server/config"
	"tourism-server/dao/redis"
	"tourism-server/db"
	"tourism-server/server"
	"tourism-server/server/handlers"
	services "tourism-server/service"
	"tourism-server/service/daterange"
	"tourism-server/service/route"
	"tourism-server/util"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	RedisClient             db.RedisClient
	RedisCatalogDao         *redis.RedisCatalogDAO
	RedisPresetDao          *redis.RedisPresetDAO
	TourismAPI              tourism.TourismAPI
	RouteClassifier         *route.Classifier
	RouteRepository         *route.Repository
	DateRangeResolver       *daterange.Resolver
	CatalogService          *services.CatalogService
	SuggestionService       *services.SuggestionService
	DashboardService        *services.DashboardService
	CatalogRefresherService *services.CatalogRefresherService
	MuxRouter               *mux.Router
	Router                  *server.Router
	TourismHttpServer       *server.TourismHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	logger = logger.With("component", "container")
	logger.Info("initializing container", "api_mock", cfg.APIMock, "redis_enabled", cfg.RedisEnabled)

	redisClient := newRedisClient(ctx, cfg, logger)

	redisCatalogDao := redis.NewRedisCatalogDAO(redisClient, logger)
	redisPresetDao := redis.NewRedisPresetDAO(redisClient)

	var tourismAPI tourism.TourismAPI
	if cfg.APIMock {
		logger.Info("using mock tourism api")
		tourismAPI = tourism.NewTourismApiClientMock()
	} else {
		logger.Info("using tourism api", "base_url", cfg.APIBaseURL)
		tourismAPI = tourism.NewTourismApiClient(api.NewHTTPClient(cfg.APIBaseURL, cfg.APITimeout))
	}

	routes, err := util.ReadRoutesFromJSON(config.GetResourcePath(config.ROUTES_RESOURCE))
	if err != nil {
		return nil, fmt.Errorf("load route dataset: %w", err)
	}
	routeClassifier := route.NewClassifier(cfg.HomeRegion)
	routeRepository := route.NewRepository(routeClassifier, routes, logger)

	dateRangeResolver := daterange.NewResolver(time.Now, time.Local, redisPresetDao, logger)

	catalogService := services.NewCatalogService(redisCatalogDao, logger)
	suggestionService := services.NewSuggestionService(catalogService, routeRepository, logger)
	dashboardService := services.NewDashboardService(dateRangeResolver, tourismAPI, logger)
	catalogRefresherService := services.NewCatalogRefresherService(redisCatalogDao, tourismAPI, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(server.Handlers{
		Route:     handlers.NewRouteHandler(routeClassifier, routeRepository, logger),
		Catalog:   handlers.NewCatalogHandler(catalogService, logger),
		Suggest:   handlers.NewSuggestHandler(suggestionService, cfg.SuggestLimit, logger),
		SuggestWS: handlers.NewSuggestWSHandler(suggestionService, cfg.SuggestDebounce, cfg.APITimeout, cfg.SuggestLimit, logger),
		DateRange: handlers.NewDateRangeHandler(dateRangeResolver, logger),
		Dashboard: handlers.NewDashboardHandler(dashboardService, logger),
		Health:    handlers.NewHealthHandler(redisClient, catalogService, logger),
	}, muxRouter)

	tourismHttpServer := server.NewTourismHttpServer(router, muxRouter, cfg, logger)

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisCatalogDao:         redisCatalogDao,
		RedisPresetDao:          redisPresetDao,
		TourismAPI:              tourismAPI,
		RouteClassifier:         routeClassifier,
		RouteRepository:         routeRepository,
		DateRangeResolver:       dateRangeResolver,
		CatalogService:          catalogService,
		SuggestionService:       suggestionService,
		DashboardService:        dashboardService,
		CatalogRefresherService: catalogRefresherService,
		MuxRouter:               muxRouter,
		Router:                  router,
		TourismHttpServer:       tourismHttpServer,
	}, nil
}

// newRedisClient connects to Redis, falling back to the in-memory client when
// Redis is disabled or unreachable.
func newRedisClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) db.RedisClient {
	if !cfg.RedisEnabled {
		logger.Info("redis disabled, using in-memory store")
		return db.NewMockRedisClient()
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient, err := db.NewGeoRedisClient(ctx, redisInternalClient, logger)
	if err != nil {
		logger.Warn("failed to connect to redis, using in-memory store", "addr", cfg.RedisAddr, "error", err)
		_ = redisInternalClient.Close()
		return db.NewMockRedisClient()
	}
	return redisClient
}
