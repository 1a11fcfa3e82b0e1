package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"timetable-server/api"
	"timetable-server/api/portal"
	"timetable-server/config"
	"timetable-server/dao/redis"
	"timetable-server/db"
	"timetable-server/render"
	"timetable-server/server"
	"timetable-server/server/handlers"
	services "timetable-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                    *config.Config
	RedisClient               db.RedisClient
	RedisTimetableDao         *redis.RedisTimetableDAO
	PortalAPI                 portal.PortalAPI
	TimetableService          *services.TimetableService
	Renderer                  render.Renderer
	TimetableHandler          *handlers.TimetableHandler
	MuxRouter                 *mux.Router
	Router                    *server.Router
	TimetableHttpServer       *server.TimetableHttpServer
	TimetableRefresherService *services.TimetableRefresherService
}

// NewContainer initializes and wires up all dependencies.
// Outside prod, redis and the portal are replaced by in-memory and fixture-backed mocks.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	var portalAPI portal.PortalAPI
	if cfg.IsProd() {
		log.Printf("Using redis at %s and portal at %s", cfg.RedisAddress, cfg.PortalEndpointBase)
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cacheClient, err := db.NewCacheRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClient = cacheClient
		portalAPI = portal.NewPortalApiClient(api.NewHTTPClient(cfg.PortalEndpointBase))
	} else {
		log.Printf("Using mock redis and mock portal api")
		redisClient = db.NewMockRedisClient(ctx)
		portalAPI = portal.NewPortalApiClientMock(config.GetResourcePath(config.STUDENT_SCHEDULE_RESOURCE))
	}

	// Initialize Redis Timetable DAO
	redisTimetableDao := redis.NewRedisTimetableDAO(redisClient)

	// Initialize service layer
	timetableService := services.NewTimetableService(redisTimetableDao, portalAPI)

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return nil, err
	}

	// Initialize timetable handler
	timetableHandler := handlers.NewTimetableHandler(timetableService, renderer, cfg.GroupName)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(timetableHandler, muxRouter)

	timetableHttpServer := server.NewTimetableHttpServer(router, muxRouter, cfg.HTTPAddress)

	timetableRefresherService := services.NewTimetableRefresherService(timetableService, cfg.Groups)

	return &Container{
		Config:                    cfg,
		RedisClient:               redisClient,
		RedisTimetableDao:         redisTimetableDao,
		PortalAPI:                 portalAPI,
		TimetableService:          timetableService,
		Renderer:                  renderer,
		TimetableHandler:          timetableHandler,
		MuxRouter:                 muxRouter,
		Router:                    router,
		TimetableHttpServer:       timetableHttpServer,
		TimetableRefresherService: timetableRefresherService,
	}, nil
}
