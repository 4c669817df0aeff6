package bootstrap

import (
	"context"
	"log"

	"recipe-search-be/internal/config"
	"recipe-search-be/internal/controller"
	"recipe-search-be/internal/pkg/logger"
	"recipe-search-be/internal/service"
	"recipe-search-be/pkg/search"
	"recipe-search-be/pkg/session"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	SearchController  controller.ISearchController
	SessionController controller.ISessionController
	KeywordController controller.IKeywordController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Session Store
	// Redis is the primary store; an in-process cache keeps the
	// service usable when Redis is absent (dev, tests).
	var sessionStore session.Store
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory session store", err)
		sessionStore = session.NewMemoryStore()
	} else {
		sessionStore = session.NewRedisStore(rdb, sysLogger)
	}

	// 3. Backend Collaborator
	backendClient := search.NewClient(cfg.Backend.ModelServerURL)

	// 4. Services
	searchService := service.NewSearchService(sessionStore, backendClient, sysLogger)
	keywordService := service.NewKeywordService()

	// 5. Controllers
	return &Container{
		SearchController:  controller.NewSearchController(searchService),
		SessionController: controller.NewSessionController(searchService),
		KeywordController: controller.NewKeywordController(keywordService),
		Logger:            sysLogger,
	}
}
