package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/config"
	"github.com/iliyamo/habit-tracker/internal/database"
	"github.com/iliyamo/habit-tracker/internal/handler"
	"github.com/iliyamo/habit-tracker/internal/middleware"
	"github.com/iliyamo/habit-tracker/internal/queue"
	"github.com/iliyamo/habit-tracker/internal/repository"
	"github.com/iliyamo/habit-tracker/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	habits := repository.NewHabitRepo(db)
	logs := repository.NewHabitLogRepo(db)
	categories := repository.NewCategoryRepo(db)
	quotes := repository.NewQuoteRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	userH := handler.NewUserHandler(cfg, users)
	habitH := handler.NewHabitHandler(habits, logs)
	logH := handler.NewLogHandler(habits, logs)
	statsH := handler.NewStatsHandler(habits, logs)
	catH := handler.NewCategoryHandler(categories)
	quoteH := handler.NewQuoteHandler(quotes)

	e := echo.New()

	// Redis backs both the token-bucket rate limiter and the response
	// cache.  When Redis is unreachable the client is nil and both
	// features degrade to no-ops; the API stays up.
	rdb := config.NewRedisClient()
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled && rdb != nil {
		e.Use(middleware.NewTokenBucket(rlCfg, rdb))
	}
	var cacheMW []echo.MiddlewareFunc
	cacheCfg := config.LoadCacheConfig()
	if cacheCfg.Enabled && rdb != nil {
		cacheMW = append(cacheMW, middleware.NewRedisCache(cacheCfg, rdb))
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, catH, quoteH)
	router.RegisterMember(e, habitH, logH, cfg.JWTSecret)
	router.RegisterStats(e, statsH, cfg.JWTSecret, cacheMW...)
	router.RegisterAdmin(e, userH, catH, quoteH, logH, cfg.JWTSecret)
	router.RegisterUserSelf(e, userH, cfg.JWTSecret)

	// Drain habit.checkin events in the background.  The consumer
	// reconnects on broker failures and never takes the API down.
	go func() {
		if err := queue.StartCheckInConsumer(); err != nil {
			log.Printf("checkin consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
