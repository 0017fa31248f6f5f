package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/pump-maintenance/internal/config"
	"github.com/iliyamo/pump-maintenance/internal/database"
	"github.com/iliyamo/pump-maintenance/internal/handler"
	"github.com/iliyamo/pump-maintenance/internal/predictor"
	"github.com/iliyamo/pump-maintenance/internal/repository"
	"github.com/iliyamo/pump-maintenance/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	pumps := repository.NewPumpRepo(db)
	records := repository.NewMaintenanceRepo(db)
	lifecycle := repository.NewLifecycleRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	pumpH := handler.NewPumpHandler(pumps)
	maintH := handler.NewMaintenanceHandler(lifecycle, records)
	reportH := handler.NewReportHandler(lifecycle)
	predH := handler.NewPredictionHandler(predictor.NewScorer())

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, config.LoadRateLimitConfig(), rdb, cfg.JWTSecret)
	router.RegisterAPI(e, pumpH, maintH, reportH, predH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
