package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "tripplanner/docs" // swagger docs

	"tripplanner/internal/auth"
	"tripplanner/internal/cache"
	"tripplanner/internal/config"
	"tripplanner/internal/db"
	"tripplanner/internal/handler"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
	"tripplanner/internal/router"
	"tripplanner/internal/service"
)

// @title Trip Planner API
// @version 1.0
// @description Trip-logging API with JWT authentication, owner-scoped trips, and admin user management.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Trip{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)

	authService := service.NewAuthService(userRepo, jwtService)
	tripService := service.NewTripService(tripRepo, cacheClient)
	adminService := service.NewAdminService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	adminHandler := handler.NewAdminHandler(adminService)

	e := echo.New()
	router.Register(e, cfg, authHandler, tripHandler, adminHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("starting server on %s (env: %s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
