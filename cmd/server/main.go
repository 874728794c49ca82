package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"taskboard/docs"

	"taskboard/internal/auth"
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/router"
	"taskboard/internal/service"
)

// @title Task Board API
// @version 1.0
// @description Task management API with JWT authentication and ownership-scoped task CRUD.
// @host localhost:8080
// @BasePath /v1
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
// @description Bearer token issued by /auth/login, sent as-is in the "token" header.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Status{},
		&model.Task{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	statusRepo := repository.NewStatusRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher()

	// Services
	authService := service.NewAuthService(userRepo, jwtService, hasher)
	taskService := service.NewTaskService(taskRepo, statusRepo, cacheClient)
	statusService := service.NewStatusService(statusRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	statusHandler := handler.NewStatusHandler(statusService)

	router.Register(e, jwtService, userRepo, authHandler, taskHandler, statusHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("swagger documentation at http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
