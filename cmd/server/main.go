package main

import (
	"context"
	"log"
	"net/http"

	_ "devconnector/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"devconnector/internal/auth"
	"devconnector/internal/cache"
	"devconnector/internal/config"
	"devconnector/internal/db"
	"devconnector/internal/handler"
	"devconnector/internal/repository"
	"devconnector/internal/router"
	"devconnector/internal/service"
)

// @title DevConnector API
// @version 1.0
// @description Developer social network API with profiles, posts and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	database := client.Database(cfg.MongoDB)

	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	postRepo := repository.NewPostRepository(database)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	profileService := service.NewProfileService(profileRepo, userRepo, cacheClient)
	postService := service.NewPostService(postRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)

	// Register routes
	router.Register(e, cfg, userRepo, userHandler, profileHandler, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
