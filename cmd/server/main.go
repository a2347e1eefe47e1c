package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "qaforum/docs" // swagger docs

	"qaforum/internal/auth"
	"qaforum/internal/cache"
	"qaforum/internal/config"
	"qaforum/internal/db"
	"qaforum/internal/handler"
	"qaforum/internal/model"
	"qaforum/internal/repository"
	"qaforum/internal/router"
	"qaforum/internal/service"
)

// @title Q&A Forum API
// @version 1.0
// @description Question-and-answer forum API with JWT authentication.
// @host localhost:3003
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.PoolConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Schema setup is all-or-nothing: do not serve traffic on a partial schema.
	if err := db.Migrate(gormDB,
		&model.User{},
		&model.Question{},
		&model.Answer{},
	); err != nil {
		log.Fatalf("schema setup: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService, service.NewPasswordValidator())
	questionService := service.NewQuestionService(questionRepo, cacheClient)
	answerService := service.NewAnswerService(answerRepo, questionRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)

	// Register routes
	router.Register(e, jwtService, userHandler, questionHandler, answerHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
