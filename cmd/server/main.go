package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"social-service/internal/config"
	"social-service/internal/db"
	"social-service/internal/delivery/handler"
	"social-service/internal/infrastructure"
	"social-service/internal/repository"
	"social-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("mongo disconnect: ", err)
		}
	}()

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepo(client, database)
	postRepo := repository.NewPostRepo(database)
	tokens := infrastructure.NewTokenService(cfg.JWTSecret, infrastructure.DefaultTokenTTL)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo, postRepo)
	postUC := usecase.NewPostUsecase(postRepo, userRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))

	handler.RegisterRoutes(e,
		handler.NewAuthHandler(authUC),
		handler.NewUserHandler(userUC),
		handler.NewPostHandler(postUC),
		handler.RequireAuth(tokens, userRepo),
	)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal("shutting down the server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
