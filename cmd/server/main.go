package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-auth-service/internal/auth"
	"github.com/iliyamo/user-auth-service/internal/config"
	"github.com/iliyamo/user-auth-service/internal/database"
	"github.com/iliyamo/user-auth-service/internal/handler"
	"github.com/iliyamo/user-auth-service/internal/repository"
	"github.com/iliyamo/user-auth-service/internal/router"
	queue_publisher "github.com/iliyamo/user-auth-service/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	var users repository.UserRepository = repository.NewUserRepo(db)
	if rdb := config.NewRedisClient(); rdb != nil {
		users = repository.NewCachedUserRepo(users, rdb, time.Minute)
		log.Printf("redis cache enabled")
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatalf("tokens: %v", err)
	}

	svc := auth.NewService(
		users,
		auth.NewPasswordHasher(cfg.BcryptCost),
		tokens,
		time.Duration(cfg.AccessTTLMin)*time.Minute,
	)

	h := handler.NewAuthHandler(svc)
	h.PublishRegistered = queue_publisher.PublishUserRegistered

	e := echo.New()
	router.Register(e, h, svc)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
