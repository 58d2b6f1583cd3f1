package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thegridly/authsvc/internal/config"
	httpx "github.com/thegridly/authsvc/internal/http"
	"github.com/thegridly/authsvc/internal/http/handlers"
	"github.com/thegridly/authsvc/internal/infrastructure/identity"
	"github.com/thegridly/authsvc/internal/infrastructure/repositories"
	"github.com/thegridly/authsvc/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}

	// Infrastructure
	gateway := identity.NewGateway(cfg.IdentityBaseURL, cfg.IdentityAPIKey, cfg.IdentityTimeout)
	profileRepo := repositories.NewProfileRepository(mongoClient.Database(cfg.MongoDatabase))
	sessionStore := repositories.NewSessionStore(rdb, cfg.SessionKey)

	// Orchestration
	authSvc := services.NewAuthService(gateway, profileRepo, sessionStore)

	// HTTP surface
	authH := handlers.NewAuthHandlers(authSvc)
	r := httpx.BuildRouter(authH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
