package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/DarkSword7/KodoMart/internal/config"
	"github.com/DarkSword7/KodoMart/internal/db"
	handlers "github.com/DarkSword7/KodoMart/internal/http/handler"
	"github.com/DarkSword7/KodoMart/internal/http/middleware"
	"github.com/DarkSword7/KodoMart/internal/repo"
	"github.com/DarkSword7/KodoMart/internal/service"
	"github.com/DarkSword7/KodoMart/internal/token"
)

func main() {
	ctx := context.Background()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// --- Mongo ---
	mdb, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.EnsureIndexes(ctx, mdb); err != nil {
		log.Fatal(err)
	}

	// --- Repos ---
	var userRepo repo.UserRepo = repo.NewUserRepoMongo(mdb)

	// Optional Redis read-through cache for the auth-gate lookup
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		userRepo = repo.NewUserRepoCached(userRepo, rdb)
		slog.Info("user cache enabled", "addr", cfg.RedisAddr)
	}

	// Optional admin seed
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := db.SeedAdmin(ctx, mdb, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Warn("admin seed failed", "error", err)
		}
	}

	// --- Services ---
	tokens := token.NewManager([]byte(cfg.JWTSecret))
	authSvc := service.NewAuthService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo)

	// --- HTTP ---
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	metrics := middleware.NewMetrics("kodomart")
	r.Use(metrics.Handler())
	metrics.RegisterEndpoint(r)

	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	authH := handlers.NewAuthHandler(authSvc, userSvc, cfg.CookieSecure)
	adminH := handlers.NewAdminHandler(userSvc)
	handlers.RegisterRoutes(r, authSvc, authH, adminH)

	slog.Info("listening", "addr", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
