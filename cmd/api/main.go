package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ladob/catalog-api/internal/api"
	"github.com/ladob/catalog-api/internal/core/domain"
	"github.com/ladob/catalog-api/internal/core/ports"
	"github.com/ladob/catalog-api/internal/core/service"
	"github.com/ladob/catalog-api/internal/infrastructure/config"
	mongodb "github.com/ladob/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ladob/catalog-api/internal/infrastructure/db/redis"
	"github.com/ladob/catalog-api/pkg/logger"
)

// @title        Ladob Catalog API
// @version      1.0
// @description  Backend of the Ladob music album catalog.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	users := mongodb.NewUserRepository(db)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)

	if err := seedAdmin(ctx, users, hasher, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("admin preload failed")
	}

	e := api.NewRouter(api.Deps{
		Users:  users,
		Genres: mongodb.NewGenreRepository(db),
		Hasher: hasher,
		Tokens: service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Log:    log,
		Mongo:  db,
		Redis:  rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin creates the initial ADMIN account when configured and missing.
func seedAdmin(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	exists, err := users.ExistsByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	_, err = users.Save(ctx, &domain.User{
		FirstName:    "Admin",
		LastName:     "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("admin account seeded")
	return nil
}
