package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"breakeven/server/config"
	"breakeven/server/internal/api"
	"breakeven/server/internal/cache"
	"breakeven/server/internal/database"
	"breakeven/server/internal/tracing"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.Telemetry.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("level", cfg.Telemetry.LogLevel).Warn("Unknown log level, keeping info")
	}

	if err := tracing.Init(cfg.Telemetry.ServiceName, cfg.Telemetry.OTELEndpoint, logger); err != nil {
		logger.WithError(err).Warn("Failed to initialize tracing, continuing without it")
	}

	if cfg.Presets.Path != "" {
		if err := config.LoadPresets(cfg.Presets.Path); err != nil {
			logger.WithError(err).Warn("Failed to load presets file, keeping built-in presets")
		}
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.WithError(err).Fatal("Failed to create database directory")
		}
	}

	logger.Infof("Using database at: %s", cfg.Database.Path)
	db, err := database.NewDatabase(cfg.Database.Path, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var store cache.Cache
	if cfg.Cache.RedisAddr != "" {
		redis := cache.NewRedis(cfg.Cache.RedisAddr, ttl)
		if err := redis.Ping(); err != nil {
			logger.WithError(err).Warn("Redis unreachable, falling back to in-memory cache")
		} else {
			logger.Infof("Using redis cache at %s", cfg.Cache.RedisAddr)
			store = redis
		}
	}
	if store == nil {
		memory := cache.NewMemory(ttl)
		store = memory
		if ttl > 0 {
			janitor := cache.NewJanitor(memory, time.Minute, logger)
			janitor.Start()
			defer janitor.Stop()
		}
	}

	handler := api.NewHandler(db, logger, store, cfg.ValidationLimits())

	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, handler, cfg)

	logger.Infof("Starting server on port %d", cfg.HTTP.Port)
	if err := router.Run(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
