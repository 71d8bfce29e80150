package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/config"
	"github.com/5hjiwoo/foodrecommend/logger"
	"github.com/5hjiwoo/foodrecommend/routes"
	"github.com/5hjiwoo/foodrecommend/services"
	"github.com/5hjiwoo/foodrecommend/utils"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	var (
		storage   utils.Storage
		mediaRoot string
	)
	switch cfg.StorageBackend {
	case "s3":
		storage, err = utils.NewS3Storage(ctx, cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
	default:
		storage, err = utils.NewLocalStorage(cfg.MediaRoot, cfg.MediaURL)
		mediaRoot = cfg.MediaRoot
	}
	if err != nil {
		logger.Error("Failed to initialise storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}

	var rek *services.RekognitionService
	if cfg.RekognitionEnabled {
		rek, err = services.NewRekognitionService(ctx, cfg.AWSRegion)
		if err != nil {
			logger.Error("Failed to initialise Rekognition", "error", err)
			os.Exit(1)
		}
	}

	enricher := services.NewOpenAIEnricher(services.OpenAIConfig{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		ChatModel:  cfg.OpenAIChatModel,
		ImageModel: cfg.OpenAIImageModel,
	})

	hub := services.NewRealtimeHub()
	users := services.NewUserService(db, []byte(cfg.JWTSecret), cfg.JWTTTL)
	meals := services.NewMealService(db)
	images := services.NewImageService(db, storage)
	food := services.NewFoodService(enricher, images, meals, rek, hub)

	r := routes.SetupRouter(routes.Deps{
		Users:       users,
		Meals:       meals,
		Images:      images,
		Food:        food,
		Realtime:    hub,
		JWTSecret:   []byte(cfg.JWTSecret),
		CORSOrigins: cfg.CORSOrigins,
		MediaRoot:   mediaRoot,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
