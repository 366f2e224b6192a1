package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/cache"
	"crosscast/infrastructure/clients/gemini"
	"crosscast/infrastructure/clients/googleauth"
	"crosscast/infrastructure/clients/simulated"
	"crosscast/infrastructure/clients/youtube"
	"crosscast/infrastructure/configuration"
	"crosscast/infrastructure/logger"
	"crosscast/infrastructure/persistence"
	"crosscast/infrastructure/realtime"
	handler "crosscast/interfaces/http"
	"crosscast/server"
	"crosscast/usecase"
)

func main() {
	configuration.LoadEnvFromFile(".env")
	configuration.LoadConfig()
	cfg := configuration.C

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := persistence.NewPostgreSQLDB(cfg.Database.Psql)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Failed to connect to PostgreSQL")
	}
	defer db.Close()
	if err := persistence.EnsureSchema(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Failed to ensure database schema")
	}

	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewOAuthTokenRepository(db)
	recordRepo := persistence.NewVideoRecordRepository(db)

	tokenProvider := googleauth.NewTokenProvider(cfg.YouTube, tokenRepo)

	// Real adapter for YouTube, simulated ones for platforms without a live
	// integration yet.
	simCfg := simulated.Config{
		MinDelay:    time.Duration(cfg.Publish.SimulatedMinDelayMs) * time.Millisecond,
		MaxDelay:    time.Duration(cfg.Publish.SimulatedMaxDelayMs) * time.Millisecond,
		SuccessRate: cfg.Publish.SimulatedSuccessRate,
	}
	adapters := []repository.IUploadAdapter{youtube.NewUploader(tokenProvider)}
	for _, p := range model.AllPlatforms() {
		if p == model.PlatformYouTube {
			continue
		}
		adapters = append(adapters, simulated.NewAdapter(p, simCfg))
	}

	hub := realtime.NewPublishHub()
	publishUsecase := usecase.NewPublishUsecase(
		adapters, tokenRepo, recordRepo,
		time.Duration(cfg.Publish.AdapterTimeoutSeconds)*time.Second,
	).WithBroadcaster(hub.BroadcastPublishStatus)

	if redisClient, err := cache.NewCache(cfg.RedisClient); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis unavailable, publish history will not be cached")
	} else {
		defer redisClient.Close()
		publishUsecase.WithHistoryCache(cache.NewHistoryCache(redisClient))
	}

	var suggester repository.ICaptionSuggester
	if cfg.Gemini.APIKey != "" {
		suggester = gemini.NewCaptionClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}
	captionUsecase := usecase.NewCaptionUsecase(suggester)
	userUsecase := usecase.NewUserUsecase(userRepo, cfg.App.SecretKey)

	router := server.NewRouter(
		cfg.App.SecretKey,
		handler.NewUserHandler(userUsecase),
		handler.NewPublishHandler(publishUsecase),
		handler.NewCaptionHandler(captionUsecase),
		handler.NewAuthHandler(tokenProvider, cfg.App.FrontendURL),
		hub,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.GetLogger().WithField("port", cfg.App.Port).Info("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Server exited with error")
	}
	logger.GetLogger().Info("Server stopped")
}
