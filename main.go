package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/longj724/Article-Pod-Backend/config"
	"github.com/longj724/Article-Pod-Backend/controllers"
	"github.com/longj724/Article-Pod-Backend/global"
	"github.com/longj724/Article-Pod-Backend/middlewares"
	"github.com/longj724/Article-Pod-Backend/router"
	"github.com/longj724/Article-Pod-Backend/services"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})
}

func main() {
	config.InitConfig()
	config.MigrateDB()
	cfg := config.AppConfig

	store, err := services.NewS3Store(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create object store")
	}
	synthesizer := services.NewOpenAISynthesizer(cfg.Speech.BaseURL, cfg.Speech.APIKey, cfg.Speech.Model)
	extractor := services.NewReadabilityExtractor(30 * time.Second)
	articles := services.NewArticleRepository(global.DB)

	pipeline := services.NewIngestionPipeline(extractor, synthesizer, store, articles)
	assembler := services.NewFeedAssembler(store, cfg.Feed)

	articleCtrl := controllers.NewArticleController(pipeline, assembler, articles, global.RedisDB)
	authCtrl := controllers.NewAuthController(global.DB, cfg.Auth.Secret)

	r := router.InitRouter(articleCtrl, authCtrl, middlewares.OptionalAuth(global.DB, cfg.Auth.Secret))

	port := cfg.App.Port
	if port == "" {
		port = ":8080"
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()
	log.Info().Str("addr", port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server exiting")
}
