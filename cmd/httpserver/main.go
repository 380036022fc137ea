package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"moviefetch/httpserver"
	"moviefetch/movie"
	"moviefetch/pkg/config"
	"moviefetch/pkg/logger"
	"moviefetch/pkg/sentry"
	"moviefetch/postgres"
	"moviefetch/tmdb"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		slog.Error("Cannot build logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Errorw("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	fetcher := tmdb.New(tmdb.Options{
		BaseURL: cfg.Movies.BaseURL,
		APIKey:  cfg.Movies.APIKey,
		Logger:  log.Named("tmdb"),
	})

	var catalog movie.Catalog
	if cfg.HasDatabase() {
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			log.Errorw("Cannot open postgres connection", "error", err)
			sentry.WithExtras(map[string]interface{}{"db_host": cfg.DB.Host}).Fatal(err)
			os.Exit(1)
		}
		catalog = postgres.NewMovieRepository(db)
	} else {
		log.Warnw("catalog disabled, database is not configured")
	}

	server := httpserver.Default(cfg)
	server.Logger = log.Named("http")
	server.MovieService = movie.NewUsecase(fetcher, catalog)

	go func() {
		log.Infow("server started", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			sentry.WithExtras(map[string]interface{}{"addr": server.Addr}).Fatal(err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
	}
	log.Infow("server stopped")
}
