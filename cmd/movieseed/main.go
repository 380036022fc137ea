package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"moviefetch/errs"
	"moviefetch/movie"
	"moviefetch/pkg/config"
	"moviefetch/pkg/logger"
	"moviefetch/postgres"
	"moviefetch/tmdb"
)

func main() {
	var (
		query string
		start int
		pages int
	)

	flag.StringVar(&query, "query", "", "Search text (empty = popular movies)")
	flag.IntVar(&start, "start", 1, "First page to import")
	flag.IntVar(&pages, "pages", 5, "Number of pages to import (0 = until the last page)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		slog.Error("build logger failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	uc := movie.NewUsecase(
		tmdb.New(tmdb.Options{
			BaseURL: cfg.Movies.BaseURL,
			APIKey:  cfg.Movies.APIKey,
			Logger:  log.Named("tmdb"),
		}),
		postgres.NewMovieRepository(db),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	count, err := importPages(ctx, uc, query, start, pages)
	if err != nil {
		slog.Error("import failed", "error", err, "imported", count)
		os.Exit(1)
	}

	slog.Info("import completed", "movies", count)
}

type pageImporter interface {
	ImportPage(ctx context.Context, req movie.Request) (movie.ImportResult, error)
}

// importPages walks pages [start, start+pages) and stops early after the last
// page the provider serves.
func importPages(ctx context.Context, imp pageImporter, query string, start, pages int) (int, error) {
	if start < 1 {
		return 0, movie.ErrInvalidPage
	}

	count := 0
	for page := start; page <= tmdb.MaxPage && (pages <= 0 || page < start+pages); page++ {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		result, err := imp.ImportPage(ctx, movie.Request{Page: page, Query: query})
		if err != nil {
			return count, fmt.Errorf("page %d: %w", page, errs.Redact(err))
		}
		count += result.Imported
		slog.Info("page imported", "page", page, "movies", result.Imported, "total_pages", result.TotalPages)

		if page >= min(result.TotalPages, tmdb.MaxPage) {
			break
		}
	}

	return count, nil
}
