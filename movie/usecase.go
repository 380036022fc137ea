package movie

import (
	"context"
	"strings"

	"moviefetch/errs"
	"moviefetch/pkg/metrics"
)

type Service interface {
	FetchMovies(ctx context.Context, req Request) (Page, error)
	SearchCatalog(ctx context.Context, query string, limit int) ([]Summary, error)
}

// Fetcher retrieves one page from the movie provider.
type Fetcher interface {
	FetchMovies(ctx context.Context, req Request) (Page, error)
}

// Catalog is the local store of movies imported from the provider.
type Catalog interface {
	Upsert(ctx context.Context, movies []Summary) (int, error)
	Search(ctx context.Context, query string, limit int) ([]Summary, error)
}

type ImportResult struct {
	Page       int
	TotalPages int
	Imported   int
}

type Usecase struct {
	f Fetcher
	c Catalog
}

// NewUsecase wires the provider fetcher and an optional catalog. c may be nil.
func NewUsecase(f Fetcher, c Catalog) *Usecase {
	return &Usecase{f: f, c: c}
}

// FetchMovies returns the provider page unchanged. Fetcher errors are returned as is.
func (uc *Usecase) FetchMovies(ctx context.Context, req Request) (Page, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return uc.f.FetchMovies(ctx, req)
}

func (uc *Usecase) SearchCatalog(ctx context.Context, query string, limit int) ([]Summary, error) {
	if uc.c == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "movie catalog not configured")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	return uc.c.Search(ctx, query, limit)
}

// ImportPage fetches one page and upserts its results into the catalog.
func (uc *Usecase) ImportPage(ctx context.Context, req Request) (ImportResult, error) {
	if uc.c == nil {
		return ImportResult{}, errs.Errorf(errs.ENOTIMPLEMENTED, "movie catalog not configured")
	}

	page, err := uc.FetchMovies(ctx, req)
	if err != nil {
		return ImportResult{}, err
	}

	listing, err := page.Listing()
	if err != nil {
		return ImportResult{}, err
	}

	n, err := uc.c.Upsert(ctx, listing.Results)
	if err != nil {
		return ImportResult{}, err
	}
	metrics.RecordImported(n)

	return ImportResult{
		Page:       listing.Page,
		TotalPages: listing.TotalPages,
		Imported:   n,
	}, nil
}
