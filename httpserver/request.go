package httpserver

import (
	"moviefetch/movie"
)

const defaultCatalogLimit = 20

type FetchMoviesRequest struct {
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Query string `query:"query" validate:"max=500"`
}

func (r FetchMoviesRequest) ToRequest() movie.Request {
	return movie.Request{
		Page:  r.Page,
		Query: r.Query,
	}
}

type PopularMoviesRequest struct {
	Page int `query:"page" validate:"omitempty,min=1"`
}

type SearchMoviesRequest struct {
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Query string `query:"query" validate:"required,max=500"`
}

type SearchCatalogRequest struct {
	Q     string `query:"q" validate:"required,notblank,max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r SearchCatalogRequest) LimitOrDefault() int {
	if r.Limit == 0 {
		return defaultCatalogLimit
	}
	return r.Limit
}
