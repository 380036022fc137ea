package httpserver

import (
	"errors"
	"net/http"

	"moviefetch/errs"
	"moviefetch/movie"

	"github.com/labstack/echo/v4"
)

var errNotConfigured = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleFetchMovies)
	g.GET("/movies/popular", s.handlePopularMovies)
	g.GET("/movies/search", s.handleSearchMovies)
}

// handleFetchMovies godoc
// @Summary Fetch Movies
// @Description Popular movies when query is empty, search results otherwise. The provider body is returned unchanged.
// @Tags movies
// @Produce json
// @Param page query int false "Page (>= 1), default 1"
// @Param query query string false "Search text"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 502 {object} APIResponse
// @Router /api/movies [get]
func (s *Server) handleFetchMovies(c echo.Context) error {
	var req FetchMoviesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return s.fetchMovies(c, req.ToRequest())
}

// handlePopularMovies godoc
// @Summary Popular Movies
// @Tags movies
// @Produce json
// @Param page query int false "Page (>= 1), default 1"
// @Success 200 {object} APIResponse
// @Router /api/movies/popular [get]
func (s *Server) handlePopularMovies(c echo.Context) error {
	var req PopularMoviesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return s.fetchMovies(c, movie.Request{Page: req.Page})
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Tags movies
// @Produce json
// @Param query query string true "Search text"
// @Param page query int false "Page (>= 1), default 1"
// @Success 200 {object} APIResponse
// @Router /api/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	var req SearchMoviesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return s.fetchMovies(c, movie.Request{Page: req.Page, Query: req.Query})
}

func (s *Server) fetchMovies(c echo.Context, req movie.Request) error {
	if s.MovieService == nil {
		return errNotConfigured
	}

	page, err := s.MovieService.FetchMovies(c.Request().Context(), req)
	if err != nil {
		var appErr *errs.Error
		if errors.As(err, &appErr) {
			return err
		}
		return errs.Wrap(errs.Redact(err), errs.EUNAVAILABLE, "movie provider unavailable")
	}

	return writeSuccess(c, http.StatusOK, page)
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid query parameters")
	}
	return c.Validate(req)
}
