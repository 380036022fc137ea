package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterCatalogRoutes(g *echo.Group) {
	g.GET("/catalog/search", s.handleSearchCatalog)
}

// handleSearchCatalog godoc
// @Summary Search Catalog
// @Description Full-text search over movies imported into the local catalog
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results (1-100), default 20"
// @Success 200 {array} movie.Summary
// @Failure 400 {object} APIResponse
// @Failure 501 {object} APIResponse
// @Router /api/catalog/search [get]
func (s *Server) handleSearchCatalog(c echo.Context) error {
	if s.MovieService == nil {
		return errNotConfigured
	}

	var req SearchCatalogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	results, err := s.MovieService.SearchCatalog(c.Request().Context(), req.Q, req.LimitOrDefault())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, results)
}
