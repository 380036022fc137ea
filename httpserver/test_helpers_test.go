package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"moviefetch/httpserver"
	"moviefetch/movie"
	"moviefetch/pkg/config"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) FetchMovies(ctx context.Context, req movie.Request) (movie.Page, error) {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(movie.Page)
	return page, args.Error(1)
}

func (m *MockMovieService) SearchCatalog(ctx context.Context, query string, limit int) ([]movie.Summary, error) {
	args := m.Called(ctx, query, limit)
	movies, _ := args.Get(0).([]movie.Summary)
	return movies, args.Error(1)
}

func newServerWithMovieService() (*httpserver.Server, *MockMovieService) {
	server := httpserver.Default(testConfig())
	svc := new(MockMovieService)
	server.MovieService = svc
	return server, svc
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeAPIResult(t *testing.T, result interface{}, out interface{}) {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// rawResult returns the "result" member of the response body exactly as written.
func rawResult(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Result
}
