// Package tmdb fetches movie pages from a TMDB compatible API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moviefetch/errs"
	"moviefetch/movie"
	"moviefetch/pkg/logger"
	"moviefetch/pkg/metrics"

	"go.uber.org/zap"
)

const (
	EndpointPopular = "popular"
	EndpointSearch  = "search"
)

// MaxPage is the last page the provider serves. Listings report a larger
// total_pages but requests past it are rejected.
const MaxPage = 500

// statusTransport labels metrics for calls that never got an HTTP status.
const statusTransport = "transport_error"

type Options struct {
	// BaseURL is prepended verbatim to every endpoint path, e.g. https://api.themoviedb.org/3
	BaseURL string

	APIKey string

	// HTTPClient defaults to a client without timeout. Bound calls through the context.
	HTTPClient *http.Client

	Logger *zap.SugaredLogger
}

// Client implements movie.Fetcher. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.SugaredLogger
}

func New(opts Options) *Client {
	c := &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		http:    opts.HTTPClient,
		logger:  opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = logger.NOOPLogger
	}
	return c
}

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status: %s - %s", e.Status, string(e.Body))
}

// PopularURL builds {base}/movie/popular?api_key={key}&page={page}.
func (c *Client) PopularURL(page int) string {
	return c.baseURL + "/movie/popular?api_key=" + url.QueryEscape(c.apiKey) +
		"&page=" + strconv.Itoa(page)
}

// SearchURL builds {base}/search/movie?api_key={key}&query={query}&page={page}.
// The query is percent-encoded.
func (c *Client) SearchURL(query string, page int) string {
	return c.baseURL + "/search/movie?api_key=" + url.QueryEscape(c.apiKey) +
		"&query=" + url.QueryEscape(query) +
		"&page=" + strconv.Itoa(page)
}

// RequestURL picks the endpoint for req and returns its label and full URL.
func (c *Client) RequestURL(req movie.Request) (string, string) {
	return c.requestURL(req.Normalize())
}

// requestURL expects a normalized request.
func (c *Client) requestURL(req movie.Request) (string, string) {
	if req.IsSearch() {
		return EndpointSearch, c.SearchURL(req.Query, req.Page)
	}
	return EndpointPopular, c.PopularURL(req.Page)
}

// FetchMovies issues one GET and returns the body as received. Any failure is
// logged once and returned unchanged. The logged error has the api_key stripped.
func (c *Client) FetchMovies(ctx context.Context, req movie.Request) (movie.Page, error) {
	req = req.Normalize()
	endpoint, requestURL := c.requestURL(req)

	start := time.Now()
	page, status, err := c.get(ctx, requestURL)
	metrics.RecordUpstream(endpoint, status, time.Since(start).Seconds())

	if err != nil {
		c.logger.Errorw("Error fetching movies",
			"endpoint", endpoint,
			"page", req.Page,
			"query", req.Query,
			"status", status,
			"error", errs.Redact(err),
		)
		return nil, err
	}

	return page, nil
}

func (c *Client) get(ctx context.Context, requestURL string) (movie.Page, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, statusTransport, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, statusTransport, err
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, status, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, status, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, status, err
	}

	return movie.Page(raw), status, nil
}
