package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// CatalogFetcher defines the catalog operations the rest of the
// application depends on. Implemented by *Client; test doubles implement
// it to exercise workflows without the network.
type CatalogFetcher interface {
	Trending(ctx context.Context, page int) (*MoviePage, error)
	Popular(ctx context.Context, page int) (*MoviePage, error)
	TopRated(ctx context.Context, page int) (*MoviePage, error)
	Search(ctx context.Context, query string, page int) (*MoviePage, error)
	Details(ctx context.Context, movieID int64) (*MovieDetails, error)
	Videos(ctx context.Context, movieID int64) (*VideoList, error)
	Credits(ctx context.Context, movieID int64) (*Credits, error)
}

// Ensure Client implements CatalogFetcher at compile time.
var _ CatalogFetcher = (*Client)(nil)

// Client talks to the movie catalog HTTP API.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	accessToken string
	userAgent   string
	limiter     *rate.Limiter
	logger      *slog.Logger
}

const (
	defaultBaseURL   = "https://api.themoviedb.org/3"
	defaultUserAgent = "streambox/0.1"
	requestTimeout   = 10 * time.Second

	// The catalog allows roughly 50 requests per second per client;
	// stay comfortably under it.
	requestsPerSecond = 40
)

// NewClient builds a Client for the given base URL. An empty baseURL uses
// the public catalog endpoint. accessToken is sent as a bearer credential
// on every request.
func NewClient(baseURL, accessToken string, logger *slog.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		accessToken: strings.TrimSpace(accessToken),
		userAgent:   defaultUserAgent,
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		logger:      logger,
	}, nil
}

// Trending retrieves this week's trending movies.
func (c *Client) Trending(ctx context.Context, page int) (*MoviePage, error) {
	return c.fetchPage(ctx, "/trending/movie/week", nil, page, "failed to fetch trending movies")
}

// Popular retrieves the popular movies list.
func (c *Client) Popular(ctx context.Context, page int) (*MoviePage, error) {
	return c.fetchPage(ctx, "/movie/popular", nil, page, "failed to fetch popular movies")
}

// TopRated retrieves the top rated movies list.
func (c *Client) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	return c.fetchPage(ctx, "/movie/top_rated", nil, page, "failed to fetch top rated movies")
}

// Search finds movies matching the query.
func (c *Client) Search(ctx context.Context, query string, page int) (*MoviePage, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, errors.New("search query is empty")
	}
	values := url.Values{}
	values.Set("query", trimmed)
	return c.fetchPage(ctx, "/search/movie", values, page, "failed to search movies")
}

// Details retrieves the full record for one movie with credits, videos and
// similar movies appended in a single request.
func (c *Client) Details(ctx context.Context, movieID int64) (*MovieDetails, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	values := url.Values{}
	values.Set("append_to_response", "credits,videos,similar")
	rel := &url.URL{Path: "/movie/" + strconv.FormatInt(movieID, 10), RawQuery: values.Encode()}
	var payload MovieDetails
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return nil, c.normalize("failed to fetch movie details", rel, err)
	}
	return &payload, nil
}

// Videos retrieves trailers and clips for one movie.
func (c *Client) Videos(ctx context.Context, movieID int64) (*VideoList, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	rel := &url.URL{Path: "/movie/" + strconv.FormatInt(movieID, 10) + "/videos"}
	var payload VideoList
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return nil, c.normalize("failed to fetch movie videos", rel, err)
	}
	return &payload, nil
}

// Credits retrieves the cast and crew for one movie.
func (c *Client) Credits(ctx context.Context, movieID int64) (*Credits, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	rel := &url.URL{Path: "/movie/" + strconv.FormatInt(movieID, 10) + "/credits"}
	var payload Credits
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return nil, c.normalize("failed to fetch movie credits", rel, err)
	}
	return &payload, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, values url.Values, page int, failure string) (*MoviePage, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	if values == nil {
		values = url.Values{}
	}
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	var payload MoviePage
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return nil, c.normalize(failure, rel, err)
	}
	return &payload, nil
}

// normalize collapses any transport or decode failure into a short generic
// error. The underlying detail is logged, never returned: callers display
// these messages verbatim.
func (c *Client) normalize(message string, rel *url.URL, err error) error {
	c.logger.Debug("catalog request failed", "path", rel.Path, "error", err)
	return errors.New(message)
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + rel.Path
	reqURL.RawQuery = rel.RawQuery
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
