// Package pokeapi is the PokéAPI client: fetch, normalize, and cache the
// species, pokemon, type, evolution, and encounter resources the UI reads.
// Every cacheable fetch makes at most one network round trip per identifier
// for the lifetime of the process.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pokedex/internal/logging"
)

// ErrNotFound marks a 404 from the API: the identifier does not exist.
// Not retryable and rendered with its own message.
var ErrNotFound = errors.New("pokemon not found")

// APIError is a non-404 HTTP failure, carrying the status code and the
// server-provided message when one could be parsed.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Client talks to PokéAPI. All fetches go through the session cache; the
// zero value is not usable, construct with New.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	log     *zap.Logger
}

// New creates a client for the given base URL (e.g. the public
// https://pokeapi.co/api/v2). timeout bounds every request; zero means the
// default 15 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   NewCache(),
		log:     logging.For(logging.CategoryAPI),
	}
}

// Cache exposes the session cache, mainly for tests and stats views.
func (c *Client) Cache() *Cache { return c.cache }

// getJSON performs one GET and decodes the response body into out,
// translating failures into the client's error taxonomy.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if json.Unmarshal(body, &msg) == nil {
			if msg.Message != "" {
				apiErr.Message = msg.Message
			} else {
				apiErr.Message = msg.Detail
			}
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	c.log.Debug("fetched", zap.String("url", url))
	return nil
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}
