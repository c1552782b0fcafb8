// Package tcg is the Pokémon TCG API client: card search filtered by name,
// type, rarity, and set, plus the cached set list for filter UIs.
package tcg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"pokedex/internal/logging"
)

// ErrNoAPIKey is returned before any network call when the API key is
// missing or still the placeholder. Not retryable; the UI shows setup help.
var ErrNoAPIKey = errors.New("tcg api key not configured")

// placeholderKeys are config values that mean "not configured".
var placeholderKeys = map[string]struct{}{
	"":             {},
	"YOUR_API_KEY": {},
	"changeme":     {},
}

// Rarities lists the card rarities offered as filters.
var Rarities = []string{
	"Common", "Uncommon", "Rare", "Rare Holo", "Rare Holo EX",
	"Rare Holo GX", "Rare Holo V", "Rare Holo VMAX", "Rare Ultra",
	"Rare Secret", "Rare Rainbow", "Amazing Rare", "Promo",
}

// Card is one trading card, trimmed to the fields the UI renders.
type Card struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Supertype string   `json:"supertype"`
	Subtypes  []string `json:"subtypes"`
	Types     []string `json:"types"`
	HP        string   `json:"hp"`
	Number    string   `json:"number"`
	Rarity    string   `json:"rarity"`
	Set       Set      `json:"set"`
	Images    struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"images"`
	TCGPlayer *struct {
		URL    string `json:"url"`
		Prices map[string]struct {
			Market float64 `json:"market"`
		} `json:"prices"`
	} `json:"tcgplayer"`
}

// MarketPrice returns the first available market price, or 0.
func (c Card) MarketPrice() float64 {
	if c.TCGPlayer == nil {
		return 0
	}
	for _, p := range c.TCGPlayer.Prices {
		if p.Market > 0 {
			return p.Market
		}
	}
	return 0
}

// Set is one card set.
type Set struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	ReleaseDate string `json:"releaseDate"`
	Total       int    `json:"total"`
}

// Query is the conjunction of card search filters.
type Query struct {
	Name   string
	Type   string // card energy type, e.g. "Lightning"
	Rarity string
	SetID  string
}

// String renders the query in the API's q= syntax. Name and rarity are
// quoted since both can contain spaces.
func (q Query) String() string {
	var parts []string
	if q.Name != "" {
		parts = append(parts, fmt.Sprintf("name:%q", q.Name))
	}
	if q.Type != "" {
		parts = append(parts, "types:"+q.Type)
	}
	if q.Rarity != "" {
		parts = append(parts, fmt.Sprintf("rarity:%q", q.Rarity))
	}
	if q.SetID != "" {
		parts = append(parts, "set.id:"+q.SetID)
	}
	return strings.Join(parts, " ")
}

type cardsResponse struct {
	Data       []Card `json:"data"`
	TotalCount int    `json:"totalCount"`
}

type setsResponse struct {
	Data []Set `json:"data"`
}

// Client talks to the Pokémon TCG API.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	http     *http.Client
	log      *zap.Logger

	setsMu sync.RWMutex
	sets   []Set // cached singleton set list
}

// New creates a client. The key precondition is checked per call, not
// here, so a client can be constructed before configuration is complete.
func New(baseURL, apiKey string, pageSize int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if pageSize <= 0 {
		pageSize = 24
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		http:     &http.Client{Timeout: timeout},
		log:      logging.For(logging.CategoryTCG),
	}
}

func (c *Client) checkKey() error {
	if _, bad := placeholderKeys[c.apiKey]; bad {
		return ErrNoAPIKey
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.checkKey(); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("card api error (status %d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("card api error (status %d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	c.log.Debug("fetched", zap.String("path", path))
	return nil
}

// Cards searches cards matching the query conjunction, ordered by set
// release date then card number.
func (c *Client) Cards(ctx context.Context, q Query) ([]Card, error) {
	params := url.Values{}
	if s := q.String(); s != "" {
		params.Set("q", s)
	}
	params.Set("orderBy", "-set.releaseDate,number")
	params.Set("pageSize", fmt.Sprint(c.pageSize))

	var resp cardsResponse
	if err := c.getJSON(ctx, "/cards", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Sets returns the set list, fetched once per session.
func (c *Client) Sets(ctx context.Context) ([]Set, error) {
	c.setsMu.RLock()
	cached := c.sets
	c.setsMu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	params := url.Values{}
	params.Set("orderBy", "-releaseDate")
	var resp setsResponse
	if err := c.getJSON(ctx, "/sets", params, &resp); err != nil {
		return nil, err
	}

	c.setsMu.Lock()
	c.sets = resp.Data
	c.setsMu.Unlock()
	return resp.Data, nil
}
