// Package statsbomb fetches record lists from StatsBomb's open-data
// endpoints, reading through the response cache. One attempt per fetch,
// no retries: a failed GET is the caller's signal to degrade to an empty
// table for that request.
package statsbomb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/esanchezmex/statsbomb-viz/internal/cache"
)

// Client handles open-data API requests
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      cache.Store
	userAgent  string
}

// New creates a new open-data client backed by the given cache store.
func New(baseURL string, timeout time.Duration, store cache.Store) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		store:     store,
		userAgent: "statsbomb-viz/1.0",
	}
}

// Competitions fetches the competitions list.
func (c *Client) Competitions(ctx context.Context) ([]map[string]any, error) {
	return c.fetchList(ctx, "competitions", fmt.Sprintf("%s/competitions.json", c.baseURL))
}

// Matches fetches the match list for a competition season.
func (c *Client) Matches(ctx context.Context, competitionID, seasonID int) ([]map[string]any, error) {
	key := fmt.Sprintf("matches_%d_%d", competitionID, seasonID)
	url := fmt.Sprintf("%s/matches/%d/%d.json", c.baseURL, competitionID, seasonID)
	return c.fetchList(ctx, key, url)
}

// Events fetches the event list for a match.
func (c *Client) Events(ctx context.Context, matchID int) ([]map[string]any, error) {
	key := fmt.Sprintf("events_%d", matchID)
	url := fmt.Sprintf("%s/events/%d.json", c.baseURL, matchID)
	return c.fetchList(ctx, key, url)
}

// Lineups fetches the lineup list for a match.
func (c *Client) Lineups(ctx context.Context, matchID int) ([]map[string]any, error) {
	key := fmt.Sprintf("lineups_%d", matchID)
	url := fmt.Sprintf("%s/lineups/%d.json", c.baseURL, matchID)
	return c.fetchList(ctx, key, url)
}

// fetchList returns the record list for key, from cache when possible,
// otherwise with a single GET. Fresh responses are written back to the
// cache; a cache write failure is logged but does not fail the fetch.
func (c *Client) fetchList(ctx context.Context, key, url string) ([]map[string]any, error) {
	if data, ok := c.store.Get(ctx, key); ok {
		var records []map[string]any
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
		log.Printf("[statsbomb] undecodable cache entry for %s, refetching", key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-data error: status=%d, url=%s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if err := c.store.Set(ctx, key, data); err != nil {
		log.Printf("[statsbomb] error caching %s: %v", key, err)
	}

	log.Printf("[statsbomb] fetched %d records for %s", len(records), key)
	return records, nil
}
