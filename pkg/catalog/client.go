// Package catalog is a thin client for the OMDb movie catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotConfigured is returned when no API key is set. Callers are expected
// to degrade to an empty result set instead of failing the request.
var ErrNotConfigured = errors.New("catalog API key not configured")

// Movie is the normalized shape of a catalog record.
type Movie struct {
	Title  string
	Year   string
	ImdbID string
	Poster string
}

// DetailURL returns the public detail page for a catalog record.
func (m Movie) DetailURL() string {
	return fmt.Sprintf("https://www.imdb.com/title/%s/", m.ImdbID)
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// searchResponse mirrors the OMDb search envelope. "Response" is the string
// "True"/"False"; "False" with an Error of "Movie not found!" is a no-match,
// not a failure.
type searchResponse struct {
	Search []struct {
		Title  string `json:"Title"`
		Year   string `json:"Year"`
		ImdbID string `json:"imdbID"`
		Poster string `json:"Poster"`
	} `json:"Search"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

type titleResponse struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	ImdbID   string `json:"imdbID"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Search looks up catalog records matching a free-text title query.
// A no-match answer yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, title string) ([]Movie, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var resp searchResponse
	if err := c.get(ctx, url.Values{"s": {title}}, &resp); err != nil {
		return nil, err
	}

	if resp.Response != "True" {
		return nil, nil
	}

	movies := make([]Movie, 0, len(resp.Search))
	for _, entry := range resp.Search {
		movies = append(movies, Movie{
			Title:  entry.Title,
			Year:   entry.Year,
			ImdbID: entry.ImdbID,
			Poster: entry.Poster,
		})
	}

	return movies, nil
}

// ByTitle fetches a single record by exact title. Returns nil on no match.
func (c *Client) ByTitle(ctx context.Context, title string) (*Movie, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var resp titleResponse
	if err := c.get(ctx, url.Values{"t": {title}}, &resp); err != nil {
		return nil, err
	}

	if resp.Response != "True" {
		return nil, nil
	}

	return &Movie{
		Title:  resp.Title,
		Year:   resp.Year,
		ImdbID: resp.ImdbID,
		Poster: resp.Poster,
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, dest any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	return nil
}
