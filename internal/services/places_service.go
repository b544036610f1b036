package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Place struct {
	Name string `json:"name"`
}

// PlacesProviderInterface looks up attractions for a destination.
// A timeout or non-2xx response is a failure; callers substitute their
// own degraded default and never retry.
type PlacesProviderInterface interface {
	Search(ctx context.Context, query string) ([]Place, error)
}

type PlacesClient struct {
	http    *http.Client
	apiKey  string
	baseURL string
	cache   *gocache.Cache
}

func NewPlacesClient() *PlacesClient {
	return &PlacesClient{
		http:    &http.Client{Timeout: 5 * time.Second},
		apiKey:  os.Getenv("PLACES_API_KEY"),
		baseURL: "https://api.mapples.com/v1",
		cache:   gocache.New(15*time.Minute, 30*time.Minute),
	}
}

// NewPlacesClientWithBaseURL is used by tests to point at a stub server.
func NewPlacesClientWithBaseURL(baseURL string) *PlacesClient {
	c := NewPlacesClient()
	c.baseURL = baseURL
	return c
}

func (c *PlacesClient) Search(ctx context.Context, query string) ([]Place, error) {
	if cached, ok := c.cache.Get("places:" + query); ok {
		return cached.([]Place), nil
	}

	u := fmt.Sprintf("%s/places/search?query=%s&apikey=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places bad status: %s", resp.Status)
	}

	var payload struct {
		Results []Place `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}

	places := make([]Place, 0, len(payload.Results))
	for _, p := range payload.Results {
		if p.Name != "" {
			places = append(places, p)
		}
	}

	c.cache.Set("places:"+query, places, gocache.DefaultExpiration)
	return places, nil
}
