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

type Weather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

type WeatherProviderInterface interface {
	Current(ctx context.Context, city string) (*Weather, error)
}

type WeatherClient struct {
	http    *http.Client
	apiKey  string
	baseURL string
	cache   *gocache.Cache
}

func NewWeatherClient() *WeatherClient {
	return &WeatherClient{
		http:    &http.Client{Timeout: 5 * time.Second},
		apiKey:  os.Getenv("WEATHER_API_KEY"),
		baseURL: "https://api.openweathermap.org/data/2.5",
		cache:   gocache.New(10*time.Minute, 20*time.Minute),
	}
}

func NewWeatherClientWithBaseURL(baseURL string) *WeatherClient {
	c := NewWeatherClient()
	c.baseURL = baseURL
	return c
}

func (c *WeatherClient) Current(ctx context.Context, city string) (*Weather, error) {
	if cached, ok := c.cache.Get("weather:" + city); ok {
		w := cached.(Weather)
		return &w, nil
	}

	u := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("weather bad status: %s", resp.Status)
	}

	var payload struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather decode: %w", err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather response missing conditions")
	}

	w := Weather{
		City:        city,
		Temperature: payload.Main.Temp,
		Description: payload.Weather[0].Description,
	}
	c.cache.Set("weather:"+city, w, gocache.DefaultExpiration)
	return &w, nil
}
