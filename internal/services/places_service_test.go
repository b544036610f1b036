package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesSearchParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Goa", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"name":"Baga Beach"},{"name":""},{"name":"Fort Aguada"}]}`))
	}))
	defer srv.Close()

	c := NewPlacesClientWithBaseURL(srv.URL)
	places, err := c.Search(context.Background(), "Goa")
	require.NoError(t, err)

	// Nameless entries are dropped.
	assert.Equal(t, []Place{{Name: "Baga Beach"}, {Name: "Fort Aguada"}}, places)
}

func TestPlacesSearchBadStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPlacesClientWithBaseURL(srv.URL)
	_, err := c.Search(context.Background(), "Goa")
	assert.Error(t, err)
}

func TestPlacesSearchCachesByQuery(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"results":[{"name":"Hawa Mahal"}]}`))
	}))
	defer srv.Close()

	c := NewPlacesClientWithBaseURL(srv.URL)
	_, err := c.Search(context.Background(), "Jaipur")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "Jaipur")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWeatherCurrentParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Delhi", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":31.4},"weather":[{"description":"haze"}]}`))
	}))
	defer srv.Close()

	c := NewWeatherClientWithBaseURL(srv.URL)
	weather, err := c.Current(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.Equal(t, "Delhi", weather.City)
	assert.InDelta(t, 31.4, weather.Temperature, 0.001)
	assert.Equal(t, "haze", weather.Description)
}

func TestWeatherCurrentMissingConditionsIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main":{"temp":20},"weather":[]}`))
	}))
	defer srv.Close()

	c := NewWeatherClientWithBaseURL(srv.URL)
	_, err := c.Current(context.Background(), "Delhi")
	assert.Error(t, err)
}
