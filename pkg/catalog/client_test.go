package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "interstellar", r.URL.Query().Get("s"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Search": [
				{"Title": "Interstellar", "Year": "2014", "imdbID": "tt0816692", "Poster": "https://img.example/1.jpg"},
				{"Title": "Interstellar Wars", "Year": "2016", "imdbID": "tt4701724", "Poster": "N/A"}
			],
			"Response": "True"
		}`))
	}))
	defer server.Close()

	client := catalog.NewClient("test-key", server.URL)

	movies, err := client.Search(context.Background(), "interstellar")
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, "Interstellar", movies[0].Title)
	assert.Equal(t, "2014", movies[0].Year)
	assert.Equal(t, "tt0816692", movies[0].ImdbID)
	assert.Equal(t, "https://www.imdb.com/title/tt0816692/", movies[0].DetailURL())
}

func TestClient_Search_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	client := catalog.NewClient("test-key", server.URL)

	movies, err := client.Search(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestClient_Search_NotConfigured(t *testing.T) {
	client := catalog.NewClient("", "https://www.omdbapi.com/")

	assert.False(t, client.Configured())

	_, err := client.Search(context.Background(), "interstellar")
	assert.ErrorIs(t, err, catalog.ErrNotConfigured)

	_, err = client.ByTitle(context.Background(), "Interstellar")
	assert.ErrorIs(t, err, catalog.ErrNotConfigured)
}

func TestClient_Search_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := catalog.NewClient("test-key", server.URL)

	_, err := client.Search(context.Background(), "interstellar")
	assert.Error(t, err)
}

func TestClient_ByTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Inception", r.URL.Query().Get("t"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Title": "Inception", "Year": "2010", "imdbID": "tt1375666", "Poster": "N/A", "Response": "True"}`))
	}))
	defer server.Close()

	client := catalog.NewClient("test-key", server.URL)

	movie, err := client.ByTitle(context.Background(), "Inception")
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, "tt1375666", movie.ImdbID)
}

func TestClient_ByTitle_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	client := catalog.NewClient("test-key", server.URL)

	movie, err := client.ByTitle(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Nil(t, movie)
}
