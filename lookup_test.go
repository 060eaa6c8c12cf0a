package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"animebot/pkg/jikan"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJikan(t *testing.T) *jikan.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/anime", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "nothing" {
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.Write([]byte(`{"data":[{"mal_id":339,"title":"Serial Experiments Lain"}]}`))
	})
	mux.HandleFunc("/anime/339", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"mal_id":339,"title":"Serial Experiments Lain","status":"Finished Airing","episodes":13}}`))
	})
	mux.HandleFunc("/anime/339/recommendations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"entry":{"mal_id":4,"title":"Boogiepop","url":"https://myanimelist.net/anime/4"}}]}`))
	})
	mux.HandleFunc("/anime/1/recommendations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return jikan.NewClient(server.URL, "animebot-test", zerolog.Nop())
}

func TestPrintSearch(t *testing.T) {
	client := newTestJikan(t)
	var buf bytes.Buffer

	require.NoError(t, printSearch(context.Background(), &buf, client, "lain", 5))
	assert.Contains(t, buf.String(), "**Search results for 'lain'**")
	assert.Contains(t, buf.String(), "Serial Experiments Lain: MAL ID: 339")

	buf.Reset()
	require.NoError(t, printSearch(context.Background(), &buf, client, "nothing", 5))
	assert.Equal(t, "No results found for 'nothing'.\n", buf.String())
}

func TestPrintDetails(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printDetails(context.Background(), &buf, newTestJikan(t), 339))
	assert.Contains(t, buf.String(), "**Serial Experiments Lain**")
	assert.Contains(t, buf.String(), "Episodes: 13")
	assert.Contains(t, buf.String(), "MAL ID: 339")
}

func TestPrintDetails_NotFound(t *testing.T) {
	var buf bytes.Buffer

	err := printDetails(context.Background(), &buf, newTestJikan(t), 999999)
	require.Error(t, err)
	assert.True(t, jikan.IsNotFound(err))
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	client := newTestJikan(t)
	var buf bytes.Buffer

	require.NoError(t, printRecommendations(context.Background(), &buf, client, 339))
	assert.Contains(t, buf.String(), "1. Boogiepop: https://myanimelist.net/anime/4")

	buf.Reset()
	require.NoError(t, printRecommendations(context.Background(), &buf, client, 1))
	assert.Equal(t, "No recommendations found for anime ID 1.\n", buf.String())
}

func TestParseID(t *testing.T) {
	id, err := parseID("339")
	require.NoError(t, err)
	assert.Equal(t, 339, id)

	for _, bad := range []string{"abc", "-5", "1.5", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
