package quotetest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON[T any](t *testing.T, url string) (T, int) {
	t.Helper()

	var out T
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return out, resp.StatusCode
}

func TestServer_ServesApprovedQuotesOnly(t *testing.T) {
	srv := NewServer(
		Quote{ID: 1, Text: "a", Author: "x", Classification: "love", Approved: true},
		Quote{ID: 2, Text: "b", Author: "y", Classification: "love"},
	)
	defer srv.Close()

	quotes, status := getJSON[[]Quote](t, srv.URL+"/quotes?author=x")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, quotes, 1)

	_, status = getJSON[Quote](t, srv.URL+"/quotes/2")
	assert.Equal(t, http.StatusNotFound, status)

	count, _ := getJSON[map[string]int](t, srv.URL+"/quotes/count?category=love")
	assert.Equal(t, 1, count["count"])
}

func TestServer_SubmitAndConflict(t *testing.T) {
	srv := NewServer(Quote{ID: 4, Text: "Old news.", Approved: true})
	defer srv.Close()

	post := func(text string) int {
		body, _ := json.Marshal(Submission{Text: text, Classification: "love"})
		resp, err := http.Post(srv.URL+"/quotes", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusCreated, post("Fresh."))
	assert.Equal(t, http.StatusConflict, post("old NEWS."))
	assert.Len(t, srv.Submissions(), 1)

	// submissions wait for moderation
	_, status := getJSON[Quote](t, srv.URL+"/quotes/5")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_FailWith(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	srv.FailWith(http.StatusServiceUnavailable)
	_, status := getJSON[[]Quote](t, srv.URL+"/quotes/top")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	srv.FailWith(0)
	quotes, status := getJSON[[]Quote](t, srv.URL+"/quotes/top")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, quotes)
	assert.Equal(t, []string{"GET /quotes/top", "GET /quotes/top"}, srv.Requests())
}
