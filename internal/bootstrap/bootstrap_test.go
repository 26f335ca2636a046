package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotedroplet/droplet/internal/domain"
	"github.com/quotedroplet/droplet/internal/platform/config"
)

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(t.TempDir(), "test")
	require.NoError(t, err)

	return cfg
}

func TestNewStack_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"text":"Carpe diem.","author":"Horace","classification":"wisdom","likes":4}`))
	}))
	defer server.Close()

	cfg := loadTestConfig(t)
	cfg.Services.Quote.BaseURL = server.URL

	reg := prometheus.NewRegistry()
	stack, err := NewStack(cfg, discardLogger(), reg)
	require.NoError(t, err)
	defer stack.Close()

	quote, err := stack.Service.QuoteByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.Quote{ID: 7, Text: "Carpe diem.", Author: "Horace", Classification: "wisdom", Likes: 4}, quote)

	n, err := testutil.GatherAndCount(reg, "droplet_quote_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewStack_FileStore(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Store.Backend = "file"
	cfg.Store.Path = filepath.Join(t.TempDir(), "quotes.toml")

	stack, err := NewStack(cfg, discardLogger(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer stack.Close()

	bookmarked, err := stack.Service.ToggleBookmark(context.Background(), domain.Quote{ID: 3, Text: "Be kind."})
	require.NoError(t, err)
	assert.True(t, bookmarked)
	assert.FileExists(t, cfg.Store.Path)
}

func TestNewStack_Errors(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Store.Backend = "sqlite"

	_, err := NewStack(cfg, discardLogger(), prometheus.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening quote store")
}

func TestNewLogger(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Log.File.Enabled = true
	cfg.Log.File.Path = filepath.Join(t.TempDir(), "droplet.log")

	logger := NewLogger(cfg, "droplet", "1.0.0")
	logger.Info("hello")

	assert.FileExists(t, cfg.Log.File.Path)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
