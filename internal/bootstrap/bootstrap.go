// Package bootstrap assembles the quote client stack from configuration.
// The HTTP service and the CLI share it so both talk to the quote API the same way.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quotedroplet/droplet/internal/adapters/clients"
	"github.com/quotedroplet/droplet/internal/adapters/clients/acl"
	"github.com/quotedroplet/droplet/internal/app"
	"github.com/quotedroplet/droplet/internal/platform/config"
	"github.com/quotedroplet/droplet/internal/platform/logging"
	"github.com/quotedroplet/droplet/internal/platform/telemetry"
	"github.com/quotedroplet/droplet/internal/store"
)

// Stack is the wired quote client stack.
type Stack struct {
	Client  *acl.QuoteClient
	Service *app.QuoteService
	Metrics *telemetry.QuoteMetrics
}

// Close releases the service's delivery queue.
func (s *Stack) Close() {
	s.Service.Close()
}

// NewLogger builds the configured logger for the given service name and version.
func NewLogger(cfg *config.Config, service, version string) *slog.Logger {
	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: service,
		Version: version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
}

// NewStack wires transport, quote client, local store and application service.
// Metrics are registered on reg; a nil reg uses the default Prometheus registry.
func NewStack(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Stack, error) {
	transport, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		UserAgent:   cfg.Client.UserAgent,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating quote api transport: %w", err)
	}

	metrics := telemetry.NewQuoteMetrics(reg)

	client := acl.NewQuoteClient(acl.QuoteClientConfig{
		Transport:           transport,
		Logger:              logger,
		Metrics:             metrics,
		ShortMaxLength:      cfg.Quotes.ShortMaxLength,
		DisableSearchFilter: !cfg.Quotes.SearchClientFilter,
	})

	quoteStore, err := store.New(cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("opening quote store: %w", err)
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		API:            client,
		Store:          quoteStore,
		Logger:         logger,
		FanOutLimit:    cfg.Quotes.FanOutLimit,
		RecentLimit:    cfg.Store.RecentLimit,
		ShortMaxLength: cfg.Quotes.ShortMaxLength,
	})

	return &Stack{Client: client, Service: service, Metrics: metrics}, nil
}
