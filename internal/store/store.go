package store

import (
	"fmt"
	"log/slog"

	"github.com/quotedroplet/droplet/internal/platform/config"
	"github.com/quotedroplet/droplet/internal/ports"
)

// Backends accepted by New.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
)

// New creates the store selected by cfg.Backend.
func New(cfg config.StoreConfig, logger *slog.Logger) (ports.QuoteStore, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(cfg.Path, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
