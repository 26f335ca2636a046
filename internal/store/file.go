package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/quotedroplet/droplet/internal/domain"
)

// DefaultPath is where the CLI keeps its quote state.
const DefaultPath = "~/.config/droplet/quotes.toml"

// document is the on-disk layout of a FileStore.
type document struct {
	Bookmarks []quoteRecord `toml:"bookmarks"`
	Liked     []quoteRecord `toml:"liked"`
	Recent    []quoteRecord `toml:"recent"`
}

type quoteRecord struct {
	ID             int    `toml:"id"`
	Text           string `toml:"text"`
	Author         string `toml:"author,omitempty"`
	Classification string `toml:"classification,omitempty"`
	Likes          int    `toml:"likes"`
}

// FileStore is a QuoteStore backed by a TOML file.
// A missing or unreadable file reads as empty; writes replace the file atomically.
// It is safe for concurrent use within one process.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileStore creates a store at path. A leading "~" expands to the home directory
// and an empty path means DefaultPath.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FileStore{
		path:   resolved,
		logger: logger.With(slog.String("component", "store.FileStore")),
	}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Bookmarks returns the bookmark list.
func (s *FileStore) Bookmarks(ctx context.Context) ([]domain.Quote, error) {
	return s.read(ctx, func(d *document) []quoteRecord { return d.Bookmarks })
}

// SaveBookmarks replaces the bookmark list.
func (s *FileStore) SaveBookmarks(ctx context.Context, quotes []domain.Quote) error {
	return s.update(ctx, func(d *document) { d.Bookmarks = toRecords(quotes) })
}

// LikedQuotes returns the liked list.
func (s *FileStore) LikedQuotes(ctx context.Context) ([]domain.Quote, error) {
	return s.read(ctx, func(d *document) []quoteRecord { return d.Liked })
}

// SaveLikedQuotes replaces the liked list.
func (s *FileStore) SaveLikedQuotes(ctx context.Context, quotes []domain.Quote) error {
	return s.update(ctx, func(d *document) { d.Liked = toRecords(quotes) })
}

// RecentQuotes returns the viewing history.
func (s *FileStore) RecentQuotes(ctx context.Context) ([]domain.Quote, error) {
	return s.read(ctx, func(d *document) []quoteRecord { return d.Recent })
}

// SaveRecentQuotes replaces the viewing history.
func (s *FileStore) SaveRecentQuotes(ctx context.Context, quotes []domain.Quote) error {
	return s.update(ctx, func(d *document) { d.Recent = toRecords(quotes) })
}

func (s *FileStore) read(ctx context.Context, pick func(*document) []quoteRecord) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	return toQuotes(pick(&doc)), nil
}

func (s *FileStore) update(ctx context.Context, apply func(*document)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	apply(&doc)

	return s.save(&doc)
}

// load reads the document, degrading to an empty one on any failure.
func (s *FileStore) load(ctx context.Context) document {
	var doc document

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.WarnContext(ctx, "reading quote store", slog.Any("error", err))
		}
		return doc
	}

	if err := toml.Unmarshal(data, &doc); err != nil {
		s.logger.WarnContext(ctx, "quote store is corrupt, starting empty",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return document{}
	}

	return doc
}

// save writes the document to a temporary file and renames it over the target.
func (s *FileStore) save(doc *document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal quote store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write quote store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close quote store: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace quote store: %w", err)
	}

	return nil
}

func toRecords(quotes []domain.Quote) []quoteRecord {
	records := make([]quoteRecord, 0, len(quotes))
	for _, q := range quotes {
		records = append(records, quoteRecord(q))
	}
	return records
}

func toQuotes(records []quoteRecord) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(records))
	for _, r := range records {
		quotes = append(quotes, domain.Quote(r))
	}
	return quotes
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
