package store

import (
	"context"
	"slices"
	"sync"

	"github.com/quotedroplet/droplet/internal/domain"
)

// MemoryStore is an in-process QuoteStore. It is safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	bookmarks []domain.Quote
	liked     []domain.Quote
	recent    []domain.Quote
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Bookmarks returns a copy of the bookmark list.
func (s *MemoryStore) Bookmarks(ctx context.Context) ([]domain.Quote, error) {
	return s.read(ctx, &s.bookmarks)
}

// SaveBookmarks replaces the bookmark list.
func (s *MemoryStore) SaveBookmarks(ctx context.Context, quotes []domain.Quote) error {
	return s.write(ctx, &s.bookmarks, quotes)
}

// LikedQuotes returns a copy of the liked list.
func (s *MemoryStore) LikedQuotes(ctx context.Context) ([]domain.Quote, error) {
	return s.read(ctx, &s.liked)
}

// SaveLikedQuotes replaces the liked list.
func (s *MemoryStore) SaveLikedQuotes(ctx context.Context, quotes []domain.Quote) error {
	return s.write(ctx, &s.liked, quotes)
}

// RecentQuotes returns a copy of the viewing history.
func (s *MemoryStore) RecentQuotes(ctx context.Context) ([]domain.Quote, error) {
	return s.read(ctx, &s.recent)
}

// SaveRecentQuotes replaces the viewing history.
func (s *MemoryStore) SaveRecentQuotes(ctx context.Context, quotes []domain.Quote) error {
	return s.write(ctx, &s.recent, quotes)
}

func (s *MemoryStore) read(ctx context.Context, list *[]domain.Quote) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(*list), nil
}

func (s *MemoryStore) write(ctx context.Context, list *[]domain.Quote, quotes []domain.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	*list = slices.Clone(quotes)
	return nil
}
