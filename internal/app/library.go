package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/quotedroplet/droplet/internal/domain"
)

// likeToggle is the input of the like toggle operation.
type likeToggle struct {
	quote    domain.Quote
	wasLiked bool
}

// ToggleLike likes the quote, or unlikes it when it is already in the liked set.
// The liked set is updated only after the server confirms; on any error it is left
// unchanged and the caller should keep showing its previous state.
func (s *QuoteService) ToggleLike(ctx context.Context, quote domain.Quote) (LikeResult, error) {
	s.likeMu.Lock()
	defer s.likeMu.Unlock()

	return s.toggleLike(ctx, quote)
}

// toggleLike requires likeMu to be held.
func (s *QuoteService) toggleLike(ctx context.Context, quote domain.Quote) (LikeResult, error) {
	wasLiked, err := s.IsLiked(ctx, quote.ID)
	if err != nil {
		return LikeResult{}, err
	}

	input := likeToggle{quote: quote, wasLiked: wasLiked}

	return Execute(ctx, s.executor, Operation[likeToggle, domain.Quote, domain.Quote, LikeResult]{
		Name: "ToggleLike",
		Validate: func(_ context.Context, in likeToggle) error {
			return requireStored(in.quote)
		},
		Perform: func(ctx context.Context, in likeToggle) (domain.Quote, error) {
			if in.wasLiked {
				return s.api.UnlikeQuote(ctx, in.quote.ID)
			}
			return s.api.LikeQuote(ctx, in.quote.ID)
		},
		Verify: func(_ context.Context, in likeToggle, updated domain.Quote) (domain.Quote, error) {
			if updated.ID != in.quote.ID {
				return domain.Quote{}, fmt.Errorf("server answered for quote %d instead of %d", updated.ID, in.quote.ID)
			}
			if updated.Likes < 0 {
				return domain.Quote{}, fmt.Errorf("server reported %d likes", updated.Likes)
			}
			return updated, nil
		},
		Archive: func(ctx context.Context, in likeToggle, updated domain.Quote) error {
			s.stateMu.Lock()
			defer s.stateMu.Unlock()

			liked, err := s.store.LikedQuotes(ctx)
			if err != nil {
				return fmt.Errorf("loading liked quotes: %w", err)
			}

			next := removeID(liked, updated.ID)
			if !in.wasLiked {
				next = append([]domain.Quote{updated}, next...)
			}
			return s.store.SaveLikedQuotes(ctx, next)
		},
		Respond: func(_ context.Context, in likeToggle, updated domain.Quote) (LikeResult, error) {
			return LikeResult{Quote: updated, Liked: !in.wasLiked}, nil
		},
	}, input)
}

// SetLiked brings quote id to the wanted liked state. When it is already there the
// current server copy is returned and nothing is sent.
func (s *QuoteService) SetLiked(ctx context.Context, id int, want bool) (LikeResult, error) {
	s.likeMu.Lock()
	defer s.likeMu.Unlock()

	liked, err := s.IsLiked(ctx, id)
	if err != nil {
		return LikeResult{}, err
	}

	quote, err := s.QuoteByID(ctx, id)
	if err != nil {
		return LikeResult{}, err
	}

	if liked == want {
		return LikeResult{Quote: quote, Liked: liked}, nil
	}

	return s.toggleLike(ctx, quote)
}

// ToggleBookmark adds the quote to the bookmarks, or removes it when present.
// It reports whether the quote is bookmarked afterwards.
func (s *QuoteService) ToggleBookmark(ctx context.Context, quote domain.Quote) (bool, error) {
	if err := requireStored(quote); err != nil {
		return false, err
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return false, fmt.Errorf("loading bookmarks: %w", err)
	}

	bookmarked := !containsID(bookmarks, quote.ID)
	next := removeID(bookmarks, quote.ID)
	if bookmarked {
		next = append([]domain.Quote{quote}, next...)
	}

	if err := s.store.SaveBookmarks(ctx, next); err != nil {
		return false, fmt.Errorf("saving bookmarks: %w", err)
	}

	s.logger.DebugContext(ctx, "bookmark toggled",
		slog.Int("quote_id", quote.ID),
		slog.Bool("bookmarked", bookmarked),
	)

	return bookmarked, nil
}

// IsLiked reports whether the quote is in the liked set.
func (s *QuoteService) IsLiked(ctx context.Context, id int) (bool, error) {
	liked, err := s.store.LikedQuotes(ctx)
	if err != nil {
		return false, fmt.Errorf("loading liked quotes: %w", err)
	}
	return containsID(liked, id), nil
}

// IsBookmarked reports whether the quote is bookmarked.
func (s *QuoteService) IsBookmarked(ctx context.Context, id int) (bool, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return false, fmt.Errorf("loading bookmarks: %w", err)
	}
	return containsID(bookmarks, id), nil
}

// BookmarkedQuotes returns the bookmarks refreshed from the server, in bookmark order.
// Quotes that can no longer be fetched are left out.
func (s *QuoteService) BookmarkedQuotes(ctx context.Context) ([]domain.Quote, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}

	return s.hydrate(ctx, "BookmarkedQuotes", bookmarks), nil
}

// RecentlyViewed returns the viewing history refreshed from the server, most recent first.
// Quotes that can no longer be fetched are left out.
func (s *QuoteService) RecentlyViewed(ctx context.Context) ([]domain.Quote, error) {
	recent, err := s.store.RecentQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading viewing history: %w", err)
	}

	return s.hydrate(ctx, "RecentlyViewed", recent), nil
}

// hydrate fetches every stored quote by id and waits for all lookups to settle.
func (s *QuoteService) hydrate(ctx context.Context, op string, stored []domain.Quote) []domain.Quote {
	lookups := make([]func(context.Context) (domain.Quote, error), len(stored))
	for i, q := range stored {
		lookups[i] = func(ctx context.Context) (domain.Quote, error) {
			return s.api.QuoteByID(ctx, q.ID)
		}
	}

	results := ParallelPartialLimit(ctx, s.fanOut, lookups...)
	quotes := Successes(results)

	if dropped := len(results) - len(quotes); dropped > 0 {
		s.logger.InfoContext(ctx, "dropped quotes that could not be fetched",
			slog.String("operation", op),
			slog.Int("requested", len(results)),
			slog.Int("dropped", dropped),
		)
	}

	return quotes
}

// CategoryCounts returns the quote count of every remote category, including CategoryAll.
// Categories whose count could not be fetched are absent from the map.
func (s *QuoteService) CategoryCounts(ctx context.Context) map[domain.Category]int {
	categories := domain.RemoteCategories()

	lookups := make([]func(context.Context) (int, error), len(categories))
	for i, c := range categories {
		lookups[i] = func(ctx context.Context) (int, error) {
			return s.api.CountForCategory(ctx, c)
		}
	}

	counts := make(map[domain.Category]int, len(categories))
	for i, r := range ParallelPartialLimit(ctx, s.fanOut, lookups...) {
		if r.Err != nil {
			s.logger.DebugContext(ctx, "category count unavailable",
				slog.String("category", categories[i].String()),
				slog.Any("error", r.Err),
			)
			continue
		}
		counts[categories[i]] = r.Value
	}

	return counts
}

// CategoryCountsCallback is CategoryCounts with the map delivered on the service queue.
func (s *QuoteService) CategoryCountsCallback(ctx context.Context, deliver func(map[domain.Category]int)) {
	Callback(ctx, s.queue, func(ctx context.Context) (map[domain.Category]int, error) {
		return s.CategoryCounts(ctx), nil
	}, func(counts map[domain.Category]int, _ error) { deliver(counts) })
}

// RecordViewed puts the quote at the front of the viewing history.
// The placeholder quote is ignored.
func (s *QuoteService) RecordViewed(ctx context.Context, quote domain.Quote) error {
	if quote.IsPlaceholder() {
		return nil
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	recent, err := s.store.RecentQuotes(ctx)
	if err != nil {
		return fmt.Errorf("loading viewing history: %w", err)
	}

	next := append([]domain.Quote{quote}, removeID(recent, quote.ID)...)
	if len(next) > s.recentLimit {
		next = next[:s.recentLimit]
	}

	if err := s.store.SaveRecentQuotes(ctx, next); err != nil {
		return fmt.Errorf("saving viewing history: %w", err)
	}

	return nil
}

// requireStored rejects quotes that cannot be liked or kept locally.
func requireStored(q domain.Quote) error {
	if q.IsPlaceholder() || q.ID <= 0 {
		return domain.NewValidationErrorWithValue("id", "quote has no server id", q.ID)
	}
	return nil
}

func containsID(quotes []domain.Quote, id int) bool {
	return slices.ContainsFunc(quotes, func(q domain.Quote) bool { return q.ID == id })
}

func removeID(quotes []domain.Quote, id int) []domain.Quote {
	return slices.DeleteFunc(slices.Clone(quotes), func(q domain.Quote) bool { return q.ID == id })
}
