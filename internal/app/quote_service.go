// Package app contains application services that orchestrate use cases.
// It coordinates the quote API and the local quote store through ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/quotedroplet/droplet/internal/domain"
	"github.com/quotedroplet/droplet/internal/ports"
)

// Defaults applied by NewQuoteService.
const (
	DefaultFanOutLimit    = 8
	DefaultRecentLimit    = 20
	DefaultShortMaxLength = 65
)

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	// API is the quote API client. Required.
	API ports.QuoteAPI

	// Store holds bookmarks, likes and history. Required.
	Store ports.QuoteStore

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Queue receives callback deliveries. When nil the service owns one, released by Close.
	Queue *SerialQueue

	// FanOutLimit bounds concurrent lookups in batch operations.
	FanOutLimit int

	// RecentLimit caps the viewing history.
	RecentLimit int

	// ShortMaxLength limits short quotes drawn from bookmarks.
	ShortMaxLength int

	// Pick returns a uniform index in [0, n). Defaults to math/rand/v2.IntN.
	Pick func(n int) int
}

// QuoteService orchestrates quote use cases.
type QuoteService struct {
	api         ports.QuoteAPI
	store       ports.QuoteStore
	logger      *slog.Logger
	executor    *Executor
	queue       *SerialQueue
	ownsQueue   bool
	fanOut      int
	recentLimit int
	shortMax    int
	pick        func(n int) int

	// stateMu guards every load-edit-save of the local store.
	stateMu sync.Mutex

	// likeMu serializes like toggles so the liked set and the server agree.
	likeMu sync.Mutex
}

// LikeResult is the outcome of ToggleLike.
type LikeResult struct {
	// Quote carries the like count reported by the server.
	Quote domain.Quote

	// Liked reports whether the quote is now in the liked set.
	Liked bool
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if API or Store is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.API == nil {
		panic("QuoteService: API is required")
	}
	if cfg.Store == nil {
		panic("QuoteService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "app.QuoteService"))

	s := &QuoteService{
		api:         cfg.API,
		store:       cfg.Store,
		logger:      logger,
		executor:    NewExecutor(logger),
		queue:       cfg.Queue,
		fanOut:      orDefault(cfg.FanOutLimit, DefaultFanOutLimit),
		recentLimit: orDefault(cfg.RecentLimit, DefaultRecentLimit),
		shortMax:    orDefault(cfg.ShortMaxLength, DefaultShortMaxLength),
		pick:        cfg.Pick,
	}
	if s.queue == nil {
		s.queue = NewSerialQueue(s.fanOut)
		s.ownsQueue = true
	}
	if s.pick == nil {
		s.pick = rand.IntN
	}

	return s
}

// Close releases the delivery queue when the service created it.
func (s *QuoteService) Close() {
	if s.ownsQueue {
		s.queue.Close()
	}
}

// RandomQuote returns a random quote. CategoryBookmarked draws from the local bookmarks.
func (s *QuoteService) RandomQuote(ctx context.Context, category domain.Category, short bool) (domain.Quote, error) {
	if category == domain.CategoryBookmarked {
		return s.randomBookmark(ctx, short)
	}

	return observe(ctx, s, "RandomQuote", func() (domain.Quote, error) {
		return s.api.RandomQuote(ctx, category, short)
	}, slog.String("category", category.String()), slog.Bool("short", short))
}

func (s *QuoteService) randomBookmark(ctx context.Context, short bool) (domain.Quote, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("loading bookmarks: %w", err)
	}

	candidates := slices.DeleteFunc(bookmarks, func(q domain.Quote) bool {
		return short && !q.FitsLength(s.shortMax)
	})
	if len(candidates) == 0 {
		return domain.NoQuoteFound(), nil
	}

	return candidates[s.pick(len(candidates))], nil
}

// QuotesByAuthor returns the quotes attributed to author.
func (s *QuoteService) QuotesByAuthor(ctx context.Context, author string) ([]domain.Quote, error) {
	return observe(ctx, s, "QuotesByAuthor", func() ([]domain.Quote, error) {
		return s.api.QuotesByAuthor(ctx, author)
	}, slog.String("author", author))
}

// SearchQuotes searches by keyword. CategoryBookmarked searches the local bookmarks.
func (s *QuoteService) SearchQuotes(ctx context.Context, keyword string, category domain.Category) ([]domain.Quote, error) {
	if category == domain.CategoryBookmarked {
		bookmarks, err := s.store.Bookmarks(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading bookmarks: %w", err)
		}
		return slices.DeleteFunc(bookmarks, func(q domain.Quote) bool { return !q.Matches(keyword) }), nil
	}

	return observe(ctx, s, "SearchQuotes", func() ([]domain.Quote, error) {
		return s.api.SearchQuotes(ctx, keyword, category)
	}, slog.String("keyword", keyword), slog.String("category", category.String()))
}

// RecentQuotes returns the newest quotes on the server.
func (s *QuoteService) RecentQuotes(ctx context.Context, limit int) ([]domain.Quote, error) {
	return observe(ctx, s, "RecentQuotes", func() ([]domain.Quote, error) {
		return s.api.RecentQuotes(ctx, limit)
	}, slog.Int("limit", limit))
}

// QuoteByID returns one quote.
func (s *QuoteService) QuoteByID(ctx context.Context, id int) (domain.Quote, error) {
	return observe(ctx, s, "QuoteByID", func() (domain.Quote, error) {
		return s.api.QuoteByID(ctx, id)
	}, slog.Int("quote_id", id))
}

// TopQuotes returns the most liked quotes in category.
func (s *QuoteService) TopQuotes(ctx context.Context, category domain.Category) ([]domain.Quote, error) {
	return observe(ctx, s, "TopQuotes", func() ([]domain.Quote, error) {
		return s.api.TopQuotes(ctx, category)
	}, slog.String("category", category.String()))
}

// CountForCategory returns the number of quotes in category.
func (s *QuoteService) CountForCategory(ctx context.Context, category domain.Category) (int, error) {
	return observe(ctx, s, "CountForCategory", func() (int, error) {
		return s.api.CountForCategory(ctx, category)
	}, slog.String("category", category.String()))
}

// LikeCount returns the server-side like count of a quote.
func (s *QuoteService) LikeCount(ctx context.Context, id int) (int, error) {
	return observe(ctx, s, "LikeCount", func() (int, error) {
		return s.api.LikeCount(ctx, id)
	}, slog.Int("quote_id", id))
}

// AddQuote submits a quote for moderation.
func (s *QuoteService) AddQuote(ctx context.Context, submission domain.QuoteSubmission) error {
	_, err := observe(ctx, s, "AddQuote", func() (struct{}, error) {
		return struct{}{}, s.api.AddQuote(ctx, submission)
	}, slog.String("classification", submission.Classification.String()))
	return err
}

// SendFeedback delivers user feedback.
func (s *QuoteService) SendFeedback(ctx context.Context, feedback domain.Feedback) error {
	_, err := observe(ctx, s, "SendFeedback", func() (struct{}, error) {
		return struct{}{}, s.api.SendFeedback(ctx, feedback)
	}, slog.String("type", string(feedback.Type)))
	return err
}

// LikeQuote likes a quote on the server without touching the liked set.
func (s *QuoteService) LikeQuote(ctx context.Context, id int) (domain.Quote, error) {
	return observe(ctx, s, "LikeQuote", func() (domain.Quote, error) {
		return s.api.LikeQuote(ctx, id)
	}, slog.Int("quote_id", id))
}

// UnlikeQuote unlikes a quote on the server without touching the liked set.
func (s *QuoteService) UnlikeQuote(ctx context.Context, id int) (domain.Quote, error) {
	return observe(ctx, s, "UnlikeQuote", func() (domain.Quote, error) {
		return s.api.UnlikeQuote(ctx, id)
	}, slog.Int("quote_id", id))
}

// LikeQuoteAsync is LikeQuote as a future.
func (s *QuoteService) LikeQuoteAsync(ctx context.Context, id int) *Future[domain.Quote] {
	return Go(ctx, func(ctx context.Context) (domain.Quote, error) { return s.LikeQuote(ctx, id) })
}

// UnlikeQuoteAsync is UnlikeQuote as a future.
func (s *QuoteService) UnlikeQuoteAsync(ctx context.Context, id int) *Future[domain.Quote] {
	return Go(ctx, func(ctx context.Context) (domain.Quote, error) { return s.UnlikeQuote(ctx, id) })
}

// LikeQuoteCallback is LikeQuote with the result delivered on the service queue.
func (s *QuoteService) LikeQuoteCallback(ctx context.Context, id int, deliver func(domain.Quote, error)) {
	Callback(ctx, s.queue, func(ctx context.Context) (domain.Quote, error) { return s.LikeQuote(ctx, id) }, deliver)
}

// UnlikeQuoteCallback is UnlikeQuote with the result delivered on the service queue.
func (s *QuoteService) UnlikeQuoteCallback(ctx context.Context, id int, deliver func(domain.Quote, error)) {
	Callback(ctx, s.queue, func(ctx context.Context) (domain.Quote, error) { return s.UnlikeQuote(ctx, id) }, deliver)
}

// Queue returns the queue callbacks are delivered on.
func (s *QuoteService) Queue() *SerialQueue {
	return s.queue
}

// observe runs one quote API call and logs its outcome.
func observe[T any](ctx context.Context, s *QuoteService, op string, fn func() (T, error), attrs ...slog.Attr) (T, error) {
	result, err := fn()
	if err == nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "quote operation succeeded", append(attrs, slog.String("operation", op))...)
		return result, nil
	}

	level := slog.LevelError
	if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsConflict(err) || errors.Is(err, context.Canceled) {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, "quote operation failed", append(attrs,
		slog.String("operation", op),
		slog.String("kind", string(domain.Kind(err))),
		slog.Any("error", err),
	)...)

	return result, err
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
