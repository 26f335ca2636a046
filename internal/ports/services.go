// Package ports defines interfaces for external dependencies.
// The application layer depends on these contracts; adapters implement them.
//
// Every method takes a context first, returns domain types only and reports
// failures with the request errors from the domain package.
package ports

import (
	"context"

	"github.com/quotedroplet/droplet/internal/domain"
)

// QuoteReader is the read side of the quote API.
type QuoteReader interface {
	// RandomQuote returns one quote from category, limited to short quotes when short is set.
	// When the server yields no candidates it returns domain.NoQuoteFound() and no error.
	RandomQuote(ctx context.Context, category domain.Category, short bool) (domain.Quote, error)

	// QuotesByAuthor returns the quotes attributed to author.
	QuotesByAuthor(ctx context.Context, author string) ([]domain.Quote, error)

	// SearchQuotes returns quotes whose text or author contain keyword, optionally within category.
	SearchQuotes(ctx context.Context, keyword string, category domain.Category) ([]domain.Quote, error)

	// RecentQuotes returns at most limit of the most recently added quotes.
	RecentQuotes(ctx context.Context, limit int) ([]domain.Quote, error)

	// QuoteByID returns one quote. A missing quote yields an HTTP 404 error.
	QuoteByID(ctx context.Context, id int) (domain.Quote, error)

	// CountForCategory returns the number of quotes in category.
	CountForCategory(ctx context.Context, category domain.Category) (int, error)

	// TopQuotes returns the most liked quotes in category, most liked first.
	TopQuotes(ctx context.Context, category domain.Category) ([]domain.Quote, error)

	// LikeCount returns the server-side like count of a quote.
	LikeCount(ctx context.Context, id int) (int, error)
}

// QuoteWriter is the write side of the quote API.
type QuoteWriter interface {
	// AddQuote submits a quote for moderation. A duplicate yields a domain.ConflictError.
	AddQuote(ctx context.Context, submission domain.QuoteSubmission) error

	// SendFeedback delivers user feedback.
	SendFeedback(ctx context.Context, feedback domain.Feedback) error

	// LikeQuote increments the like count and returns the updated quote.
	LikeQuote(ctx context.Context, id int) (domain.Quote, error)

	// UnlikeQuote decrements the like count and returns the updated quote.
	UnlikeQuote(ctx context.Context, id int) (domain.Quote, error)
}

// QuoteAPI is the full quote API client contract.
type QuoteAPI interface {
	QuoteReader
	QuoteWriter
}

// QuoteStore persists the user's local quote state: bookmarks, likes and viewing history.
// Implementations return copies; callers may modify returned slices freely.
type QuoteStore interface {
	// Bookmarks returns bookmarked quotes, most recent first.
	Bookmarks(ctx context.Context) ([]domain.Quote, error)

	// SaveBookmarks replaces the bookmark list.
	SaveBookmarks(ctx context.Context, quotes []domain.Quote) error

	// LikedQuotes returns the quotes the user has liked.
	LikedQuotes(ctx context.Context) ([]domain.Quote, error)

	// SaveLikedQuotes replaces the liked list.
	SaveLikedQuotes(ctx context.Context, quotes []domain.Quote) error

	// RecentQuotes returns recently shown quotes, most recent first.
	RecentQuotes(ctx context.Context) ([]domain.Quote, error)

	// SaveRecentQuotes replaces the recently shown list.
	SaveRecentQuotes(ctx context.Context, quotes []domain.Quote) error
}
