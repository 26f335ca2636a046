package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quotedroplet/droplet/internal/domain"
	"github.com/quotedroplet/droplet/internal/platform/telemetry"
)

// Operation names used in logs, metrics and errors.
const (
	OpRandomQuote      = "RandomQuote"
	OpQuotesByAuthor   = "QuotesByAuthor"
	OpSearchQuotes     = "SearchQuotes"
	OpRecentQuotes     = "RecentQuotes"
	OpAddQuote         = "AddQuote"
	OpSendFeedback     = "SendFeedback"
	OpLikeQuote        = "LikeQuote"
	OpUnlikeQuote      = "UnlikeQuote"
	OpQuoteByID        = "QuoteByID"
	OpCountForCategory = "CountForCategory"
	OpTopQuotes        = "TopQuotes"
	OpLikeCount        = "LikeCount"
)

// DefaultShortMaxLength is the text limit applied to "short" random quotes.
const DefaultShortMaxLength = 65

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Transport sends requests to the quote API. Usually a *clients.Client.
	Transport Transport

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics counts operations and failures. Optional.
	Metrics *telemetry.QuoteMetrics

	// ShortMaxLength limits short random quotes. Defaults to DefaultShortMaxLength.
	ShortMaxLength int

	// DisableSearchFilter skips the client-side keyword filter on search results.
	DisableSearchFilter bool

	// Pick returns a uniform index in [0, n). Defaults to math/rand/v2.IntN.
	Pick func(n int) int
}

// QuoteClient implements ports.QuoteAPI over the quote API's REST endpoints.
// It translates the API's JSON representation into domain quotes and maps
// every failure onto the domain request errors.
type QuoteClient struct {
	pipeline     *Pipeline
	logger       *slog.Logger
	shortMax     int
	searchFilter bool
	pick         func(n int) int
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Transport is nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Transport == nil {
		panic("QuoteClient: Transport is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "acl.QuoteClient"))

	shortMax := cfg.ShortMaxLength
	if shortMax <= 0 {
		shortMax = DefaultShortMaxLength
	}

	pick := cfg.Pick
	if pick == nil {
		pick = rand.IntN
	}

	return &QuoteClient{
		pipeline:     NewPipeline(cfg.Transport, logger, cfg.Metrics),
		logger:       logger,
		shortMax:     shortMax,
		searchFilter: !cfg.DisableSearchFilter,
		pick:         pick,
	}
}

// RandomQuote fetches candidates from /quotes/random and picks one uniformly.
// Candidates outside the category, or longer than the short limit when short is set,
// are discarded first. With no candidates left it returns domain.NoQuoteFound().
func (c *QuoteClient) RandomQuote(ctx context.Context, category domain.Category, short bool) (domain.Quote, error) {
	if err := domain.RequireRemote(category); err != nil {
		return domain.Quote{}, err
	}

	query := url.Values{}
	if filter := category.Filter(); filter != "" {
		query.Set("classification", filter)
	}
	if short {
		query.Set("maxLength", strconv.Itoa(c.shortMax))
	}

	quotes, err := c.fetchQuotes(ctx, Request{
		Operation: OpRandomQuote,
		Method:    http.MethodGet,
		Path:      "/quotes/random",
		Query:     query,
	})
	if err != nil {
		return domain.Quote{}, err
	}

	candidates := quotes[:0]
	for _, q := range quotes {
		if q.InCategory(category) && (!short || q.FitsLength(c.shortMax)) {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) == 0 {
		c.logger.DebugContext(ctx, "no random quote candidates",
			slog.String("category", category.String()),
			slog.Bool("short", short),
			slog.Int("received", len(quotes)),
		)
		return domain.NoQuoteFound(), nil
	}

	return candidates[c.pick(len(candidates))], nil
}

// QuotesByAuthor fetches every quote attributed to author.
func (c *QuoteClient) QuotesByAuthor(ctx context.Context, author string) ([]domain.Quote, error) {
	if err := ValidateRequired(author, "author"); err != nil {
		return nil, err
	}

	return c.fetchQuotes(ctx, Request{
		Operation: OpQuotesByAuthor,
		Method:    http.MethodGet,
		Path:      "/quotes",
		Query:     url.Values{"author": {author}},
	})
}

// SearchQuotes searches quotes by keyword, optionally within a category.
// Results are filtered client-side to quotes whose text or author contain the keyword.
func (c *QuoteClient) SearchQuotes(ctx context.Context, keyword string, category domain.Category) ([]domain.Quote, error) {
	if err := ValidateRequired(keyword, "keyword"); err != nil {
		return nil, err
	}
	if err := domain.RequireRemote(category); err != nil {
		return nil, err
	}

	query := url.Values{"search": {keyword}}
	if filter := category.Filter(); filter != "" {
		query.Set("category", filter)
	}

	quotes, err := c.fetchQuotes(ctx, Request{
		Operation: OpSearchQuotes,
		Method:    http.MethodGet,
		Path:      "/quotes",
		Query:     query,
	})
	if err != nil || !c.searchFilter {
		return quotes, err
	}

	matches := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Matches(keyword) {
			matches = append(matches, q)
		}
	}

	return matches, nil
}

// RecentQuotes fetches at most limit of the newest quotes, in server order.
func (c *QuoteClient) RecentQuotes(ctx context.Context, limit int) ([]domain.Quote, error) {
	if err := ValidatePositive(limit, "limit"); err != nil {
		return nil, err
	}

	quotes, err := c.fetchQuotes(ctx, Request{
		Operation: OpRecentQuotes,
		Method:    http.MethodGet,
		Path:      "/quotes/recent",
		Query:     url.Values{"limit": {strconv.Itoa(limit)}},
	})
	if err != nil {
		return nil, err
	}

	if len(quotes) > limit {
		quotes = quotes[:limit]
	}

	return quotes, nil
}

// AddQuote submits a quote for moderation.
// A duplicate yields a domain.ConflictError carrying the message to show the user.
func (c *QuoteClient) AddQuote(ctx context.Context, submission domain.QuoteSubmission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	_, err := Send[json.RawMessage](ctx, c.pipeline, Request{
		Operation: OpAddQuote,
		Method:    http.MethodPost,
		Path:      "/quotes",
		Body: addQuoteRequest{
			Text:           submission.Text,
			Author:         submission.Author,
			Classification: submission.NormalizedClassification().String(),
			SubmitterName:  submission.SubmitterName,
		},
	})

	return c.mapSubmissionError(ctx, OpAddQuote, err)
}

// SendFeedback delivers user feedback.
func (c *QuoteClient) SendFeedback(ctx context.Context, feedback domain.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}
	feedbackType, _ := domain.ParseFeedbackType(string(feedback.Type))

	_, err := Send[json.RawMessage](ctx, c.pipeline, Request{
		Operation: OpSendFeedback,
		Method:    http.MethodPost,
		Path:      "/feedback",
		Body: feedbackRequest{
			Text:  feedback.Text,
			Type:  string(feedbackType),
			Email: feedback.Email,
		},
	})

	return c.mapSubmissionError(ctx, OpSendFeedback, err)
}

// LikeQuote increments the like count of a quote and returns the updated quote.
func (c *QuoteClient) LikeQuote(ctx context.Context, id int) (domain.Quote, error) {
	return c.fetchQuoteByID(ctx, OpLikeQuote, http.MethodPost, id, "/like")
}

// UnlikeQuote decrements the like count of a quote and returns the updated quote.
func (c *QuoteClient) UnlikeQuote(ctx context.Context, id int) (domain.Quote, error) {
	return c.fetchQuoteByID(ctx, OpUnlikeQuote, http.MethodDelete, id, "/like")
}

// QuoteByID fetches one quote. A missing quote yields an HTTP 404 error, never the placeholder.
func (c *QuoteClient) QuoteByID(ctx context.Context, id int) (domain.Quote, error) {
	return c.fetchQuoteByID(ctx, OpQuoteByID, http.MethodGet, id, "")
}

// CountForCategory returns the number of quotes in category.
func (c *QuoteClient) CountForCategory(ctx context.Context, category domain.Category) (int, error) {
	if err := domain.RequireRemote(category); err != nil {
		return 0, err
	}

	query := url.Values{}
	if filter := category.Filter(); filter != "" {
		query.Set("category", filter)
	}

	dto, err := Send[countDTO](ctx, c.pipeline, Request{
		Operation: OpCountForCategory,
		Method:    http.MethodGet,
		Path:      "/quotes/count",
		Query:     query,
	})
	if err != nil {
		return 0, err
	}

	count, err := translateCount(dto.Count)
	if err != nil {
		return 0, domain.NewDecodingError(OpCountForCategory, err)
	}

	return count, nil
}

// TopQuotes returns the most liked quotes in category, in server order.
func (c *QuoteClient) TopQuotes(ctx context.Context, category domain.Category) ([]domain.Quote, error) {
	if err := domain.RequireRemote(category); err != nil {
		return nil, err
	}

	query := url.Values{}
	if filter := category.Filter(); filter != "" {
		query.Set("category", filter)
	}

	return c.fetchQuotes(ctx, Request{
		Operation: OpTopQuotes,
		Method:    http.MethodGet,
		Path:      "/quotes/top",
		Query:     query,
	})
}

// LikeCount returns the server-side like count of a quote.
func (c *QuoteClient) LikeCount(ctx context.Context, id int) (int, error) {
	if err := ValidatePositive(id, "id"); err != nil {
		return 0, err
	}

	dto, err := Send[likesDTO](ctx, c.pipeline, Request{
		Operation: OpLikeCount,
		Method:    http.MethodGet,
		Path:      "/quotes/" + strconv.Itoa(id) + "/likes",
	})
	if err != nil {
		return 0, err
	}

	likes, err := translateCount(dto.Likes)
	if err != nil {
		return 0, domain.NewDecodingError(OpLikeCount, err)
	}

	return likes, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return "quote-api"
}

// Check verifies the quote API answers the cheapest read it serves.
// Implements ports.HealthChecker.
func (c *QuoteClient) Check(ctx context.Context) error {
	_, err := c.CountForCategory(ctx, domain.CategoryAll)
	return err
}

// fetchQuotes sends a request answered by a list of quotes and translates it.
func (c *QuoteClient) fetchQuotes(ctx context.Context, req Request) ([]domain.Quote, error) {
	list, err := Send[quoteListDTO](ctx, c.pipeline, req)
	if err != nil {
		return nil, err
	}

	quotes, err := TranslateSlice(list, translateQuote)
	if err != nil {
		return nil, c.pipeline.fail(ctx, req, domain.NewDecodingError(req.Operation, err))
	}

	return quotes, nil
}

// fetchQuoteByID sends a request about one quote and translates the single quote answer.
func (c *QuoteClient) fetchQuoteByID(ctx context.Context, operation, method string, id int, suffix string) (domain.Quote, error) {
	if err := ValidatePositive(id, "id"); err != nil {
		return domain.Quote{}, err
	}

	req := Request{
		Operation: operation,
		Method:    method,
		Path:      "/quotes/" + strconv.Itoa(id) + suffix,
	}

	dto, err := Send[quoteDTO](ctx, c.pipeline, req)
	if err != nil {
		return domain.Quote{}, err
	}

	q, err := translateQuote(&dto)
	if err != nil {
		return domain.Quote{}, c.pipeline.fail(ctx, req, domain.NewDecodingError(operation, err))
	}

	return *q, nil
}
