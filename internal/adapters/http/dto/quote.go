package dto

import (
	"strconv"

	"github.com/quotedroplet/droplet/internal/domain"
)

// QuoteResponse is the HTTP representation of a quote.
type QuoteResponse struct {
	ID             int    `json:"id"`
	Text           string `json:"text"`
	Author         string `json:"author"`
	DisplayAuthor  string `json:"displayAuthor"`
	Classification string `json:"classification,omitempty"`
	Likes          int    `json:"likes"`
	Placeholder    bool   `json:"placeholder,omitempty"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		Text:           q.Text,
		Author:         q.Author,
		DisplayAuthor:  q.DisplayAuthor(),
		Classification: q.Classification,
		Likes:          q.Likes,
		Placeholder:    q.IsPlaceholder(),
	}
}

// NewQuoteResponses converts a list of domain quotes. The result is never nil.
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}
	return out
}

// QuoteCursorID identifies a quote inside a pagination cursor.
func QuoteCursorID(q QuoteResponse) string {
	return strconv.Itoa(q.ID)
}

// LikeResponse reports the outcome of a like or unlike.
type LikeResponse struct {
	Quote QuoteResponse `json:"quote"`
	Liked bool          `json:"liked"`
}

// BookmarkResponse reports the outcome of a bookmark toggle.
type BookmarkResponse struct {
	Quote      QuoteResponse `json:"quote"`
	Bookmarked bool          `json:"bookmarked"`
}

// CountsResponse maps category names to quote counts. Categories whose count
// could not be fetched are absent.
type CountsResponse struct {
	Counts map[string]int `json:"counts"`
}

// NewCountsResponse converts per-category counts.
func NewCountsResponse(counts map[domain.Category]int) CountsResponse {
	out := make(map[string]int, len(counts))
	for c, n := range counts {
		out[string(c)] = n
	}
	return CountsResponse{Counts: out}
}

// RandomQuoteQuery holds the query parameters of GET /quotes/random.
type RandomQuoteQuery struct {
	Category string `form:"category" json:"category" validate:"omitempty,category"`
	Short    bool   `form:"short" json:"short"`
}

// CategoryOrAll returns the parsed category, defaulting to all.
func (q RandomQuoteQuery) CategoryOrAll() domain.Category {
	return categoryOrAll(q.Category)
}

// AuthorQuery holds the query parameters of GET /quotes.
type AuthorQuery struct {
	Author string `form:"author" json:"author" validate:"required,notempty"`
	PaginationRequest
}

// SearchQuery holds the query parameters of GET /quotes/search.
type SearchQuery struct {
	Keyword  string `form:"q" json:"q" validate:"required,notempty"`
	Category string `form:"category" json:"category" validate:"omitempty,category"`
}

// CategoryOrAll returns the parsed category, defaulting to all.
func (q SearchQuery) CategoryOrAll() domain.Category {
	return categoryOrAll(q.Category)
}

// RecentQuery holds the query parameters of GET /quotes/recent.
type RecentQuery struct {
	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// TopQuery holds the query parameters of GET /quotes/top.
type TopQuery struct {
	Category string `form:"category" json:"category" validate:"omitempty,category"`
}

// CategoryOrAll returns the parsed category, defaulting to all.
func (q TopQuery) CategoryOrAll() domain.Category {
	return categoryOrAll(q.Category)
}

// SubmitQuoteRequest is the body of POST /quotes.
type SubmitQuoteRequest struct {
	Text           string `json:"text" validate:"required,notempty"`
	Author         string `json:"author"`
	Classification string `json:"classification" validate:"required,classification"`
	SubmitterName  string `json:"submitterName"`
}

// ToDomain converts the request to a submission.
func (r SubmitQuoteRequest) ToDomain() domain.QuoteSubmission {
	return domain.QuoteSubmission{
		Text:           r.Text,
		Author:         r.Author,
		Classification: domain.Category(r.Classification),
		SubmitterName:  r.SubmitterName,
	}
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	Text  string `json:"text" validate:"required,notempty"`
	Type  string `json:"type" validate:"omitempty,feedbacktype"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ToDomain converts the request to feedback. A missing type means general.
func (r FeedbackRequest) ToDomain() domain.Feedback {
	t := domain.FeedbackGeneral
	if parsed, err := domain.ParseFeedbackType(r.Type); err == nil {
		t = parsed
	}
	return domain.Feedback{Text: r.Text, Type: t, Email: r.Email}
}

// AcceptedResponse acknowledges a fire-and-forget submission.
type AcceptedResponse struct {
	Status string `json:"status"`
}

func categoryOrAll(raw string) domain.Category {
	c, err := domain.ParseCategory(raw)
	if err != nil {
		return domain.CategoryAll
	}
	return c
}
