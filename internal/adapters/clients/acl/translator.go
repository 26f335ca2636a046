package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/quotedroplet/droplet/internal/domain"
)

// quoteDTO is the quote representation used by the quote API.
// Pointer fields distinguish absent keys from zero values.
type quoteDTO struct {
	ID             *int    `json:"id"`
	Text           *string `json:"text"`
	Author         *string `json:"author"`
	Classification *string `json:"classification"`
	Likes          *int    `json:"likes"`
}

// quoteListDTO accepts either a JSON array of quotes or a single quote object.
type quoteListDTO []quoteDTO

// UnmarshalJSON implements json.Unmarshaler.
func (l *quoteListDTO) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single quoteDTO
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*l = quoteListDTO{single}
		return nil
	}

	var many []quoteDTO
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// countDTO is the body of the category count endpoint.
type countDTO struct {
	Count *int `json:"count"`
}

// likesDTO is the body of the like count endpoint.
type likesDTO struct {
	Likes *int `json:"likes"`
}

// addQuoteRequest is the body of a quote submission. New quotes start unapproved with no likes.
type addQuoteRequest struct {
	Text           string `json:"text"`
	Author         string `json:"author,omitempty"`
	Classification string `json:"classification"`
	SubmitterName  string `json:"submitter_name,omitempty"`
	Approved       bool   `json:"approved"`
	Likes          int    `json:"likes"`
}

// feedbackRequest is the body of a feedback submission.
type feedbackRequest struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Email string `json:"email,omitempty"`
}

var (
	errMissingID   = errors.New("quote is missing id")
	errMissingText = errors.New("quote is missing text")
	errNegative    = errors.New("count is negative")
	errMissing     = errors.New("field is missing")
)

// translateQuote converts a quote DTO into a domain quote.
// Absent author and classification become empty strings and absent likes become 0.
func translateQuote(ext *quoteDTO) (*domain.Quote, error) {
	if ext.ID == nil {
		return nil, errMissingID
	}
	if ext.Text == nil {
		return nil, errMissingText
	}

	q := &domain.Quote{ID: *ext.ID, Text: *ext.Text}
	if ext.Author != nil {
		q.Author = *ext.Author
	}
	if ext.Classification != nil {
		q.Classification = *ext.Classification
	}
	if ext.Likes != nil {
		q.Likes = *ext.Likes
	}

	return q, nil
}

// translateCount validates a count that must be present and non-negative.
func translateCount(n *int) (int, error) {
	switch {
	case n == nil:
		return 0, errMissing
	case *n < 0:
		return 0, errNegative
	default:
		return *n, nil
	}
}

// Translator converts an external DTO into a domain value, rejecting invalid data.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice applies translate to every item, keeping order.
// The first failure aborts the translation.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, *translated)
	}

	return result, nil
}

// ValidateRequired checks that a required string is not blank.
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// ValidatePositive checks that a numeric value is positive.
func ValidatePositive[T ~int | ~int64](value T, fieldName string) error {
	if value <= 0 {
		return domain.NewValidationErrorWithValue(fieldName, "must be positive", value)
	}

	return nil
}
