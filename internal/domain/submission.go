package domain

import (
	"strings"
)

// FeedbackType classifies user feedback.
type FeedbackType string

// Feedback types accepted by the quote API.
const (
	FeedbackGeneral FeedbackType = "general"
	FeedbackBug     FeedbackType = "bug"
	FeedbackFeature FeedbackType = "feature"
	FeedbackContent FeedbackType = "content"
)

// ParseFeedbackType parses a feedback type case-insensitively.
func ParseFeedbackType(s string) (FeedbackType, error) {
	t := FeedbackType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case FeedbackGeneral, FeedbackBug, FeedbackFeature, FeedbackContent:
		return t, nil
	default:
		return "", NewValidationErrorWithValue("type", "unknown feedback type", s)
	}
}

// Feedback is a message sent from a user to the quote service maintainers.
type Feedback struct {
	Text  string
	Type  FeedbackType
	Email string // optional
}

// Validate checks the feedback before it is sent.
func (f Feedback) Validate() error {
	if strings.TrimSpace(f.Text) == "" {
		return NewValidationError("text", "feedback text is required")
	}
	if _, err := ParseFeedbackType(string(f.Type)); err != nil {
		return err
	}
	return nil
}

// QuoteSubmission is a user-proposed quote awaiting moderation.
type QuoteSubmission struct {
	Text           string
	Author         string   // optional
	Classification Category // must be a concrete classification
	SubmitterName  string   // optional
}

// Validate checks the submission before it is sent.
func (s QuoteSubmission) Validate() error {
	if strings.TrimSpace(s.Text) == "" {
		return NewValidationError("text", "quote text is required")
	}
	if !s.NormalizedClassification().IsClassification() {
		return NewValidationErrorWithValue("classification", "a concrete classification is required", string(s.Classification))
	}
	return nil
}

// NormalizedClassification returns the classification in its lowercase wire form.
func (s QuoteSubmission) NormalizedClassification() Category {
	return Category(strings.ToLower(strings.TrimSpace(string(s.Classification))))
}
