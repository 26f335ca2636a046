// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// NoQuoteFoundID identifies the client-synthesized placeholder quote.
	NoQuoteFoundID = -1

	// NoQuoteFoundText is the placeholder text shown when a random lookup yields nothing.
	NoQuoteFoundText = "No Quote Found."

	// AnonymousAuthor is what consumers display for quotes without a valid author.
	AnonymousAuthor = "Anonymous"
)

// invalidAuthors are author values the server uses for "no author".
var invalidAuthors = map[string]struct{}{
	"":               {},
	"Unknown Author": {},
	"NULL":           {},
}

// Quote is a quotation as served by the quote API.
// Quotes are values: a like or unlike yields a new Quote rather than mutating one.
type Quote struct {
	// ID is the server-assigned identifier. NoQuoteFoundID marks the placeholder.
	ID int

	// Text is the quotation itself.
	Text string

	// Author may be empty or one of the server's "no author" markers; see IsAuthorValid.
	Author string

	// Classification is the lowercased category name the quote is filed under.
	Classification string

	// Likes is the server-side like count.
	Likes int
}

// NoQuoteFound returns the placeholder quote used when a random lookup returns no candidates.
func NoQuoteFound() Quote {
	return Quote{ID: NoQuoteFoundID, Text: NoQuoteFoundText}
}

// IsPlaceholder reports whether q is the NoQuoteFound placeholder.
func (q Quote) IsPlaceholder() bool {
	return q.ID == NoQuoteFoundID
}

// IsAuthorValid reports whether author names a real person.
// Empty strings and the server's "Unknown Author" and "NULL" markers are not valid.
func IsAuthorValid(author string) bool {
	_, invalid := invalidAuthors[author]
	return !invalid
}

// HasValidAuthor reports whether the quote's author passes IsAuthorValid.
func (q Quote) HasValidAuthor() bool {
	return IsAuthorValid(q.Author)
}

// DisplayAuthor returns the author, or AnonymousAuthor when the author is not valid.
func (q Quote) DisplayAuthor() string {
	if !q.HasValidAuthor() {
		return AnonymousAuthor
	}
	return q.Author
}

// InCategory reports whether the quote is filed under c. Every quote is in CategoryAll.
func (q Quote) InCategory(c Category) bool {
	if c == CategoryAll {
		return true
	}
	return strings.EqualFold(q.Classification, string(c))
}

// FitsLength reports whether the quote text has at most maxLen characters.
// A non-positive maxLen means no limit.
func (q Quote) FitsLength(maxLen int) bool {
	return maxLen <= 0 || utf8.RuneCountInString(q.Text) <= maxLen
}

// Matches reports whether keyword occurs in the quote text or author, ignoring case.
// An empty keyword matches every quote.
func (q Quote) Matches(keyword string) bool {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(q.Text), needle) ||
		strings.Contains(strings.ToLower(q.Author), needle)
}
