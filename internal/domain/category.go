package domain

import (
	"strings"
)

// Category is a quote classification. The set is closed.
type Category string

// Remote categories understood by the quote API, plus the client-local bookmarked view.
const (
	CategoryWisdom      Category = "wisdom"
	CategoryMotivation  Category = "motivation"
	CategoryDiscipline  Category = "discipline"
	CategoryPhilosophy  Category = "philosophy"
	CategoryInspiration Category = "inspiration"
	CategoryUpliftment  Category = "upliftment"
	CategoryLove        Category = "love"
	CategoryAll         Category = "all"

	// CategoryBookmarked selects locally bookmarked quotes and is never sent to the server.
	CategoryBookmarked Category = "bookmarked"
)

// classifications are the concrete categories a quote can be filed under, in display order.
var classifications = []Category{
	CategoryWisdom,
	CategoryMotivation,
	CategoryDiscipline,
	CategoryPhilosophy,
	CategoryInspiration,
	CategoryUpliftment,
	CategoryLove,
}

// Classifications returns the concrete categories a quote can be filed under.
func Classifications() []Category {
	out := make([]Category, len(classifications))
	copy(out, classifications)
	return out
}

// RemoteCategories returns every category the quote API accepts: the classifications and CategoryAll.
func RemoteCategories() []Category {
	return append(Classifications(), CategoryAll)
}

// ParseCategory parses a category name case-insensitively, so both the wire form
// ("wisdom") and the display form ("Wisdom") are accepted.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", NewValidationErrorWithValue("category", "unknown category", s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.IsRemote() || c == CategoryBookmarked
}

// IsRemote reports whether the quote API understands c.
func (c Category) IsRemote() bool {
	return c == CategoryAll || c.IsClassification()
}

// IsClassification reports whether a quote can be filed under c.
func (c Category) IsClassification() bool {
	for _, known := range classifications {
		if c == known {
			return true
		}
	}
	return false
}

// Filter returns the value for a category query parameter, or "" when the
// parameter should be omitted (CategoryAll).
func (c Category) Filter() string {
	if c == CategoryAll {
		return ""
	}
	return string(c)
}

// DisplayName returns the capitalized name shown to users, e.g. "Wisdom".
func (c Category) DisplayName() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// RequireRemote returns a validation error unless c can be sent to the quote API.
func RequireRemote(c Category) error {
	if !c.IsRemote() {
		return NewValidationErrorWithValue("category", "category is not served by the quote API", string(c))
	}
	return nil
}
