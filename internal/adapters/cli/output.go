package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/quotedroplet/droplet/internal/domain"
)

// printQuote writes one quote as a text block. Invalid authors print as Anonymous.
func printQuote(w io.Writer, q domain.Quote) {
	if q.IsPlaceholder() {
		fmt.Fprintln(w, q.Text)
		return
	}

	fmt.Fprintf(w, "%s\n  -- %s\n", q.Text, q.DisplayAuthor())

	meta := []string{fmt.Sprintf("#%d", q.ID)}
	if q.Classification != "" {
		meta = append(meta, domain.Category(q.Classification).DisplayName())
	}
	meta = append(meta, fmt.Sprintf("%d likes", q.Likes))
	fmt.Fprintf(w, "  [%s]\n", strings.Join(meta, " | "))
}

// printQuotes writes quotes separated by blank lines, or a note when there are none.
func printQuotes(w io.Writer, quotes []domain.Quote) {
	if len(quotes) == 0 {
		fmt.Fprintln(w, "No quotes found.")
		return
	}

	for i, q := range quotes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printQuote(w, q)
	}
}

// printCounts writes one line per category in display order. Failed categories show as unavailable.
func printCounts(w io.Writer, counts map[domain.Category]int) {
	for _, c := range slices.Concat(domain.Classifications(), []domain.Category{domain.CategoryAll}) {
		n, ok := counts[c]
		if !ok {
			fmt.Fprintf(w, "%-12s unavailable\n", c.DisplayName())
			continue
		}
		fmt.Fprintf(w, "%-12s %d\n", c.DisplayName(), n)
	}
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	var conflict *domain.ConflictError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &conflict):
		return conflict.Message
	case errors.As(err, &validation):
		return validation.Error()
	case domain.IsNotFound(err):
		return "quote not found"
	case errors.Is(err, context.DeadlineExceeded):
		return "the quote service did not answer in time"
	case domain.IsNetwork(err):
		return "could not reach the quote service: " + err.Error()
	case errors.Is(err, domain.ErrHTTP):
		return fmt.Sprintf("the quote service answered with status %d", domain.StatusCode(err))
	default:
		return err.Error()
	}
}
