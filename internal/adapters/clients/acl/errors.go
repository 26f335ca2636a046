package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/quotedroplet/droplet/internal/domain"
)

// mapSubmissionError applies the rules shared by the fire-and-forget writes:
// a 409 becomes a domain.ConflictError, and an absent or undecodable body after a
// 2xx counts as success.
func (c *QuoteClient) mapSubmissionError(ctx context.Context, operation string, err error) error {
	switch {
	case err == nil:
		return nil

	case domain.StatusCode(err) == http.StatusConflict:
		return domain.NewConflictError(domain.DuplicateQuoteMessage)

	case domain.IsEmptyResponse(err):
		c.logger.DebugContext(ctx, "ignoring unreadable acknowledgement",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return nil

	default:
		return err
	}
}
