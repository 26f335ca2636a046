package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// bearerPattern matches Authorization header values.
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

	// emailPattern matches bare email addresses logged under any key.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// DefaultRedactOptions returns the masq options used by every handler built in this package.
// Feedback emails and quote submitter names are personal data and never reach the logs.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("email"),
		masq.WithFieldName("Email"),
		masq.WithFieldName("submitter_name"),
		masq.WithFieldName("SubmitterName"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("token"),
		masq.WithFieldName("password"),
		masq.WithFieldName("cookie"),
		masq.WithFieldPrefix("secret"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(emailPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that redacts sensitive data. Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
