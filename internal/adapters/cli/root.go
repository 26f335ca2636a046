// Package cli implements the droplet command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/quotedroplet/droplet/internal/app"
	"github.com/quotedroplet/droplet/internal/bootstrap"
	"github.com/quotedroplet/droplet/internal/platform/config"
	"github.com/quotedroplet/droplet/internal/platform/logging"
	"github.com/quotedroplet/droplet/internal/store"
)

// storeMemory selects the in-memory store for --store.
const storeMemory = "memory"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configDir string
	profile   string
	baseURL   string
	store     string
	logLevel  string
}

// container holds what a subcommand needs once the root pre-run has wired it.
type container struct {
	opts    globalOptions
	service *app.QuoteService
	stack   *bootstrap.Stack
	logger  *slog.Logger
}

// NewRootCommand creates the droplet root command with all subcommands attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	return newRootCommand(&container{}, version, commit, date)
}

// newRootCommand builds the command tree around c. Cobra skips post-run hooks
// when a command fails, so callers owning c also close it themselves.
func newRootCommand(c *container, version, commit, date string) *cobra.Command {
	root := &cobra.Command{
		Use:   "droplet",
		Short: "Quote Droplet - quotes from the command line",
		Long: `droplet fetches, searches, submits and likes quotes from the Quote Droplet API.

Bookmarks, liked quotes and viewing history are kept in a local TOML file.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.wire(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			c.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.baseURL, "base-url", "", "quote API base URL (default from config)")
	flags.StringVar(&c.opts.store, "store", store.DefaultPath, `local store file, or "memory" to keep nothing`)
	flags.StringVar(&c.opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	flags.StringVar(&c.opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	flags.StringVar(&c.opts.profile, "profile", "local", "configuration profile")

	root.AddCommand(
		newRandomCommand(c),
		newAuthorCommand(c),
		newSearchCommand(c),
		newRecentCommand(c),
		newGetCommand(c),
		newSubmitCommand(c),
		newFeedbackCommand(c),
		newLikeCommand(c, true),
		newLikeCommand(c, false),
		newCountsCommand(c),
		newTopCommand(c),
		newBookmarkCommand(c),
		newBookmarksCommand(c),
	)

	return root
}

// wire loads configuration, applies flag overrides and builds the quote service.
func (c *container) wire(logOut io.Writer) error {
	cfg, err := config.LoadFrom(c.opts.configDir, c.opts.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.opts.baseURL != "" {
		cfg.Services.Quote.BaseURL = c.opts.baseURL
	}
	if c.opts.store == storeMemory {
		cfg.Store.Backend = store.BackendMemory
	} else {
		cfg.Store.Backend = store.BackendFile
		cfg.Store.Path = c.opts.store
	}
	cfg.Log.Level = c.opts.logLevel
	cfg.Log.Format = "pretty"

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.logger = logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "droplet",
		Version: cfg.App.Version,
	}, logOut)

	stack, err := bootstrap.NewStack(cfg, c.logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	c.stack = stack
	c.service = stack.Service

	return nil
}

// close releases the stack. It is safe to call more than once.
func (c *container) close() {
	if c.stack != nil {
		c.stack.Close()
		c.stack = nil
	}
}

// Execute runs the root command and maps failures to an exit code.
func Execute(version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &container{}
	defer c.close()

	root := newRootCommand(c, version, commit, date)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		return 1
	}
	return 0
}

// errUsage reports bad command line input that cobra's own arg checks cannot catch.
var errUsage = errors.New("usage")
