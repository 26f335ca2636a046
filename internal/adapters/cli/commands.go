package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotedroplet/droplet/internal/domain"
)

func newRandomCommand(c *container) *cobra.Command {
	var category string
	var short bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			quote, err := c.service.RandomQuote(ctx, cat, short)
			if err != nil {
				return err
			}

			if err := c.service.RecordViewed(ctx, quote); err != nil {
				c.logger.WarnContext(ctx, "recording viewed quote failed", slog.Any("error", err))
			}

			printQuote(cmd.OutOrStdout(), quote)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryAll), "category, or bookmarked for your bookmarks")
	cmd.Flags().BoolVarP(&short, "short", "s", false, "only short quotes")

	return cmd
}

func newAuthorCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "author <name>",
		Short: "List quotes by an author",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes, err := c.service.QuotesByAuthor(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printQuotes(cmd.OutOrStdout(), quotes)
			return nil
		},
	}
}

func newSearchCommand(c *container) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search quote text and authors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}

			quotes, err := c.service.SearchQuotes(cmd.Context(), strings.Join(args, " "), cat)
			if err != nil {
				return err
			}
			printQuotes(cmd.OutOrStdout(), quotes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryAll), "limit the search to a category")

	return cmd
}

func newRecentCommand(c *container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently added quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotes, err := c.service.RecentQuotes(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printQuotes(cmd.OutOrStdout(), quotes)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of quotes")

	return cmd
}

func newGetCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			quote, err := c.service.QuoteByID(ctx, id)
			if err != nil {
				return err
			}

			if err := c.service.RecordViewed(ctx, quote); err != nil {
				c.logger.WarnContext(ctx, "recording viewed quote failed", slog.Any("error", err))
			}

			printQuote(cmd.OutOrStdout(), quote)
			return nil
		},
	}
}

func newSubmitCommand(c *container) *cobra.Command {
	var submission domain.QuoteSubmission
	var category string

	cmd := &cobra.Command{
		Use:   "submit <text>",
		Short: "Submit a quote for review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			submission.Text = strings.Join(args, " ")
			submission.Classification = domain.Category(category)

			if err := c.service.AddQuote(cmd.Context(), submission); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Thanks! Your quote was submitted for review.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&submission.Author, "author", "a", "", "who said it")
	cmd.Flags().StringVarP(&category, "category", "c", "", "classification, e.g. wisdom")
	cmd.Flags().StringVar(&submission.SubmitterName, "name", "", "your name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newFeedbackCommand(c *container) *cobra.Command {
	var feedbackType, email string

	cmd := &cobra.Command{
		Use:   "feedback <message>",
		Short: "Send feedback to the Quote Droplet maintainers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseFeedbackType(feedbackType)
			if err != nil {
				return err
			}

			feedback := domain.Feedback{Text: strings.Join(args, " "), Type: t, Email: email}
			if err := c.service.SendFeedback(cmd.Context(), feedback); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Thanks for the feedback!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&feedbackType, "type", "t", string(domain.FeedbackGeneral), "general, bug, feature or content")
	cmd.Flags().StringVar(&email, "email", "", "where to reach you (optional)")

	return cmd
}

func newLikeCommand(c *container, like bool) *cobra.Command {
	use, short, done := "like <id>", "Like a quote", "Liked"
	if !like {
		use, short, done = "unlike <id>", "Remove your like from a quote", "Unliked"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := c.service.SetLiked(cmd.Context(), id, like)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d (%d likes)\n", done, result.Quote.ID, result.Quote.Likes)
			return nil
		},
	}
}

func newCountsCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show how many quotes each category holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printCounts(cmd.OutOrStdout(), c.service.CategoryCounts(cmd.Context()))
			return nil
		},
	}
}

func newTopCommand(c *container) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most liked quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}

			quotes, err := c.service.TopQuotes(cmd.Context(), cat)
			if err != nil {
				return err
			}
			printQuotes(cmd.OutOrStdout(), quotes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryAll), "category")

	return cmd
}

func newBookmarkCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <id>",
		Short: "Bookmark a quote, or remove the bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			quote, err := c.service.QuoteByID(ctx, id)
			if err != nil {
				return err
			}

			bookmarked, err := c.service.ToggleBookmark(ctx, quote)
			if err != nil {
				return err
			}

			if bookmarked {
				fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked #%d\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed bookmark #%d\n", id)
			}
			return nil
		},
	}
}

func newBookmarksCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "List bookmarked quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotes, err := c.service.BookmarkedQuotes(cmd.Context())
			if err != nil {
				return err
			}
			printQuotes(cmd.OutOrStdout(), quotes)
			return nil
		},
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: quote id must be a non-negative integer, got %q", errUsage, raw)
	}
	return id, nil
}
