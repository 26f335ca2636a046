package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/quotedroplet/droplet/internal/adapters/clients"
	"github.com/quotedroplet/droplet/internal/domain"
	"github.com/quotedroplet/droplet/internal/platform/config"
)

// newTestTransport creates an instrumented client against a test HTTP server.
func newTestTransport(t *testing.T, handler http.HandlerFunc) *clients.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "test-quote",
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 3,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	return client
}

// setupQuoteClient creates a QuoteClient with a test HTTP server that always picks the first candidate.
func setupQuoteClient(t *testing.T, handler http.HandlerFunc) *QuoteClient {
	t.Helper()

	return NewQuoteClient(QuoteClientConfig{
		Transport: newTestTransport(t, handler),
		Logger:    discardLogger(),
		Pick:      func(int) int { return 0 },
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func quoteJSON(id int, text, author, classification string, likes int) map[string]any {
	return map[string]any{
		"id":             id,
		"text":           text,
		"author":         author,
		"classification": classification,
		"likes":          likes,
	}
}

func TestNewQuoteClient_PanicsWithoutTransport(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteClient(QuoteClientConfig{})
	})
}

func TestQuoteClient_RandomQuote(t *testing.T) {
	tests := []struct {
		name      string
		category  domain.Category
		short     bool
		body      string
		wantQuery string
		wantID    int
	}{
		{
			name:      "any category",
			category:  domain.CategoryAll,
			body:      `[{"id":3,"text":"Stay hungry.","author":"Steve Jobs","classification":"motivation","likes":4}]`,
			wantQuery: "",
			wantID:    3,
		},
		{
			name:      "classification filter is sent",
			category:  domain.CategoryWisdom,
			body:      `[{"id":9,"text":"Know thyself.","author":"Socrates","classification":"wisdom"}]`,
			wantQuery: "classification=wisdom",
			wantID:    9,
		},
		{
			name:      "short limit is sent",
			category:  domain.CategoryAll,
			short:     true,
			body:      `[{"id":5,"text":"Be.","classification":"love"}]`,
			wantQuery: "maxLength=65",
			wantID:    5,
		},
		{
			name:     "candidates outside the category are discarded",
			category: domain.CategoryLove,
			body: `[{"id":1,"text":"Work hard.","classification":"discipline"},
				{"id":2,"text":"Love wins.","classification":"Love"}]`,
			wantQuery: "classification=love",
			wantID:    2,
		},
		{
			name:     "long candidates are discarded when short",
			category: domain.CategoryAll,
			short:    true,
			body: fmt.Sprintf(`[{"id":1,"text":%q,"classification":"wisdom"},{"id":2,"text":"Brief.","classification":"wisdom"}]`,
				strings.Repeat("x", 66)),
			wantQuery: "maxLength=65",
			wantID:    2,
		},
		{
			name:      "single object response",
			category:  domain.CategoryAll,
			body:      `{"id":11,"text":"One.","classification":"wisdom"}`,
			wantQuery: "",
			wantID:    11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/quotes/random", r.URL.Path)
				gotQuery = r.URL.RawQuery
				_, _ = io.WriteString(w, tt.body)
			})

			quote, err := client.RandomQuote(context.Background(), tt.category, tt.short)

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, quote.ID)
			assert.Equal(t, tt.wantQuery, gotQuery)
		})
	}
}

func TestQuoteClient_RandomQuote_NoCandidates(t *testing.T) {
	for name, body := range map[string]string{
		"empty list":   `[]`,
		"all filtered": `[{"id":1,"text":"Work hard.","classification":"discipline"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			client := setupQuoteClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, body)
			})

			quote, err := client.RandomQuote(context.Background(), domain.CategoryWisdom, false)

			require.NoError(t, err)
			assert.True(t, quote.IsPlaceholder())
			assert.Equal(t, domain.NoQuoteFoundText, quote.Text)
		})
	}
}

func TestQuoteClient_RandomQuote_UsesPick(t *testing.T) {
	var sizes []int
	client := NewQuoteClient(QuoteClientConfig{
		Transport: newTestTransport(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `[{"id":1,"text":"a"},{"id":2,"text":"b"},{"id":3,"text":"c"}]`)
		}),
		Logger: discardLogger(),
		Pick: func(n int) int {
			sizes = append(sizes, n)
			return n - 1
		},
	})

	quote, err := client.RandomQuote(context.Background(), domain.CategoryAll, false)

	require.NoError(t, err)
	assert.Equal(t, 3, quote.ID)
	assert.Equal(t, []int{3}, sizes)
}

func TestQuoteClient_RandomQuote_RejectsLocalCategory(t *testing.T) {
	called := false
	client := setupQuoteClient(t, func(http.ResponseWriter, *http.Request) { called = true })

	_, err := client.RandomQuote(context.Background(), domain.CategoryBookmarked, false)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, called)
}

// TestQuoteClient_RandomQuote_Property checks that any returned quote respects
// the requested category and length whatever the server sends.
func TestQuoteClient_RandomQuote_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		categories := domain.RemoteCategories()
		category := rapid.SampledFrom(categories).Draw(rt, "category")
		short := rapid.Bool().Draw(rt, "short")

		n := rapid.IntRange(0, 8).Draw(rt, "n")
		list := make([]map[string]any, n)
		for i := range list {
			list[i] = quoteJSON(i+1,
				strings.Repeat("w", rapid.IntRange(1, 120).Draw(rt, "length")),
				"Someone",
				string(rapid.SampledFrom(domain.Classifications()).Draw(rt, "classification")),
				0,
			)
		}
		body, err := json.Marshal(list)
		if err != nil {
			rt.Fatal(err)
		}

		client := NewQuoteClient(QuoteClientConfig{
			Transport: &stubTransport{base: "https://quotes.example", respond: respondWith(http.StatusOK, string(body))},
			Logger:    discardLogger(),
			Pick: func(n int) int {
				return rapid.IntRange(0, n-1).Draw(rt, "pick")
			},
		})

		quote, err := client.RandomQuote(context.Background(), category, short)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if quote.IsPlaceholder() {
			return
		}
		if !quote.InCategory(category) {
			rt.Fatalf("quote %d classified %q returned for %q", quote.ID, quote.Classification, category)
		}
		if short && !quote.FitsLength(DefaultShortMaxLength) {
			rt.Fatalf("quote %d too long for a short request", quote.ID)
		}
	})
}

func TestQuoteClient_QuotesByAuthor(t *testing.T) {
	var gotQuery string
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes", r.URL.Path)
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, http.StatusOK, []any{
			quoteJSON(1, "The obstacle is the way.", "Marcus Aurelius & Sons", "philosophy", 2),
			quoteJSON(2, "Waste no more time.", "Marcus Aurelius & Sons", "wisdom", 0),
		})
	})

	quotes, err := client.QuotesByAuthor(context.Background(), "Marcus Aurelius & Sons")

	require.NoError(t, err)
	assert.Equal(t, "author=Marcus+Aurelius+%26+Sons", gotQuery)
	require.Len(t, quotes, 2)
	assert.Equal(t, domain.Quote{ID: 1, Text: "The obstacle is the way.", Author: "Marcus Aurelius & Sons", Classification: "philosophy", Likes: 2}, quotes[0])
}

func TestQuoteClient_QuotesByAuthor_Blank(t *testing.T) {
	client := setupQuoteClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.QuotesByAuthor(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuoteClient_SearchQuotes(t *testing.T) {
	body := []any{
		quoteJSON(1, "Courage is grace under pressure.", "Hemingway", "inspiration", 0),
		quoteJSON(2, "Unrelated text.", "Courageous Author", "inspiration", 0),
		quoteJSON(3, "Nothing to see.", "Nobody", "inspiration", 0),
	}

	t.Run("filters client-side", func(t *testing.T) {
		var gotQuery string
		client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			writeJSON(t, w, http.StatusOK, body)
		})

		quotes, err := client.SearchQuotes(context.Background(), "COURAGE", domain.CategoryInspiration)

		require.NoError(t, err)
		assert.Equal(t, "category=inspiration&search=COURAGE", gotQuery)
		require.Len(t, quotes, 2)
		assert.Equal(t, 1, quotes[0].ID)
		assert.Equal(t, 2, quotes[1].ID)
	})

	t.Run("filter disabled", func(t *testing.T) {
		client := NewQuoteClient(QuoteClientConfig{
			Transport: newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.URL.Query().Get("category"))
				writeJSON(t, w, http.StatusOK, body)
			}),
			Logger:              discardLogger(),
			DisableSearchFilter: true,
		})

		quotes, err := client.SearchQuotes(context.Background(), "courage", domain.CategoryAll)

		require.NoError(t, err)
		assert.Len(t, quotes, 3)
	})
}

func TestQuoteClient_RecentQuotes(t *testing.T) {
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/recent", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []any{
			quoteJSON(9, "Newest.", "", "love", 0),
			quoteJSON(8, "Newer.", "", "love", 0),
			quoteJSON(7, "New.", "", "love", 0),
		})
	})

	quotes, err := client.RecentQuotes(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, 9, quotes[0].ID)
	assert.Equal(t, 8, quotes[1].ID)

	_, err = client.RecentQuotes(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuoteClient_AddQuote(t *testing.T) {
	var got map[string]any
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quotes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": 40})
	})

	err := client.AddQuote(context.Background(), domain.QuoteSubmission{
		Text:           "Simplicity is the ultimate sophistication.",
		Author:         "Leonardo da Vinci",
		Classification: "Wisdom",
		SubmitterName:  "Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"text":           "Simplicity is the ultimate sophistication.",
		"author":         "Leonardo da Vinci",
		"classification": "wisdom",
		"submitter_name": "Ada",
		"approved":       false,
		"likes":          float64(0),
	}, got)
}

func TestQuoteClient_AddQuote_Outcomes(t *testing.T) {
	submission := domain.QuoteSubmission{Text: "Be kind.", Classification: domain.CategoryLove}

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "empty acknowledgement", status: http.StatusOK, body: ""},
		{name: "unreadable acknowledgement", status: http.StatusCreated, body: "created"},
		{name: "duplicate", status: http.StatusConflict, body: `{"error":"exists"}`, wantErr: domain.ErrConflict},
		{name: "server error", status: http.StatusInternalServerError, body: "", wantErr: domain.ErrHTTP},
		{name: "bad request", status: http.StatusBadRequest, body: "", wantErr: domain.ErrHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupQuoteClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := client.AddQuote(context.Background(), submission)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == domain.ErrConflict {
				assert.Equal(t, domain.DuplicateQuoteMessage, err.Error())
			}
		})
	}
}

func TestQuoteClient_AddQuote_Invalid(t *testing.T) {
	client := setupQuoteClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})

	for name, s := range map[string]domain.QuoteSubmission{
		"blank text":         {Text: " ", Classification: domain.CategoryLove},
		"all is not allowed": {Text: "Hi.", Classification: domain.CategoryAll},
		"unknown":            {Text: "Hi.", Classification: "poetry"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, client.AddQuote(context.Background(), s), domain.ErrValidation)
		})
	}
}

func TestQuoteClient_SendFeedback(t *testing.T) {
	var got map[string]any
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/feedback", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.SendFeedback(context.Background(), domain.Feedback{Text: "Love it", Type: "Feature"})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "Love it", "type": "feature"}, got)
}

func TestQuoteClient_LikeAndUnlike(t *testing.T) {
	likes := 4
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/12/like", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			likes++
		case http.MethodDelete:
			likes--
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
		writeJSON(t, w, http.StatusOK, quoteJSON(12, "Hi.", "A", "love", likes))
	})

	liked, err := client.LikeQuote(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 5, liked.Likes)

	unliked, err := client.UnlikeQuote(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 4, unliked.Likes)
}

func TestQuoteClient_QuoteByID(t *testing.T) {
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quotes/7" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(t, w, http.StatusOK, quoteJSON(7, "Seven.", "", "wisdom", 1))
	})

	quote, err := client.QuoteByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Seven.", quote.Text)

	_, err = client.QuoteByID(context.Background(), 8)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, domain.StatusCode(err))

	_, err = client.QuoteByID(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuoteClient_QuoteByID_MissingFields(t *testing.T) {
	client := setupQuoteClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"author":"Nobody"}`)
	})

	_, err := client.QuoteByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrDecoding)
}

func TestQuoteClient_CountForCategory(t *testing.T) {
	tests := []struct {
		name      string
		category  domain.Category
		body      string
		wantQuery string
		want      int
		wantErr   error
	}{
		{name: "all omits the filter", category: domain.CategoryAll, body: `{"count":120}`, want: 120},
		{name: "category filter", category: domain.CategoryLove, body: `{"count":7}`, wantQuery: "category=love", want: 7},
		{name: "missing count", category: domain.CategoryAll, body: `{}`, wantErr: domain.ErrDecoding},
		{name: "negative count", category: domain.CategoryAll, body: `{"count":-2}`, wantErr: domain.ErrDecoding},
		{name: "wrong shape", category: domain.CategoryAll, body: `[1,2]`, wantErr: domain.ErrDecoding},
		{name: "empty body", category: domain.CategoryAll, body: ``, wantErr: domain.ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/quotes/count", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_, _ = io.WriteString(w, tt.body)
			})

			count, err := client.CountForCategory(context.Background(), tt.category)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestQuoteClient_TopQuotes(t *testing.T) {
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/top", r.URL.Path)
		assert.Equal(t, "upliftment", r.URL.Query().Get("category"))
		writeJSON(t, w, http.StatusOK, []any{
			quoteJSON(2, "Rise.", "", "upliftment", 30),
			quoteJSON(5, "Shine.", "", "upliftment", 12),
		})
	})

	quotes, err := client.TopQuotes(context.Background(), domain.CategoryUpliftment)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, 30, quotes[0].Likes)
}

func TestQuoteClient_LikeCount(t *testing.T) {
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/3/likes", r.URL.Path)
		_, _ = io.WriteString(w, `{"likes":17}`)
	})

	likes, err := client.LikeCount(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 17, likes)
}

func TestQuoteClient_ServerErrors(t *testing.T) {
	client := setupQuoteClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.TopQuotes(context.Background(), domain.CategoryAll)

	require.ErrorIs(t, err, domain.ErrHTTP)
	assert.Equal(t, http.StatusServiceUnavailable, domain.StatusCode(err))
}

func TestQuoteClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	transport, err := clients.New(&clients.Config{
		ServiceName: "test-quote",
		BaseURL:     url,
		Timeout:     time.Second,
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	client := NewQuoteClient(QuoteClientConfig{Transport: transport, Logger: discardLogger()})

	_, err = client.RecentQuotes(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestQuoteClient_Health(t *testing.T) {
	healthy := true
	client := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/count", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"count":1}`)
	})

	assert.Equal(t, "quote-api", client.Name())
	require.NoError(t, client.Check(context.Background()))

	healthy = false
	assert.ErrorIs(t, client.Check(context.Background()), domain.ErrHTTP)
}
