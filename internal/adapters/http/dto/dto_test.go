package dto

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/quotedroplet/droplet/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func tracedContext(t *testing.T) (context.Context, string) {
	t.Helper()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	return trace.ContextWithSpanContext(context.Background(), sc), traceID.String()
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "bad", map[string]string{"text": "required"}).
		WithTraceID("abc")

	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, "bad", resp.Error.Message)
	assert.Equal(t, map[string]string{"text": "required"}, resp.Error.Details)
	assert.Equal(t, "abc", resp.TraceID)
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := map[string]int{
		ErrorCodeNotFound:    http.StatusNotFound,
		ErrorCodeConflict:    http.StatusConflict,
		ErrorCodeValidation:  http.StatusBadRequest,
		ErrorCodeBadRequest:  http.StatusBadRequest,
		ErrorCodeUnavailable: http.StatusServiceUnavailable,
		ErrorCodeTimeout:     http.StatusGatewayTimeout,
		ErrorCodeInternal:    http.StatusInternalServerError,
		"SOMETHING_ELSE":     http.StatusInternalServerError,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, HTTPStatusFromCode(code))
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "domain validation",
			err:         domain.NewValidationError("text", "quote text is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantDetails: map[string]string{"text": "quote text is required"},
		},
		{
			name:       "binding",
			err:        fmt.Errorf("%w: unexpected EOF", ErrBinding),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeBadRequest,
		},
		{
			name:       "invalid cursor",
			err:        ErrInvalidCursor,
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeBadRequest,
		},
		{
			name:        "duplicate submission",
			err:         domain.NewConflictError(""),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: domain.DuplicateQuoteMessage,
		},
		{
			name:       "not found",
			err:        domain.NewHTTPError(http.StatusNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "deadline",
			err:        domain.NewNetworkError("RandomQuote", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   ErrorCodeTimeout,
		},
		{
			name:       "network",
			err:        domain.NewNetworkError("RandomQuote", errors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "upstream 500",
			err:        domain.NewHTTPError(http.StatusInternalServerError),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "no data",
			err:        domain.NewNoDataError("QuoteByID"),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "decoding",
			err:        domain.NewDecodingError("QuoteByID", errors.New("bad json")),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:        "invalid url is internal",
			err:         domain.NewInvalidURLError("/quotes", errors.New("bad base")),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "unknown",
			err:         errors.New("secret detail"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Error.Message)
			}
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, resp.Error.Details)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		status, resp := MapError(nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})
}

func TestMapError_StructValidation(t *testing.T) {
	err := Validate(SubmitQuoteRequest{Text: " ", Classification: "all"})

	status, resp := MapError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "text")
	assert.Contains(t, resp.Error.Details, "classification")
}

func TestGetTraceID(t *testing.T) {
	t.Run("span in context", func(t *testing.T) {
		ctx, want := tracedContext(t)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		assert.Equal(t, want, GetTraceID(c))
	})

	t.Run("no span", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, GetTraceID(c))
	})

	t.Run("no request", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Empty(t, GetTraceID(c))
	})
}

func TestHandleError(t *testing.T) {
	ctx, traceID := tracedContext(t)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	HandleError(c, domain.NewConflictError(""))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, c.IsAborted())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeConflict, resp.Error.Code)
	assert.Equal(t, traceID, resp.TraceID)
}

func TestRespondWithErrorCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithErrorCode(c, ErrorCodeBadRequest, "quote id must be a number")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quote id must be a number")
}

func TestGetLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{1, 1},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.limit), func(t *testing.T) {
			p := PaginationRequest{Limit: tt.limit}
			assert.Equal(t, tt.want, p.GetLimit())
		})
	}
}

func TestDecodeCursor(t *testing.T) {
	_, err := DecodeCursor("")
	require.ErrorIs(t, err, ErrNoCursor)

	_, err = DecodeCursor("!!!not-base64")
	require.ErrorIs(t, err, ErrInvalidCursor)

	_, err = DecodeCursor(base64.URLEncoding.EncodeToString([]byte("not json")))
	require.ErrorIs(t, err, ErrInvalidCursor)

	encoded := EncodeCursor(&CursorData{Offset: 3, LastID: "7"})
	got, err := DecodeCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, &CursorData{Offset: 3, LastID: "7"}, got)

	assert.Empty(t, EncodeCursor(nil))
}

func TestPaginate(t *testing.T) {
	items := []int{10, 11, 12, 13, 14}
	id := strconv.Itoa

	first, err := Paginate(items, PaginationRequest{Limit: 2}, id)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, first.Items)
	assert.True(t, first.HasMore)
	require.NotEmpty(t, first.NextCursor)

	second, err := Paginate(items, PaginationRequest{Limit: 2, Cursor: first.NextCursor}, id)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 13}, second.Items)
	assert.True(t, second.HasMore)

	last, err := Paginate(items, PaginationRequest{Limit: 2, Cursor: second.NextCursor}, id)
	require.NoError(t, err)
	assert.Equal(t, []int{14}, last.Items)
	assert.False(t, last.HasMore)
	assert.Empty(t, last.NextCursor)
}

func TestPaginate_Empty(t *testing.T) {
	page, err := Paginate[int](nil, PaginationRequest{}, strconv.Itoa)

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestPaginate_InvalidCursor(t *testing.T) {
	items := []int{10, 11, 12}

	tests := map[string]string{
		"garbage":       "%%%",
		"past the end":  EncodeCursor(&CursorData{Offset: 4, LastID: "12"}),
		"zero offset":   EncodeCursor(&CursorData{Offset: 0, LastID: ""}),
		"listing moved": EncodeCursor(&CursorData{Offset: 2, LastID: "99"}),
	}

	for name, cursor := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Paginate(items, PaginationRequest{Cursor: cursor}, strconv.Itoa)
			require.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"text":"Be here now.","classification":"Wisdom"}`},
		{name: "malformed", body: `{invalid}`, wantErr: ErrBinding},
		{name: "blank text", body: `{"text":"   ","classification":"wisdom"}`, wantErr: ErrValidation},
		{name: "all is not a classification", body: `{"text":"x","classification":"all"}`, wantErr: ErrValidation},
		{name: "bookmarked is not a classification", body: `{"text":"x","classification":"bookmarked"}`, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req SubmitQuoteRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.CategoryWisdom, req.ToDomain().NormalizedClassification())
		})
	}
}

func TestBindQueryAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		want    RandomQuoteQuery
	}{
		{name: "defaults", query: "", want: RandomQuoteQuery{}},
		{name: "category and short", query: "category=Love&short=true", want: RandomQuoteQuery{Category: "Love", Short: true}},
		{name: "bookmarked", query: "category=bookmarked", want: RandomQuoteQuery{Category: "bookmarked"}},
		{name: "unknown category", query: "category=gossip", wantErr: true},
		{name: "bad bool", query: "short=maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			var q RandomQuoteQuery
			err := BindQueryAndValidate(c, &q)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestCategoryOrAll(t *testing.T) {
	assert.Equal(t, domain.CategoryAll, RandomQuoteQuery{}.CategoryOrAll())
	assert.Equal(t, domain.CategoryLove, RandomQuoteQuery{Category: "Love"}.CategoryOrAll())
	assert.Equal(t, domain.CategoryBookmarked, SearchQuery{Category: "bookmarked"}.CategoryOrAll())
	assert.Equal(t, domain.CategoryWisdom, TopQuery{Category: "wisdom"}.CategoryOrAll())
}

func TestFeedbackRequest(t *testing.T) {
	require.NoError(t, Validate(FeedbackRequest{Text: "Love it", Type: "Bug", Email: "a@b.co"}))

	err := Validate(FeedbackRequest{Text: "Love it", Type: "rant"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, ValidationErrors(err), "type")

	err = Validate(FeedbackRequest{Text: "Love it", Email: "nope"})
	assert.Equal(t, "must be a valid email address", ValidationErrors(err)["email"])

	assert.Equal(t, domain.FeedbackBug, FeedbackRequest{Text: "x", Type: "Bug"}.ToDomain().Type)
	assert.Equal(t, domain.FeedbackGeneral, FeedbackRequest{Text: "x"}.ToDomain().Type)
}

func TestNewQuoteResponse(t *testing.T) {
	resp := NewQuoteResponse(domain.Quote{ID: 4, Text: "Stay hungry.", Author: "NULL", Classification: "motivation", Likes: 9})

	assert.Equal(t, 4, resp.ID)
	assert.Equal(t, "NULL", resp.Author)
	assert.Equal(t, domain.AnonymousAuthor, resp.DisplayAuthor)
	assert.False(t, resp.Placeholder)

	placeholder := NewQuoteResponse(domain.NoQuoteFound())
	assert.True(t, placeholder.Placeholder)
	assert.Equal(t, domain.NoQuoteFoundText, placeholder.Text)

	assert.NotNil(t, NewQuoteResponses(nil))
}

func TestNewCountsResponse(t *testing.T) {
	resp := NewCountsResponse(map[domain.Category]int{domain.CategoryLove: 3})
	assert.Equal(t, map[string]int{"love": 3}, resp.Counts)
}

func TestValidationMessage(t *testing.T) {
	err := Validate(RecentQuery{Limit: 500})
	assert.Equal(t, "must be less than or equal to 100", ValidationErrors(err)["limit"])

	err = Validate(AuthorQuery{})
	assert.Equal(t, "this field is required", ValidationErrors(err)["author"])
}

func TestValidateAll(t *testing.T) {
	require.NoError(t, ValidateAll(FeedbackRequest{Text: "fine"}))

	err := ValidateAll(validatableRequest{Name: "ok", fail: true})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"name": "reserved"}, ValidationErrors(err))
}

type validatableRequest struct {
	Name string `json:"name" validate:"required"`
	fail bool
}

func (r validatableRequest) Validate() error {
	if r.fail {
		return domain.NewValidationError("name", "reserved")
	}
	return nil
}
