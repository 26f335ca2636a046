package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidURL,
		ErrNetwork,
		ErrHTTP,
		ErrNotFound,
		ErrConflict,
		ErrNoData,
		ErrDecoding,
		ErrJSONParsing,
		ErrValidation,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b, "sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

// TestRequestErrors_MatchExactlyOneKind verifies that each constructor yields an error
// that matches its own sentinel and kind and survives wrapping.
func TestRequestErrors_MatchExactlyOneKind(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     ErrorKind
	}{
		{"invalid url", NewInvalidURLError("/quotes", cause), ErrInvalidURL, KindInvalidURL},
		{"network", NewNetworkError("RandomQuote", cause), ErrNetwork, KindNetwork},
		{"http", NewHTTPError(http.StatusInternalServerError), ErrHTTP, KindHTTP},
		{"conflict", NewConflictError(""), ErrConflict, KindConflict},
		{"no data", NewNoDataError("AddQuote"), ErrNoData, KindNoData},
		{"decoding", NewDecodingError("QuoteByID", cause), ErrDecoding, KindDecoding},
		{"json parsing", NewJSONParsingError("SendFeedback", cause), ErrJSONParsing, KindJSONParsing},
		{"validation", NewValidationError("id", "must be positive"), ErrValidation, KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation failed: %w", tt.err)

			require.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.kind, Kind(wrapped))
		})
	}
}

func TestRequestErrors_UnwrapCause(t *testing.T) {
	err := NewNetworkError("TopQuotes", context.Canceled)

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "TopQuotes", netErr.Operation)
}

func TestHTTPError(t *testing.T) {
	t.Run("404 matches not found", func(t *testing.T) {
		err := NewHTTPError(http.StatusNotFound)

		assert.True(t, IsNotFound(err))
		assert.ErrorIs(t, err, ErrHTTP)
		assert.Equal(t, http.StatusNotFound, StatusCode(err))
		assert.Equal(t, "http error: 404 Not Found", err.Error())
	})

	t.Run("500 is not not found", func(t *testing.T) {
		err := NewHTTPError(http.StatusInternalServerError)

		assert.False(t, IsNotFound(err))
		assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	})

	t.Run("missing response uses status 0", func(t *testing.T) {
		err := NewHTTPError(0)

		assert.Equal(t, "http error: no response", err.Error())
		assert.Equal(t, 0, StatusCode(err))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("defaults to duplicate message", func(t *testing.T) {
		err := NewConflictError("")

		assert.Equal(t, DuplicateQuoteMessage, err.Error())
		assert.True(t, IsConflict(err))
	})

	t.Run("custom message", func(t *testing.T) {
		err := NewConflictError("already submitted")

		assert.Equal(t, "already submitted", err.Error())
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationErrorWithValue("limit", "must be positive", 0)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "limit", valErr.Field)
	assert.Equal(t, 0, valErr.Value)
	assert.Equal(t, "validation failed for limit: must be positive", err.Error())

	assert.Equal(t, "validation failed: bad input", NewValidationError("", "bad input").Error())
}

func TestIsEmptyResponse(t *testing.T) {
	assert.True(t, IsEmptyResponse(NewNoDataError("AddQuote")))
	assert.True(t, IsEmptyResponse(NewDecodingError("AddQuote", errors.New("eof"))))
	assert.False(t, IsEmptyResponse(NewHTTPError(http.StatusBadGateway)))
	assert.False(t, IsEmptyResponse(nil))
}

func TestKind_UnknownAndNil(t *testing.T) {
	assert.Equal(t, ErrorKind(""), Kind(nil))
	assert.Equal(t, KindUnknown, Kind(errors.New("mystery")))
}
