package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// Cursor errors.
var (
	// ErrInvalidCursor is returned when cursor decoding fails or the cursor no longer
	// lines up with the listing it was issued for.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor indicates no cursor was provided (first page request).
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest represents pagination parameters from the request.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor" json:"cursor"`

	// Limit is the maximum number of items to return (1-100, default 20).
	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// DecodeCursor decodes the cursor string into CursorData.
// Returns ErrNoCursor if cursor is empty (first page request).
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	return DecodeCursor(p.Cursor)
}

// PaginatedResponse is a generic paginated response structure.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// NextCursor is the cursor to use for the next page. Empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`

	// HasMore indicates whether there are more items after this page.
	HasMore bool `json:"hasMore"`
}

// CursorData marks a position in a listing the quote API returns in full.
// The quote API has no paging of its own, so pages are slices of one stable listing.
type CursorData struct {
	// Offset is the index of the first item of the next page.
	Offset int `json:"o"`

	// LastID is the id of the item just before Offset. A mismatch means the listing changed.
	LastID string `json:"id"`
}

// Paginate returns the page of items selected by req. id identifies an item for
// cursor consistency checks. A cursor that does not fit items yields ErrInvalidCursor.
func Paginate[T any](items []T, req PaginationRequest, id func(T) string) (*PaginatedResponse[T], error) {
	offset := 0

	cursor, err := req.DecodeCursor()
	switch {
	case errors.Is(err, ErrNoCursor):
	case err != nil:
		return nil, err
	default:
		if cursor.Offset <= 0 || cursor.Offset > len(items) || id(items[cursor.Offset-1]) != cursor.LastID {
			return nil, ErrInvalidCursor
		}
		offset = cursor.Offset
	}

	end := min(offset+req.GetLimit(), len(items))
	page := items[offset:end]
	if page == nil {
		page = []T{}
	}

	resp := &PaginatedResponse[T]{
		Items:   page,
		HasMore: end < len(items),
	}
	if resp.HasMore {
		resp.NextCursor = EncodeCursor(&CursorData{Offset: end, LastID: id(items[end-1])})
	}

	return resp, nil
}

// EncodeCursor encodes cursor data to a base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to cursor data.
// Returns ErrNoCursor if the encoded string is empty.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	jsonBytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData

	err = json.Unmarshal(jsonBytes, &data)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}
