// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quotedroplet/droplet/internal/adapters/http/dto"
	"github.com/quotedroplet/droplet/internal/app"
	"github.com/quotedroplet/droplet/internal/domain"
	"github.com/quotedroplet/droplet/internal/platform/logging"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Param category query string false "Category, defaults to all"
// @Param short query bool false "Only quotes of at most 65 characters"
// @Success 200 {object} dto.QuoteResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	var query dto.RandomQuoteQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.RandomQuote(c.Request.Context(), query.CategoryOrAll(), query.Short)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.recordViewed(c.Request.Context(), quote)
	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// ListByAuthor handles GET /api/v1/quotes?author=.
// The quote API returns an author's quotes in one listing; pages are cut from it here.
//
// @Summary List quotes by author
// @Tags quotes
// @Produce json
// @Param author query string true "Author name"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} dto.PaginatedResponse[dto.QuoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListByAuthor(c *gin.Context) {
	var query dto.AuthorQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.service.QuotesByAuthor(c.Request.Context(), query.Author)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	page, err := dto.Paginate(dto.NewQuoteResponses(quotes), query.PaginationRequest, dto.QuoteCursorID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Search handles GET /api/v1/quotes/search?q=&category=.
//
// @Summary Search quotes by keyword
// @Tags quotes
// @Produce json
// @Param q query string true "Keyword matched against text and author"
// @Param category query string false "Category, defaults to all"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/search [get]
func (h *QuoteHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.service.SearchQuotes(c.Request.Context(), query.Keyword, query.CategoryOrAll())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// Recent handles GET /api/v1/quotes/recent?limit=.
//
// @Summary List recently added quotes
// @Tags quotes
// @Produce json
// @Param limit query int false "Maximum number of quotes"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/recent [get]
func (h *QuoteHandler) Recent(c *gin.Context) {
	var query dto.RecentQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = dto.DefaultLimit
	}

	quotes, err := h.service.RecentQuotes(c.Request.Context(), limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// Top handles GET /api/v1/quotes/top?category=.
//
// @Summary List the most liked quotes
// @Tags quotes
// @Produce json
// @Param category query string false "Category, defaults to all"
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/quotes/top [get]
func (h *QuoteHandler) Top(c *gin.Context) {
	var query dto.TopQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.service.TopQuotes(c.Request.Context(), query.CategoryOrAll())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// Counts handles GET /api/v1/quotes/counts.
// It always answers 200; categories whose count failed are missing from the map.
//
// @Summary Count quotes per category
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.CountsResponse
// @Router /api/v1/quotes/counts [get]
func (h *QuoteHandler) Counts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCountsResponse(h.service.CategoryCounts(c.Request.Context())))
}

// GetQuoteByID handles GET /api/v1/quotes/:id.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.QuoteByID(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.recordViewed(c.Request.Context(), quote)
	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Submit handles POST /api/v1/quotes. Accepted submissions await moderation.
//
// @Summary Submit a quote for review
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuoteRequest true "Quote submission"
// @Success 202 {object} dto.AcceptedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.AddQuote(c.Request.Context(), req.ToDomain()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.AcceptedResponse{Status: "submitted"})
}

// Feedback handles POST /api/v1/feedback.
//
// @Summary Send feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 202 {object} dto.AcceptedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/feedback [post]
func (h *QuoteHandler) Feedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.SendFeedback(c.Request.Context(), req.ToDomain()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.AcceptedResponse{Status: "sent"})
}

// Like handles POST /api/v1/quotes/:id/like. Liking a liked quote is a no-op.
//
// @Summary Like a quote
// @Tags likes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/like [post]
func (h *QuoteHandler) Like(c *gin.Context) {
	h.setLiked(c, true)
}

// Unlike handles DELETE /api/v1/quotes/:id/like. Unliking a quote that is not liked is a no-op.
//
// @Summary Unlike a quote
// @Tags likes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/like [delete]
func (h *QuoteHandler) Unlike(c *gin.Context) {
	h.setLiked(c, false)
}

func (h *QuoteHandler) setLiked(c *gin.Context, want bool) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	result, err := h.service.SetLiked(c.Request.Context(), id, want)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Quote: dto.NewQuoteResponse(result.Quote), Liked: result.Liked})
}

// Bookmarks handles GET /api/v1/bookmarks.
//
// @Summary List bookmarked quotes
// @Tags bookmarks
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/bookmarks [get]
func (h *QuoteHandler) Bookmarks(c *gin.Context) {
	quotes, err := h.service.BookmarkedQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// ToggleBookmark handles POST /api/v1/quotes/:id/bookmark.
//
// @Summary Add or remove a bookmark
// @Tags bookmarks
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.BookmarkResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/bookmark [post]
func (h *QuoteHandler) ToggleBookmark(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.QuoteByID(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	bookmarked, err := h.service.ToggleBookmark(c.Request.Context(), quote)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookmarkResponse{Quote: dto.NewQuoteResponse(quote), Bookmarked: bookmarked})
}

// Viewed handles GET /api/v1/quotes/viewed: the quotes recently shown through this service.
//
// @Summary List recently viewed quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/quotes/viewed [get]
func (h *QuoteHandler) Viewed(c *gin.Context) {
	quotes, err := h.service.RecentlyViewed(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// recordViewed adds quote to the viewing history. Failures only cost history, so they are logged.
func (h *QuoteHandler) recordViewed(ctx context.Context, quote domain.Quote) {
	if err := h.service.RecordViewed(ctx, quote); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "recording viewed quote failed",
			slog.Int("quote_id", quote.ID),
			slog.Any("error", err),
		)
	}
}

func quoteID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "quote id must be a non-negative integer")
		return 0, false
	}
	return id, true
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListByAuthor)
	quotes.POST("", h.Submit)
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/search", h.Search)
	quotes.GET("/recent", h.Recent)
	quotes.GET("/top", h.Top)
	quotes.GET("/counts", h.Counts)
	quotes.GET("/viewed", h.Viewed)
	quotes.GET("/:id", h.GetQuoteByID)
	quotes.POST("/:id/like", h.Like)
	quotes.DELETE("/:id/like", h.Unlike)
	quotes.POST("/:id/bookmark", h.ToggleBookmark)

	rg.GET("/bookmarks", h.Bookmarks)
	rg.POST("/feedback", h.Feedback)
}
