package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doston9471/telegram-quote-bot/internal/database"
)

// quotePayload is the request body for creating or updating a quote.
// Binding validation mirrors the store invariant: all three fields non-empty.
type quotePayload struct {
	Text     string `json:"text" binding:"required,min=1"`
	Author   string `json:"author" binding:"required,min=1"`
	Category string `json:"category" binding:"required,min=1"`
}

// quotesHandler serves the administrative CRUD API for quotes. The bot core
// only reads the records this surface manages.
type quotesHandler struct {
	log      *slog.Logger
	store    database.Store
	pageSize int
}

// List returns a page of quotes. Page numbers start at 1; per_page defaults
// to the configured page size and is capped at 100.
func (h *quotesHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page parameter"})
		return
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(h.pageSize)))
	if err != nil || perPage < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid per_page parameter"})
		return
	}
	if perPage > 100 {
		perPage = 100
	}

	ctx := c.Request.Context()
	total, err := h.store.CountQuotes(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to count quotes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quotes"})
		return
	}

	quotes, err := h.store.ListQuotes(ctx, perPage, (page-1)*perPage)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to list quotes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quotes"})
		return
	}
	if quotes == nil {
		quotes = []database.Quote{}
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, gin.H{
		"quotes":      quotes,
		"page":        page,
		"per_page":    perPage,
		"total":       total,
		"total_pages": totalPages,
	})
}

// Create inserts a new quote, returning 201 with the stored record.
func (h *quotesHandler) Create(c *gin.Context) {
	var payload quotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	quote := database.Quote{
		Text:     payload.Text,
		Author:   payload.Author,
		Category: payload.Category,
	}
	if err := h.store.CreateQuote(c.Request.Context(), &quote); err != nil {
		h.log.ErrorContext(c.Request.Context(), "Failed to create quote", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// Get returns a single quote by ID.
func (h *quotesHandler) Get(c *gin.Context) {
	id, ok := h.quoteID(c)
	if !ok {
		return
	}

	quote, err := h.store.GetQuote(c.Request.Context(), id)
	if err != nil {
		h.renderStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Update replaces the content fields of an existing quote.
func (h *quotesHandler) Update(c *gin.Context) {
	id, ok := h.quoteID(c)
	if !ok {
		return
	}

	var payload quotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	quote, err := h.store.GetQuote(ctx, id)
	if err != nil {
		h.renderStoreError(c, id, err)
		return
	}

	quote.Text = payload.Text
	quote.Author = payload.Author
	quote.Category = payload.Category
	if err := h.store.UpdateQuote(ctx, quote); err != nil {
		h.renderStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Delete removes a quote by ID, returning 204 on success.
func (h *quotesHandler) Delete(c *gin.Context) {
	id, ok := h.quoteID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteQuote(c.Request.Context(), id); err != nil {
		h.renderStoreError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *quotesHandler) quoteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
		return 0, false
	}
	return id, true
}

func (h *quotesHandler) renderStoreError(c *gin.Context, id int64, err error) {
	if errors.Is(err, database.ErrQuoteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	h.log.ErrorContext(c.Request.Context(), "Quote store operation failed", "id", id, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
