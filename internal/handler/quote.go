package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/model"
	"github.com/iliyamo/habit-tracker/internal/repository"
)

// QuoteHandler serves motivational quotes.
type QuoteHandler struct {
	Quotes *repository.QuoteRepo
}

func NewQuoteHandler(r *repository.QuoteRepo) *QuoteHandler {
	return &QuoteHandler{Quotes: r}
}

type quoteReq struct {
	Quote  string  `json:"quote"`
	Author *string `json:"author"`
}

type quoteResp struct {
	ID     uint64  `json:"id"`
	Quote  string  `json:"quote"`
	Author *string `json:"author,omitempty"`
}

func toQuoteResp(q model.Quote) quoteResp {
	return quoteResp{ID: q.ID, Quote: q.Quote, Author: q.Author}
}

// Random returns one quote picked by the database.  An empty table
// yields 404 rather than an empty body.
func (h *QuoteHandler) Random(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	q, err := h.Quotes.Random(ctx)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no quotes yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toQuoteResp(q))
}

// List returns all quotes.  Admin only.
func (h *QuoteHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	quotes, err := h.Quotes.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]quoteResp, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toQuoteResp(q))
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds a quote.  Admin only.
func (h *QuoteHandler) Create(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Quote = strings.TrimSpace(req.Quote)
	if req.Quote == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quote required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	q := model.Quote{Quote: req.Quote, Author: req.Author}
	if err := h.Quotes.Create(ctx, &q); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create quote failed"})
	}
	return c.JSON(http.StatusCreated, toQuoteResp(q))
}

// Update overwrites a quote.  Admin only.
func (h *QuoteHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Quote = strings.TrimSpace(req.Quote)
	if req.Quote == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quote required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	q := model.Quote{ID: id, Quote: req.Quote, Author: req.Author}
	if err := h.Quotes.Update(ctx, &q); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, toQuoteResp(q))
}

// Delete removes a quote.  Admin only.
func (h *QuoteHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Quotes.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "quote deleted", "quote_id": id})
}
