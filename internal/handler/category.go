package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/model"
	"github.com/iliyamo/habit-tracker/internal/repository"
)

// CategoryHandler serves habit categories.  Reads are open to every
// authenticated user; writes are admin only (enforced in routing).
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(r *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: r}
}

type categoryReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type categoryResp struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func toCategoryResp(c model.Category) categoryResp {
	return categoryResp{ID: c.ID, Name: c.Name, Description: c.Description}
}

// List returns all categories.
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	cats, err := h.Categories.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]categoryResp, 0, len(cats))
	for _, cat := range cats {
		out = append(out, toCategoryResp(cat))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one category by id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return categoryErr(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResp(cat))
}

// Create adds a category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cat := model.Category{Name: req.Name, Description: req.Description}
	if err := h.Categories.Create(ctx, &cat); err != nil {
		return categoryErr(c, err)
	}
	return c.JSON(http.StatusCreated, toCategoryResp(cat))
}

// Update overwrites a category's name and description.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cat := model.Category{ID: id, Name: req.Name, Description: req.Description}
	if err := h.Categories.Update(ctx, &cat); err != nil {
		return categoryErr(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResp(cat))
}

// Delete removes a category that no habit references.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Categories.Delete(ctx, id); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category is in use"})
		}
		return categoryErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "category deleted", "category_id": id})
}

func categoryErr(c echo.Context, err error) error {
	switch err {
	case repository.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "category name already exists"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
}
