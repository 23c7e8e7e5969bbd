package handler

import (
	"net/http"

	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(c echo.Context) error {
	log := logger.FromEcho(c)

	categories, err := h.store.ListCategories(c.Request().Context())
	if err != nil {
		log.Error("Failed to fetch categories", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to fetch categories")
	}

	log.Debug("Categories retrieved", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id
func (h *Handler) GetCategory(c echo.Context) error {
	id := c.Param("id")

	category, err := h.store.GetCategoryByID(c.Request().Context(), id)
	if err != nil {
		return storeFailure(c, err, "Category not found", "Invalid category", "Failed to fetch category")
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/categories
func (h *Handler) CreateCategory(c echo.Context) error {
	log := logger.FromEcho(c)

	var req CategoryRequest
	details, err := bindAndValidate(c, &req)
	if err != nil {
		log.Warn("Invalid category data", zap.Error(err))
		return invalidData(c, "Invalid category data", details)
	}

	category := req.toModel()
	if err := h.store.CreateCategory(c.Request().Context(), category); err != nil {
		return storeFailure(c, err, "Category not found", "Invalid category data", "Failed to create category")
	}

	h.metrics.RecordCatalogOperation("category", "create")
	log.Info("Category created",
		zap.String("category_id", category.ID),
		zap.String("code", category.Code),
		zap.String("gender", string(category.Gender)))
	return c.JSON(http.StatusCreated, category)
}

func invalidData(c echo.Context, msg string, details []string) error {
	body := echo.Map{"message": msg}
	if len(details) > 0 {
		body["details"] = details
	}
	return c.JSON(http.StatusBadRequest, body)
}
