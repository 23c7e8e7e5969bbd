package handler

import (
	"net/http"
	"strconv"

	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TotalCountHeader reports the size of the filtered listing before paging
const TotalCountHeader = "X-Total-Count"

// ListProducts handles GET /api/products?category=&limit=&offset=
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	filter := storage.ProductFilter{CategoryID: c.QueryParam("category")}

	limit, err := nonNegativeQueryInt(c, "limit")
	if err != nil {
		return message(c, http.StatusBadRequest, "limit must be a non-negative integer")
	}
	// absent or 0 means one full page
	if limit == 0 || limit > h.maxPageSize {
		limit = h.maxPageSize
	}
	filter.Limit = limit

	offset, err := nonNegativeQueryInt(c, "offset")
	if err != nil {
		return message(c, http.StatusBadRequest, "offset must be a non-negative integer")
	}
	filter.Offset = offset

	ctx := c.Request().Context()
	products, err := h.store.ListProducts(ctx, filter)
	if err != nil {
		log.Error("Failed to fetch products", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to fetch products")
	}

	total, err := h.store.CountProducts(ctx, filter)
	if err != nil {
		log.Error("Failed to count products", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to fetch products")
	}
	c.Response().Header().Set(TotalCountHeader, strconv.FormatInt(total, 10))

	log.Debug("Products retrieved",
		zap.String("category_id", filter.CategoryID),
		zap.Int("limit", filter.Limit),
		zap.Int("offset", filter.Offset),
		zap.Int("count", len(products)),
		zap.Int64("total", total))
	return c.JSON(http.StatusOK, products)
}

// ListFeaturedProducts handles GET /api/products/featured
func (h *Handler) ListFeaturedProducts(c echo.Context) error {
	products, err := h.store.ListFeaturedProducts(c.Request().Context(), h.featuredCount)
	if err != nil {
		logger.FromEcho(c).Error("Failed to fetch featured products", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to fetch featured products")
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (h *Handler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.store.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return storeFailure(c, err, "Product not found", "Invalid product", "Failed to fetch product")
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ProductRequest
	details, err := bindAndValidate(c, &req)
	if err != nil {
		log.Warn("Invalid product data", zap.Error(err))
		return invalidData(c, "Invalid product data", details)
	}

	product := req.toModel()
	if err := h.store.CreateProduct(c.Request().Context(), product); err != nil {
		return storeFailure(c, err, "Product not found", "Invalid product data", "Failed to create product")
	}

	h.metrics.RecordCatalogOperation("product", "create")
	log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.String("price", product.Price.String()),
		zap.String("category_id", product.CategoryID))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req ProductRequest
	details, err := bindAndValidate(c, &req)
	if err != nil {
		log.Warn("Invalid product data", zap.String("product_id", id), zap.Error(err))
		return invalidData(c, "Invalid product data", details)
	}

	product, err := h.store.UpdateProduct(c.Request().Context(), id, req.toModel())
	if err != nil {
		return storeFailure(c, err, "Product not found", "Invalid product data", "Failed to update product")
	}

	h.metrics.RecordCatalogOperation("product", "update")
	log.Info("Product updated",
		zap.String("product_id", id),
		zap.String("sku", product.SKU),
		zap.Bool("is_active", product.IsActive))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id
func (h *Handler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteProduct(c.Request().Context(), id); err != nil {
		return storeFailure(c, err, "Product not found", "Invalid product", "Failed to delete product")
	}

	h.metrics.RecordCatalogOperation("product", "delete")
	logger.FromEcho(c).Info("Product deleted", zap.String("product_id", id))
	return c.NoContent(http.StatusNoContent)
}

// nonNegativeQueryInt parses an optional query parameter; absent means 0.
func nonNegativeQueryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
