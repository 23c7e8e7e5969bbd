package handler

import (
	"net/http"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListPlatforms handles GET /api/platforms
func (h *Handler) ListPlatforms(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Platforms())
}

// ListPlatformLinks handles GET /api/products/:id/platforms
func (h *Handler) ListPlatformLinks(c echo.Context) error {
	productID := c.Param("id")

	links, err := h.store.ListPlatformLinksByProduct(c.Request().Context(), productID)
	if err != nil {
		logger.FromEcho(c).Error("Failed to fetch platform links",
			zap.String("product_id", productID),
			zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to fetch platform links")
	}
	return c.JSON(http.StatusOK, links)
}

// GetPlatformLink handles GET /api/platforms/:id
func (h *Handler) GetPlatformLink(c echo.Context) error {
	id := c.Param("id")

	link, err := h.store.GetPlatformLink(c.Request().Context(), id)
	if err != nil {
		return storeFailure(c, err, "Platform link not found", "Invalid platform link", "Failed to fetch platform link")
	}
	return c.JSON(http.StatusOK, link)
}

// CreatePlatformLink handles POST /api/products/:id/platforms
func (h *Handler) CreatePlatformLink(c echo.Context) error {
	log := logger.FromEcho(c)
	productID := c.Param("id")

	var req PlatformLinkRequest
	details, err := bindAndValidate(c, &req)
	if err != nil {
		log.Warn("Invalid platform link data", zap.String("product_id", productID), zap.Error(err))
		return invalidData(c, "Invalid platform link data", details)
	}

	link := req.toModel()
	link.ProductID = productID
	if err := h.store.CreatePlatformLink(c.Request().Context(), link); err != nil {
		return storeFailure(c, err, "Product not found", "Invalid platform link data", "Failed to create platform link")
	}

	h.metrics.RecordCatalogOperation("platform_link", "create")
	log.Info("Platform link created",
		zap.String("link_id", link.ID),
		zap.String("product_id", productID),
		zap.String("platform", string(link.Platform)))
	return c.JSON(http.StatusCreated, link)
}

// UpdatePlatformLink handles PUT /api/platforms/:id
func (h *Handler) UpdatePlatformLink(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req PlatformLinkRequest
	details, err := bindAndValidate(c, &req)
	if err != nil {
		log.Warn("Invalid platform link data", zap.String("link_id", id), zap.Error(err))
		return invalidData(c, "Invalid platform link data", details)
	}

	link, err := h.store.UpdatePlatformLink(c.Request().Context(), id, req.toModel())
	if err != nil {
		return storeFailure(c, err, "Platform link not found", "Invalid platform link data", "Failed to update platform link")
	}

	h.metrics.RecordCatalogOperation("platform_link", "update")
	log.Info("Platform link updated",
		zap.String("link_id", id),
		zap.String("platform", string(link.Platform)),
		zap.Bool("is_active", link.IsActive))
	return c.JSON(http.StatusOK, link)
}

// DeletePlatformLink handles DELETE /api/platforms/:id
func (h *Handler) DeletePlatformLink(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeletePlatformLink(c.Request().Context(), id); err != nil {
		return storeFailure(c, err, "Platform link not found", "Invalid platform link", "Failed to delete platform link")
	}

	h.metrics.RecordCatalogOperation("platform_link", "delete")
	logger.FromEcho(c).Info("Platform link deleted", zap.String("link_id", id))
	return c.NoContent(http.StatusNoContent)
}
