// Package handler exposes the catalog over HTTP/JSON.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/jwtutil"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/amd4k/ZHV/pkg/metrics"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogStore is the persistence surface the handlers depend on.
type CatalogStore interface {
	Ping(ctx context.Context) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error

	ListProducts(ctx context.Context, filter storage.ProductFilter) ([]model.ProductWithDetails, error)
	CountProducts(ctx context.Context, filter storage.ProductFilter) (int64, error)
	ListFeaturedProducts(ctx context.Context, count int) ([]model.ProductWithDetails, error)
	GetProductByID(ctx context.Context, id string) (*model.ProductWithDetails, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, id string, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListPlatformLinksByProduct(ctx context.Context, productID string) ([]model.PlatformLink, error)
	GetPlatformLink(ctx context.Context, id string) (*model.PlatformLink, error)
	CreatePlatformLink(ctx context.Context, l *model.PlatformLink) error
	UpdatePlatformLink(ctx context.Context, id string, l *model.PlatformLink) (*model.PlatformLink, error)
	DeletePlatformLink(ctx context.Context, id string) error

	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	Seed(ctx context.Context) (storage.SeedReport, error)
}

// Options configures a Handler. Zero values fall back to defaults.
type Options struct {
	FeaturedCount int
	MaxPageSize   int
	JWT           *jwtutil.JWTUtil
	Metrics       *metrics.Metrics
}

type Handler struct {
	store         CatalogStore
	jwt           *jwtutil.JWTUtil
	metrics       *metrics.Metrics
	featuredCount int
	maxPageSize   int
}

func New(store CatalogStore, opts Options) *Handler {
	h := &Handler{
		store:         store,
		jwt:           opts.JWT,
		metrics:       opts.Metrics,
		featuredCount: opts.FeaturedCount,
		maxPageSize:   opts.MaxPageSize,
	}
	if h.featuredCount <= 0 {
		h.featuredCount = 10
	}
	if h.maxPageSize <= 0 {
		h.maxPageSize = 100
	}
	return h
}

// RouteOptions carries the middleware that guards parts of the API. Nil
// entries leave the group open.
type RouteOptions struct {
	Admin        echo.MiddlewareFunc
	AdminLimiter echo.MiddlewareFunc
	LoginLimiter echo.MiddlewareFunc
}

// RegisterRoutes mounts the catalog API under /api.
func (h *Handler) RegisterRoutes(e *echo.Echo, opts RouteOptions) {
	admin := chain(opts.Admin)
	adminLimited := chain(opts.AdminLimiter, opts.Admin)

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/platforms", h.ListPlatforms)

	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:id", h.GetCategory)
	api.POST("/categories", h.CreateCategory, admin...)

	api.GET("/products", h.ListProducts)
	api.GET("/products/featured", h.ListFeaturedProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", h.CreateProduct, admin...)
	api.PUT("/products/:id", h.UpdateProduct, admin...)
	api.DELETE("/products/:id", h.DeleteProduct, admin...)

	api.GET("/products/:id/platforms", h.ListPlatformLinks)
	api.POST("/products/:id/platforms", h.CreatePlatformLink, admin...)
	api.GET("/platforms/:id", h.GetPlatformLink)
	api.PUT("/platforms/:id", h.UpdatePlatformLink, admin...)
	api.DELETE("/platforms/:id", h.DeletePlatformLink, admin...)

	api.POST("/admin/seed", h.Seed, adminLimited...)
	api.POST("/auth/login", h.Login, chain(opts.LoginLimiter)...)
}

func chain(mw ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mw))
	for _, m := range mw {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// message writes the {"message": ...} body every error response uses.
func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

// storeFailure maps a storage error onto the response contract: missing rows
// are 404, constraint violations are 400, anything else is a logged 500.
func storeFailure(c echo.Context, err error, notFound, invalid, failed string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return message(c, http.StatusNotFound, notFound)
	case errors.Is(err, storage.ErrDuplicateKey), errors.Is(err, storage.ErrInvalidReference):
		logger.FromEcho(c).Warn(invalid, zap.Error(err))
		return message(c, http.StatusBadRequest, invalid)
	}
	logger.FromEcho(c).Error(failed, zap.Error(err))
	return message(c, http.StatusInternalServerError, failed)
}

// ErrorHandler writes framework errors (unknown route, wrong method, panics)
// in the same {"message"} shape as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	} else {
		logger.FromEcho(c).Error("Unhandled error", zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = message(c, status, msg)
	}
	if err != nil {
		logger.FromEcho(c).Error("Failed to write error response", zap.Error(err))
	}
}
