package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/amd4k/ZHV/internal/handler"
	mid "github.com/amd4k/ZHV/internal/middleware"
	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/database"
	"github.com/amd4k/ZHV/pkg/jwtutil"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/amd4k/ZHV/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run database migrations and start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Starting catalog service", appConfig.LogFields()...)

	db, err := database.Open(&appConfig.DB)
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("Database connection established")

	redisClient, err := database.OpenRedis(ctx, &appConfig.Redis)
	if err != nil {
		// rate limiting is best effort; the API stays up without it
		log.Warn("Rate limiting disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	m := metrics.New(appConfig.Metrics.Prefix, prometheus.DefaultRegisterer)
	// without a signing key, login is disabled and admin auth cannot be enabled
	var jwtUtil *jwtutil.JWTUtil
	if appConfig.JWT.SigningKey != "" {
		jwtUtil = jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
			SigningKey:      appConfig.JWT.SigningKey,
			ExpirationHours: appConfig.JWT.ExpirationHours,
		})
	} else {
		log.Warn("JWT_SIGNING_KEY not set, login is disabled")
	}

	store := storage.New(db, storage.WithMetrics(m))
	h := handler.New(store, handler.Options{
		FeaturedCount: appConfig.Catalog.FeaturedCount,
		MaxPageSize:   appConfig.Catalog.MaxPageSize,
		JWT:           jwtUtil,
		Metrics:       m,
	})

	e := newServer(h, m, jwtUtil, mid.NewRedisCounter(redisClient))

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", appConfig.Server.Port))
		errCh <- e.Start(":" + appConfig.Server.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newServer(h *handler.Handler, m *metrics.Metrics, jwtUtil *jwtutil.JWTUtil, counter mid.Counter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(mid.RequestID())
	e.Use(logger.Middleware())
	e.Use(mid.Metrics(m))

	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	limit := func(scope string) echo.MiddlewareFunc {
		return mid.RateLimit(counter, mid.RateLimitConfig{
			Scope:    scope,
			Requests: appConfig.RateLimit.Requests,
			Window:   appConfig.RateLimit.Window,
		}, m)
	}

	routes := handler.RouteOptions{
		AdminLimiter: limit("admin"),
		LoginLimiter: limit("login"),
	}
	if appConfig.Admin.AuthEnabled {
		routes.Admin = mid.AdminOnly(jwtUtil)
	} else {
		log.Warn("Admin routes are not protected; set ADMIN_AUTH_ENABLED=true in production")
	}
	h.RegisterRoutes(e, routes)

	return e
}
