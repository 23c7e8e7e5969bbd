package handler

import (
	"errors"
	"net/http"

	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Seed handles POST /api/admin/seed. The internal error is logged, never
// returned to the caller.
func (h *Handler) Seed(c echo.Context) error {
	log := logger.FromEcho(c)

	report, err := h.store.Seed(c.Request().Context())
	if err != nil {
		log.Error("Seed failed", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to seed database")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Database seeded successfully",
		"report":  report,
	})
}

// Login handles POST /api/auth/login and issues an admin dashboard token.
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromEcho(c)

	if h.jwt == nil {
		return message(c, http.StatusNotFound, "Authentication is not enabled")
	}

	var req LoginRequest
	details, err := bindAndValidate(c, &req)
	if err != nil {
		return invalidData(c, "Invalid login data", details)
	}

	user, err := h.store.GetUserByUsername(c.Request().Context(), req.Username)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.metrics.RecordAuthAttempt("failure")
		log.Warn("Login for unknown user", zap.String("username", req.Username))
		return message(c, http.StatusUnauthorized, "Invalid username or password")
	case err != nil:
		log.Error("Failed to load user", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to log in")
	}

	if !user.CheckPassword(req.Password) {
		h.metrics.RecordAuthAttempt("failure")
		log.Warn("Login with wrong password", zap.String("username", req.Username))
		return message(c, http.StatusUnauthorized, "Invalid username or password")
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		log.Error("Failed to sign token", zap.Error(err))
		return message(c, http.StatusInternalServerError, "Failed to log in")
	}

	h.metrics.RecordAuthAttempt("success")
	log.Info("User logged in", zap.String("user_id", user.ID), zap.Bool("admin", user.IsAdmin))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		logger.FromEcho(c).Error("Health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
