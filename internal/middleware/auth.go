package middleware

import (
	"net/http"
	"strings"

	"github.com/amd4k/ZHV/pkg/jwtutil"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClaimsKey is the echo.Context key holding *jwtutil.UserClaims
const ClaimsKey = "user"

// AdminOnly requires a bearer token issued to an admin user
func AdminOnly(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing authorization header"})
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid authorization header format"})
			}

			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired token"})
			}

			if !claims.Admin {
				log.Warn("Non-admin user attempted admin operation",
					zap.String("user_id", claims.UserID),
					zap.String("path", c.Path()))
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Admin access required"})
			}

			c.Set(ClaimsKey, claims)
			log.Debug("Admin token validated",
				zap.String("user_id", claims.UserID),
				zap.String("username", claims.Username))

			return next(c)
		}
	}
}
