package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/carhub/internal/helpers"
	"github.com/joshua-takyi/carhub/internal/models"
)

const claimsKey = "claims"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
			}
		}
	}
}

// RequireAuth gates protected routes. A missing credential is 401; a token
// that fails verification is 403. On success the verified claims are
// attached to the request context for the handler.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(models.ErrUnauthenticated.Error()))
			c.Abort()
			return
		}

		// Bearer token is the substring after the first space.
		_, token, found := strings.Cut(authHeader, " ")
		if !found || strings.TrimSpace(token) == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(models.ErrUnauthenticated.Error()))
			c.Abort()
			return
		}

		claims, err := helpers.VerifyToken(strings.TrimSpace(token), secret)
		if err != nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse(models.ErrInvalidToken.Error()))
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom pulls the verified identity the guard attached.
func ClaimsFrom(c *gin.Context) (*helpers.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*helpers.Claims)
	return claims, ok
}
