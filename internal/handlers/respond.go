package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carhub/internal/models"
)

// statusFor maps the error taxonomy to HTTP. Booking conflicts are 400 so
// clients can tell a lost race from an auth failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidToken):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrListingBooked):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrListingNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
}
