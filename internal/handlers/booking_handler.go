package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carhub/internal/middleware"
	"github.com/joshua-takyi/carhub/internal/models"
	"github.com/joshua-takyi/carhub/internal/services"
)

type bookingRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.Book(c.Request.Context(), req.ListingID, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "booking created successfully"))
	}
}

// MyBookings returns the caller's booking history, scoped to the verified
// identity the same way my-listings is.
func MyBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		email := c.Query("email")
		bookings, err := bs.MyBookings(c.Request.Context(), email, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(bookings, len(bookings)))
	}
}
