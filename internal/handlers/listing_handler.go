package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carhub/internal/middleware"
	"github.com/joshua-takyi/carhub/internal/models"
	"github.com/joshua-takyi/carhub/internal/services"
)

func CreateListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var listing models.Listing
		if err := c.ShouldBindJSON(&listing); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := ls.CreateListing(c.Request.Context(), &listing, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "listing created successfully"))
	}
}

func RecentListings(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := int64(services.DefaultRecentLimit)
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
				return
			}
			limit = parsed
		}

		listings, err := ls.RecentListings(c.Request.Context(), limit)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(listings, len(listings)))
	}
}

func SearchListings(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		listings, err := ls.SearchListings(c.Request.Context(), query)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(listings, len(listings)))
	}
}

// MyListings returns the caller's own listings. The email query parameter
// must match the verified identity.
func MyListings(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		owner := c.Query("email")
		listings, err := ls.ListByOwner(c.Request.Context(), owner, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(listings, len(listings)))
	}
}

func UpdateListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("listing ID is required"))
			return
		}

		var patch map[string]interface{}
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		matched, err := ls.UpdateListing(c.Request.Context(), id, patch, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"matched_count": matched}, "update applied"))
	}
}

func DeleteListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("listing ID is required"))
			return
		}

		deleted, err := ls.DeleteListing(c.Request.Context(), id, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"deleted_count": deleted}, "delete applied"))
	}
}
