package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carhub/internal/models"
	"github.com/joshua-takyi/carhub/internal/services"
)

func RegisterUser(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		registered, created, err := us.Register(c.Request.Context(), &user)
		if err != nil {
			respondError(c, err)
			return
		}

		if !created {
			c.JSON(http.StatusOK, models.SuccessResponse(registered, "exists"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(registered, "user registered successfully"))
	}
}

func ListUsers(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := us.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(users, len(users)))
	}
}
