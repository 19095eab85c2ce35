package handlers

import (
	"errors"
	"net/http"

	"testhub/models"
	"testhub/services"

	"github.com/gin-gonic/gin"
)

type AuthStore interface {
	Login(req *services.LoginRequest) (*models.User, string, error)
}

type AuthHandler struct {
	store AuthStore
}

func NewAuthHandler(store AuthStore) *AuthHandler {
	return &AuthHandler{store: store}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": services.ErrInvalidCredentials.Error()})
		return
	}

	user, token, err := h.store.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
}
