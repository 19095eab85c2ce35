package handlers

import (
	"net/http"

	"testhub/models"
	"testhub/services"

	"github.com/gin-gonic/gin"
)

type ReviewStore interface {
	AddReview(req *services.AddReviewRequest) (*models.Review, error)
}

type ReviewHandler struct {
	store ReviewStore
}

func NewReviewHandler(store ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	review, err := h.store.AddReview(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": review})
}
