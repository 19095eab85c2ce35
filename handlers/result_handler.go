package handlers

import (
	"net/http"

	"testhub/models"
	"testhub/services"

	"github.com/gin-gonic/gin"
)

type ResultStore interface {
	SubmitResult(req *services.SubmitResultRequest) (*models.Result, error)
	ListResults() ([]models.Result, error)
	ListResultsByTest(testID uint) ([]models.Result, error)
}

type ResultHandler struct {
	store ResultStore
	hub   *services.FeedHub
}

func NewResultHandler(store ResultStore, hub *services.FeedHub) *ResultHandler {
	return &ResultHandler{store: store, hub: hub}
}

func (h *ResultHandler) SubmitResult(c *gin.Context) {
	var req services.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.store.SubmitResult(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.hub.BroadcastResult(result)

	c.JSON(http.StatusCreated, result)
}

func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.store.ListResults()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) ListResultsByTest(c *gin.Context) {
	testID, err := parseID(c.Param("test_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid test id"})
		return
	}

	results, err := h.store.ListResultsByTest(testID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}
