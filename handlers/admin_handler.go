package handlers

import (
	"net/http"

	"testhub/models"

	"github.com/gin-gonic/gin"
)

type AdminLogStore interface {
	ListLogs() ([]models.AdminLog, error)
}

type AdminHandler struct {
	store AdminLogStore
}

func NewAdminHandler(store AdminLogStore) *AdminHandler {
	return &AdminHandler{store: store}
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	logs, err := h.store.ListLogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
