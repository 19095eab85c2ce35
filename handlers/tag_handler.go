package handlers

import (
	"net/http"

	"testhub/models"

	"github.com/gin-gonic/gin"
)

type TagStore interface {
	ListTags() ([]models.Tag, error)
}

type TagHandler struct {
	store TagStore
}

func NewTagHandler(store TagStore) *TagHandler {
	return &TagHandler{store: store}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.store.ListTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tags)
}
