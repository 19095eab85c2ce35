package handlers

import (
	"net/http"
	"strconv"

	"testhub/models"
	"testhub/services"

	"github.com/gin-gonic/gin"
)

// TestStore is the data-access contract the test routes depend on.
type TestStore interface {
	ListTests(publishedOnly bool) ([]models.Test, error)
	GetTestByID(testID uint) (*models.Test, error)
	CreateTest(req *services.CreateTestRequest) (*models.Test, error)
	UpdateTest(testID uint, req *services.UpdateTestRequest) (*models.Test, error)
	DeleteTest(testID uint, userID uint) error
}

type TestHandler struct {
	store TestStore
}

func NewTestHandler(store TestStore) *TestHandler {
	return &TestHandler{store: store}
}

func (h *TestHandler) ListTests(c *gin.Context) {
	publishedOnly := c.Query("published") == "true"

	tests, err := h.store.ListTests(publishedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) GetTest(c *gin.Context) {
	testID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid test id"})
		return
	}

	test, err := h.store.GetTestByID(testID)
	if err != nil {
		// a missing test surfaces the same way as any store failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) CreateTest(c *gin.Context) {
	var req services.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	test, err := h.store.CreateTest(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": test})
}

func (h *TestHandler) UpdateTest(c *gin.Context) {
	testID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid test id"})
		return
	}

	var req services.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	test, err := h.store.UpdateTest(testID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": test})
}

func (h *TestHandler) DeleteTest(c *gin.Context) {
	testID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid test id"})
		return
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	// body is optional for deletes
	_ = c.ShouldBindJSON(&req)

	if err := h.store.DeleteTest(testID, req.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
