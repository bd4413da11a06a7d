package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/models"
	"resto-api/realtime"
)

// SendChatMessage persists a message and broadcasts it to the admin room
// and, when branch-scoped, the branch room.
func SendChatMessage(c *gin.Context) {
	var input struct {
		Body     string `json:"body" binding:"required"`
		BranchID *uint  `json:"branch_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.ChatMessage{
		Sender:   c.GetString("username"),
		Role:     c.GetString("role"),
		BranchID: input.BranchID,
		Body:     input.Body,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rooms := []string{realtime.AdminRoom}
	if input.BranchID != nil {
		rooms = append(rooms, realtime.BranchRoom(*input.BranchID))
	}
	hub.BroadcastAll(rooms, realtime.Event{
		Event: realtime.EventNewChatMessage,
		Data:  message,
	})

	c.JSON(http.StatusCreated, message)
}

// GetChatMessages returns paginated history, newest first
func GetChatMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	db := config.DB.Model(&models.ChatMessage{})
	if branchID := c.Query("branch_id"); branchID != "" {
		db = db.Where("branch_id = ?", branchID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var messages []models.ChatMessage
	if err := db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  messages,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}
