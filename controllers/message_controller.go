package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/warbler-app/api-go/middleware"
	"github.com/warbler-app/api-go/models"
	"github.com/warbler-app/api-go/utils"
	"gorm.io/gorm"
)

type MessageController struct {
	DB      *gorm.DB
	Metrics *middleware.Metrics
}

func NewMessageController(db *gorm.DB, metrics *middleware.Metrics) *MessageController {
	return &MessageController{DB: db, Metrics: metrics}
}

// CreateMessage posts a new message for the acting user. The timestamp is
// server-assigned and the author is immutable afterwards.
func (mc *MessageController) CreateMessage(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var input struct {
		Text string `json:"text" binding:"required,max=140"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message text cannot be empty", "success": false})
		return
	}

	message := models.Message{
		Text:   input.Text,
		UserID: claims.UserID,
	}

	if err := mc.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message", "success": false})
		return
	}

	if mc.Metrics != nil {
		mc.Metrics.MessagesPosted.Inc()
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

// GetMessage returns a single message with its author.
func (mc *MessageController) GetMessage(c *gin.Context) {
	var message models.Message
	if err := mc.DB.Preload("User").First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// GetUserMessages returns a user's own messages, newest first, capped at 100.
func (mc *MessageController) GetUserMessages(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := mc.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var messages []models.Message
	if err := mc.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Limit(100).
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching messages", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// DeleteMessage removes a message and its likes. Only the author may delete.
func (mc *MessageController) DeleteMessage(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var message models.Message
	if err := mc.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found", "success": false})
		return
	}

	if message.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own messages", "success": false})
		return
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", message.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&message).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}
