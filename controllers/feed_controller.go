package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/warbler-app/api-go/models"
	"github.com/warbler-app/api-go/utils"
	"gorm.io/gorm"
)

// feedLimit caps the home feed at the 100 most recent messages.
const feedLimit = 100

type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// GetHomeFeed returns the messages to show on the home view. Anonymous
// viewers get an empty list (the landing state). Authenticated viewers get
// the most recent messages from themselves and everyone they follow, newest
// first with ties broken by id.
func (fc *FeedController) GetHomeFeed(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "messages": []models.Message{}})
		return
	}

	followeeIDs := fc.DB.Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", claims.UserID)

	var messages []models.Message
	err := fc.DB.Preload("User").
		Where("user_id = ? OR user_id IN (?)", claims.UserID, followeeIDs).
		Order("created_at DESC, id DESC").
		Limit(feedLimit).
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}
