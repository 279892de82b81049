package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/warbler-app/api-go/middleware"
	"github.com/warbler-app/api-go/models"
	"github.com/warbler-app/api-go/utils"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB      *gorm.DB
	Metrics *middleware.Metrics
}

func NewInteractionController(db *gorm.DB, metrics *middleware.Metrics) *InteractionController {
	return &InteractionController{DB: db, Metrics: metrics}
}

// FollowUser inserts a directed follow edge from the acting user to the
// target. Duplicate edges are rejected by the composite unique index.
func (ic *InteractionController) FollowUser(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var targetUser models.User
	if err := ic.DB.First(&targetUser, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	if claims.UserID == targetUser.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself", "success": false})
		return
	}

	follow := models.Follow{
		FollowerID: claims.UserID,
		FolloweeID: targetUser.ID,
	}

	if err := ic.DB.Create(&follow).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already following this user", "success": false})
		return
	}

	if ic.Metrics != nil {
		ic.Metrics.FollowRequests.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "following": true})
}

// UnfollowUser removes the edge if present. Removing an absent edge is a
// no-op success.
func (ic *InteractionController) UnfollowUser(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var targetUser models.User
	if err := ic.DB.First(&targetUser, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	result := ic.DB.Where("follower_id = ? AND followee_id = ?", claims.UserID, targetUser.ID).
		Delete(&models.Follow{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "following": false})
}

// GetUserFollowers lists the users following the given user.
func (ic *InteractionController) GetUserFollowers(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := ic.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var followers []models.User
	err := ic.DB.Model(&models.User{}).
		Select("users.*").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", user.ID).
		Find(&followers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "followers": followers})
}

// GetUserFollowing lists the users the given user follows.
func (ic *InteractionController) GetUserFollowing(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := ic.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var following []models.User
	err := ic.DB.Model(&models.User{}).
		Select("users.*").
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", user.ID).
		Find(&following).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following users", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "following": following})
}

// ToggleLike inverts the like state of a message for the acting user inside a
// single transaction. Authors may not like their own messages.
func (ic *InteractionController) ToggleLike(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var message models.Message
	if err := ic.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found", "success": false})
		return
	}

	if message.UserID == claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot like your own message", "success": false})
		return
	}

	var liked bool
	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		var existingLike models.Like
		result := tx.Where("user_id = ? AND message_id = ?", claims.UserID, message.ID).
			First(&existingLike)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			liked = true
			return tx.Create(&models.Like{
				UserID:    claims.UserID,
				MessageID: message.ID,
			}).Error
		}
		if result.Error != nil {
			return result.Error
		}

		liked = false
		return tx.Delete(&existingLike).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like", "success": false})
		return
	}

	if ic.Metrics != nil {
		ic.Metrics.LikeToggles.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "liked": liked})
}

// GetUserLikes returns the messages a user has liked.
func (ic *InteractionController) GetUserLikes(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := ic.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var messages []models.Message
	err := ic.DB.Model(&models.Message{}).
		Select("messages.*").
		Preload("User").
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", user.ID).
		Order("likes.created_at DESC").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching liked messages", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "likes": messages})
}
