package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/warbler-app/api-go/models"
	"github.com/warbler-app/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ListUsers returns all users, optionally filtered by a username substring
// via the q query parameter.
func (uc *UserController) ListUsers(c *gin.Context) {
	var users []models.User

	query := uc.DB.Model(&models.User{})
	if search := c.Query("q"); search != "" {
		query = query.Where("username LIKE ?", "%"+search+"%")
	}

	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// GetUserProfile returns a user together with their 100 most recent messages,
// newest first.
func (uc *UserController) GetUserProfile(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var messages []models.Message
	if err := uc.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Limit(100).
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching messages", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "messages": messages})
}

// GetProfile returns the acting user's own record.
func (uc *UserController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UpdateProfile re-verifies the acting user's password before touching any
// field. A wrong password leaves the record untouched.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var input struct {
		Password       string `json:"password" binding:"required"`
		Username       string `json:"username"`
		Email          string `json:"email" binding:"omitempty,email"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password incorrect", "success": false})
		return
	}

	updates := map[string]interface{}{}
	if input.Username != "" {
		if err := validateUsernamePattern(input.Username); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
			return
		}
		updates["username"] = input.Username
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}
	if input.ImageURL != "" {
		updates["image_url"] = input.ImageURL
	}
	if input.HeaderImageURL != "" {
		updates["header_image_url"] = input.HeaderImageURL
	}
	if input.Bio != "" {
		updates["bio"] = input.Bio
	}
	if input.Location != "" {
		updates["location"] = input.Location
	}

	if len(updates) > 0 {
		if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken", "success": false})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "user": user})
}

// DeleteAccount removes the user and everything hanging off them in one
// transaction: likes on their messages, their messages, their likes, follow
// edges in both directions, and refresh tokens.
func (uc *UserController) DeleteAccount(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id IN (?)",
			tx.Model(&models.Message{}).Select("id").Where("user_id = ?", user.ID),
		).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", user.ID, user.ID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account", "success": false})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("Account deleted")

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted"})
}
