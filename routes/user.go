package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"realestate-server/database"
	"realestate-server/models"
	"realestate-server/utils"
)

// UserUpdateRequest is an explicit partial update of a user's own profile
type UserUpdateRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Avatar   *string `json:"avatar"`
}

// SavePostRequest toggles a bookmark for the session user
type SavePostRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

// RegisterUserRoutes registers user profile routes (all require auth)
func RegisterUserRoutes(router *gin.RouterGroup) {
	router.PUT("/:id", updateUser)
	router.POST("/save", savePost)
	router.GET("/profilePosts", profilePosts)
}

// updateUser lets a user edit their own profile
func updateUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if uint(targetID) != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "You can only update your own profile",
		})
		return
	}

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		user.PasswordHash = hashed
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// savePost toggles a bookmark: saves the post if not saved, removes the
// bookmark if it already exists.
func savePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var saved models.SavedPost
	err := database.DB.Where("user_id = ? AND post_id = ?", userID, req.PostID).First(&saved).Error
	if err == nil {
		if err := database.DB.Delete(&saved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave post"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Post unsaved", "is_saved": false})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	saved = models.SavedPost{UserID: userID, PostID: req.PostID}
	if err := database.DB.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post saved", "is_saved": true})
}

// profilePosts returns the session user's own listings and their bookmarks
func profilePosts(c *gin.Context) {
	userID := c.GetUint("user_id")

	var userPosts []models.Post
	if err := database.DB.Where("user_id = ?", userID).Find(&userPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	var saved []models.SavedPost
	if err := database.DB.Where("user_id = ?", userID).Preload("Post").Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved posts"})
		return
	}

	savedPosts := make([]models.Post, 0, len(saved))
	for _, s := range saved {
		savedPosts = append(savedPosts, s.Post)
	}

	c.JSON(http.StatusOK, gin.H{
		"user_posts":  userPosts,
		"saved_posts": savedPosts,
	})
}
