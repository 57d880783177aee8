package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"realestate-server/database"
	"realestate-server/middleware"
	"realestate-server/models"
	"realestate-server/services"
)

// sampleProvider feeds the search fallback; swappable in tests.
var sampleProvider services.SampleProvider = services.DefaultSampleProvider()

// SetSampleProvider replaces the fallback data source
func SetSampleProvider(p services.SampleProvider) {
	sampleProvider = p
}

// RegisterPostRoutes registers all listing-related routes
func RegisterPostRoutes(router *gin.RouterGroup) {
	// Public routes
	router.GET("", getPosts)
	router.GET("/:id", middleware.OptionalAuthMiddleware(), getPost)

	// Protected routes
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", addPost)
		protected.PUT("/:id", updatePost)
		protected.DELETE("/:id", deletePost)
	}
}

// getPosts resolves a listing search. This endpoint deliberately degrades to
// the sample fallback instead of returning a 5xx: an empty or broken search
// still renders a usable page.
func getPosts(c *gin.Context) {
	filters := services.SearchFilters{
		City:     c.Query("city"),
		Type:     c.Query("type"),
		Property: c.Query("property"),
		Bedroom:  c.Query("bedroom"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Sort:     c.Query("sort"),
	}

	searchService := services.NewSearchService(database.DB, sampleProvider)
	posts, fallback := searchService.Search(filters)

	response := gin.H{
		"posts":    posts,
		"fallback": fallback,
	}
	if fallback {
		response["message"] = "No listings matched your search. Showing sample listings instead."
	}

	c.JSON(http.StatusOK, response)
}

// getPost returns a single listing with its detail, owner summary and the
// caller's isSaved flag. An anonymous or invalid session just means
// isSaved=false.
func getPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.Preload("PostDetail").Preload("User").First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	searchService := services.NewSearchService(database.DB, sampleProvider)
	isSaved := searchService.IsSaved(c.GetUint("user_id"), post.ID)

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"user":     post.User.Summary(),
		"is_saved": isSaved,
	})
}

// addPost creates a listing together with its detail record
func addPost(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	post := models.Post{
		Title:     req.PostData.Title,
		Price:     req.PostData.Price,
		Images:    req.PostData.Images,
		Address:   req.PostData.Address,
		City:      req.PostData.City,
		Bedroom:   req.PostData.Bedroom,
		Bathroom:  req.PostData.Bathroom,
		Latitude:  req.PostData.Latitude,
		Longitude: req.PostData.Longitude,
		Type:      req.PostData.Type,
		Property:  req.PostData.Property,
		UserID:    userID,
		PostDetail: &models.PostDetail{
			Desc:       req.PostDetail.Desc,
			Utilities:  req.PostDetail.Utilities,
			Pet:        req.PostDetail.Pet,
			Income:     req.PostDetail.Income,
			Size:       req.PostDetail.Size,
			School:     req.PostDetail.School,
			Bus:        req.PostDetail.Bus,
			Restaurant: req.PostDetail.Restaurant,
		},
	}

	// Post and its detail are created together or not at all
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&post).Error
	}); err != nil {
		log.Printf("❌ Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// updatePost applies a partial update to a listing the caller owns
func updatePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req models.PostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the owner can update this post",
		})
		return
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Price != nil {
		post.Price = *req.Price
	}
	if req.Images != nil {
		post.Images = *req.Images
	}
	if req.Address != nil {
		post.Address = *req.Address
	}
	if req.City != nil {
		post.City = *req.City
	}
	if req.Bedroom != nil {
		post.Bedroom = *req.Bedroom
	}
	if req.Bathroom != nil {
		post.Bathroom = *req.Bathroom
	}
	if req.Latitude != nil {
		post.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		post.Longitude = *req.Longitude
	}
	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.Property != nil {
		post.Property = *req.Property
	}

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// deletePost removes a listing and all its dependent rows as one atomic unit
func deletePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the owner can delete this post",
		})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Printf("❌ Failed to delete post %d: %v", post.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
