package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"realestate-server/config"
	"realestate-server/database"
	"realestate-server/middleware"
	"realestate-server/models"
	"realestate-server/services"
	"realestate-server/utils"
)

// refreshCookieName is the cookie carrying the long-lived refresh token
const refreshCookieName = "refresh_token"

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"omitempty,oneof=customer agent"`
	Avatar   *string         `json:"avatar"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var sessionService = services.NewSessionService()

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/register", register)
	router.POST("/login", login)
	router.POST("/logout", logout)
	router.POST("/refresh", refreshSession)
}

// register handles user registration
func register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	// Check if user already exists
	var existingUser models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "User already exists",
			"message": "A user with this username or email already exists",
		})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Password hashing failed",
			"message": "Failed to process password",
		})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Avatar:       req.Avatar,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "User creation failed",
			"message": "Failed to create user account",
		})
		return
	}

	log.Printf("✅ User registered: %s (%s)", user.Username, user.Role)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// login verifies credentials and issues the session cookies
func login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid credentials",
			"message": "Invalid username or password",
		})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid credentials",
			"message": "Invalid username or password",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate session token",
		})
		return
	}

	refreshToken, err := sessionService.GenerateRefreshToken(user.ID, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Session creation failed",
			"message": "Failed to create session",
		})
		return
	}

	setSessionCookies(c, token, refreshToken)

	log.Printf("✅ User logged in: %s", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// logout clears the session cookies and revokes the refresh token
func logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(refreshCookieName); err == nil && refreshToken != "" {
		if err := sessionService.RevokeRefreshToken(refreshToken); err != nil {
			log.Printf("⚠️ Failed to revoke refresh token: %v", err)
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// refreshSession exchanges a valid refresh token for a new session token
func refreshSession(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not Authenticated",
			"message": "Refresh token required",
		})
		return
	}

	userID, err := sessionService.ValidateRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Invalid refresh token",
			"message": "Refresh token is not valid or has expired",
		})
		return
	}

	token, err := utils.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate session token",
		})
		return
	}

	maxAge := config.AppConfig.JWT.ExpiryHours * 3600
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Session refreshed"})
}

func setSessionCookies(c *gin.Context, token, refreshToken string) {
	maxAge := config.AppConfig.JWT.ExpiryHours * 3600
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
	c.SetCookie(refreshCookieName, refreshToken, 30*24*3600, "/", "", false, true)
}
