package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"realestate-server/database"
	"realestate-server/models"
	"realestate-server/utils"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "token"

// AuthMiddleware validates the session cookie and sets user context.
// A missing cookie is 401 (not authenticated); an invalid or expired one
// is 403 (credential presented but not valid).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Not Authenticated",
				"message": "Please log in to continue",
			})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Invalid token",
				"message": "Token is not valid or has expired",
			})
			c.Abort()
			return
		}

		// Get user from database
		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "User not found",
				"message": "User associated with token not found",
			})
			c.Abort()
			return
		}

		// Set user in context
		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// OptionalAuthMiddleware is like AuthMiddleware but never rejects the
// request: an absent or invalid cookie simply leaves the context anonymous.
// Used by the listing detail endpoint to compute the isSaved flag.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			c.Next()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}
