package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"realestate-server/database"
	"realestate-server/models"
)

// RegisterContactMessageRoutes registers contact-message routes (all require auth)
func RegisterContactMessageRoutes(router *gin.RouterGroup) {
	router.POST("/send", sendContactMessage)
	router.GET("/agent", getAgentMessages)
	router.PATCH("/:messageId/read", markMessageAsRead)
	router.DELETE("/:messageId", deleteMessage)
}

// sendContactMessage delivers a message to an agent. The recipient's role is
// verified before insert; a non-agent recipient is a client error and no row
// is created.
func sendContactMessage(c *gin.Context) {
	senderID := c.GetUint("user_id")

	var req models.SendContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var recipient models.User
	if err := database.DB.First(&recipient, req.RecipientID).Error; err != nil || !recipient.IsAgent() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid recipient",
			"message": "Recipient must be an agent",
		})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "Contact from customer"
	}

	message := models.ContactMessage{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     subject,
		Message:     req.Message,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
	}

	if err := database.DB.Create(&message).Error; err != nil {
		log.Printf("❌ Failed to send contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contact_message": message})
}

// getAgentMessages lists the session agent's messages, newest first, with
// the sender's public profile joined in.
func getAgentMessages(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	if !user.IsAgent() {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only agents can access messages",
		})
		return
	}

	var messages []models.ContactMessage
	if err := database.DB.
		Where("recipient_id = ?", user.ID).
		Preload("Sender").
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact_messages": messages})
}

// markMessageAsRead sets is_read, recipient only
func markMessageAsRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	messageID, err := strconv.ParseUint(c.Param("messageId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	var message models.ContactMessage
	if err := database.DB.First(&message, messageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if message.RecipientID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the recipient can mark this message as read",
		})
		return
	}

	message.IsRead = true
	if err := database.DB.Save(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact_message": message})
}

// deleteMessage removes a message, recipient only
func deleteMessage(c *gin.Context) {
	userID := c.GetUint("user_id")

	messageID, err := strconv.ParseUint(c.Param("messageId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	var message models.ContactMessage
	if err := database.DB.First(&message, messageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if message.RecipientID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the recipient can delete this message",
		})
		return
	}

	if err := database.DB.Delete(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
