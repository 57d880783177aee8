package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"realestate-server/database"
	"realestate-server/models"
)

// RegisterAppointmentRoutes registers appointment routes (all require auth)
func RegisterAppointmentRoutes(router *gin.RouterGroup) {
	router.POST("/book", bookAppointment)
	router.GET("/agent", getAgentAppointments)
	router.GET("/user", getUserAppointments)
	router.PATCH("/:id/accept", acceptAppointment)
	router.PATCH("/:id/cancel", rejectAppointment)
	router.PATCH("/:id", updateAppointment)
	router.DELETE("/:id", deleteAppointment)
}

// bookAppointment creates a viewing request. The customer id is always the
// session user and the status always starts at pending, regardless of input.
// Overlapping bookings for the same agent and slot are deliberately allowed.
func bookAppointment(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var agent models.User
	if err := database.DB.First(&agent, req.AgentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid agent",
			"message": "Agent not found",
		})
		return
	}
	if !agent.IsAgent() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid agent",
			"message": "Appointments can only be booked with an agent",
		})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid post",
			"message": "Post not found",
		})
		return
	}

	appointment := models.Appointment{
		CustomerID: customerID,
		AgentID:    req.AgentID,
		PostID:     req.PostID,
		Date:       req.Date,
		Notes:      req.Notes,
		Status:     models.AppointmentStatusPending,
	}

	if err := database.DB.Create(&appointment).Error; err != nil {
		log.Printf("❌ Failed to book appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

// getAgentAppointments lists all appointments addressed to the session user
// as agent, with customer and listing summaries joined in.
func getAgentAppointments(c *gin.Context) {
	agentID := c.GetUint("user_id")

	var appointments []models.Appointment
	if err := database.DB.
		Where("agent_id = ?", agentID).
		Preload("Customer").
		Preload("Post").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// getUserAppointments lists all appointments booked by the session user,
// with the listing detail joined in.
func getUserAppointments(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var appointments []models.Appointment
	if err := database.DB.
		Where("customer_id = ?", customerID).
		Preload("Agent").
		Preload("Post").
		Preload("Post.PostDetail").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// acceptAppointment transitions pending → accepted for the referenced agent
func acceptAppointment(c *gin.Context) {
	transitionAppointment(c, models.AppointmentStatusAccepted)
}

// rejectAppointment transitions pending → rejected for the referenced agent.
// Rejection is a soft terminal state, not a deletion.
func rejectAppointment(c *gin.Context) {
	transitionAppointment(c, models.AppointmentStatusRejected)
}

// transitionAppointment performs an explicit read-then-check-then-write
// status change, so an unauthorized caller gets a 403 instead of a silent
// no-op.
func transitionAppointment(c *gin.Context, target models.AppointmentStatus) {
	agentID := c.GetUint("user_id")

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, appointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if appointment.AgentID != agentID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the referenced agent can update this appointment",
		})
		return
	}

	if !appointment.IsPending() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid transition",
			"message": "Appointment is no longer pending",
		})
		return
	}

	appointment.Status = target
	if err := database.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	log.Printf("📅 Appointment %d %s by agent %d", appointment.ID, target, agentID)
	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// updateAppointment lets the owning customer edit date/notes while the
// appointment is still pending. Only supplied fields change.
func updateAppointment(c *gin.Context) {
	customerID := c.GetUint("user_id")

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req models.AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, appointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if appointment.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the booking customer can edit this appointment",
		})
		return
	}

	if !appointment.IsPending() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid edit",
			"message": "Appointment can no longer be edited",
		})
		return
	}

	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	if err := database.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// deleteAppointment hard-removes a still-pending appointment, customer only
func deleteAppointment(c *gin.Context) {
	customerID := c.GetUint("user_id")

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, appointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if appointment.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not Authorized",
			"message": "Only the booking customer can delete this appointment",
		})
		return
	}

	if !appointment.IsPending() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid delete",
			"message": "Only pending appointments can be deleted",
		})
		return
	}

	if err := database.DB.Delete(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}

	c.Status(http.StatusNoContent)
}
