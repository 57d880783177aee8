package models

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusAccepted AppointmentStatus = "accepted"
	AppointmentStatusRejected AppointmentStatus = "rejected"
)

// Appointment is a requested viewing between a customer and an agent for a
// specific listing and time. Status starts at pending; only the referenced
// agent may move it to accepted or rejected, and only the owning customer may
// edit or delete it while it is still pending.
type Appointment struct {
	ID         uint              `json:"id" gorm:"primaryKey"`
	CustomerID uint              `json:"customer_id" gorm:"not null;index"`
	AgentID    uint              `json:"agent_id" gorm:"not null;index"`
	PostID     uint              `json:"post_id" gorm:"not null;index"`
	Date       time.Time         `json:"date" gorm:"not null"`
	Notes      *string           `json:"notes" gorm:"size:1000"`
	Status     AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','accepted','rejected')"`
	CreatedAt  time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Customer User `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Agent    User `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	Post     Post `json:"post,omitempty" gorm:"foreignKey:PostID"`
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// IsPending reports whether the appointment can still be transitioned
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// BookAppointmentRequest is the payload for booking a viewing. The customer
// id always comes from the session, never from the body.
type BookAppointmentRequest struct {
	AgentID uint      `json:"agent_id" binding:"required"`
	PostID  uint      `json:"post_id" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
	Notes   *string   `json:"notes"`
}

// AppointmentUpdateRequest is an explicit partial update of the editable
// fields; only non-nil fields change.
type AppointmentUpdateRequest struct {
	Date  *time.Time `json:"date"`
	Notes *string    `json:"notes"`
}
