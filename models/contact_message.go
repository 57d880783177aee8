package models

import (
	"time"
)

// ContactMessage is a direct inquiry from a customer to an agent,
// independent of any appointment. Only the recipient may mark it read or
// delete it.
type ContactMessage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"not null;index"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index"`
	Subject     string    `json:"subject" gorm:"size:255"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	SenderName  string    `json:"sender_name" gorm:"size:255"`
	SenderEmail string    `json:"sender_email" gorm:"size:255"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Sender    User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Recipient User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// SendContactMessageRequest is the payload for sending a message to an agent
type SendContactMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Subject     string `json:"subject"`
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email" binding:"omitempty,email"`
}
