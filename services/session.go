package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"realestate-server/database"
	"realestate-server/models"
)

// SessionService manages the refresh-token half of the cookie session
type SessionService struct{}

// NewSessionService creates a new session service
func NewSessionService() *SessionService {
	return &SessionService{}
}

// GenerateRefreshToken creates and persists a long-lived refresh token
func (s *SessionService) GenerateRefreshToken(userID uint, userAgent, ipAddress string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	tokenString := hex.EncodeToString(tokenBytes)

	refreshToken := &models.RefreshToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}

	if err := database.DB.Create(refreshToken).Error; err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateRefreshToken checks a refresh token and returns its user id
func (s *SessionService) ValidateRefreshToken(tokenString string) (uint, error) {
	var refreshToken models.RefreshToken
	if err := database.DB.Where("token = ?", tokenString).First(&refreshToken).Error; err != nil {
		return 0, errors.New("refresh token not found")
	}

	if !refreshToken.IsValid() {
		return 0, errors.New("refresh token expired or revoked")
	}

	return refreshToken.UserID, nil
}

// RevokeRefreshToken marks a refresh token as revoked
func (s *SessionService) RevokeRefreshToken(tokenString string) error {
	return database.DB.Model(&models.RefreshToken{}).
		Where("token = ?", tokenString).
		Update("is_revoked", true).Error
}

// CleanupExpiredTokens removes refresh tokens past their expiry
func (s *SessionService) CleanupExpiredTokens() error {
	result := database.DB.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("🧹 Cleaned up %d expired refresh tokens", result.RowsAffected)
	}
	return nil
}
