package repositories

import (
	"github.com/surveydisco-ai/backend/database"
	"github.com/surveydisco-ai/backend/models"
)

// PendingAuthRepository handles persisted OAuth continuations
type PendingAuthRepository struct{}

// NewPendingAuthRepository creates a new pending auth repository instance
func NewPendingAuthRepository() *PendingAuthRepository {
	return &PendingAuthRepository{}
}

// Create stores a pending provisioning request
func (r *PendingAuthRepository) Create(pending models.PendingAuth) error {
	return database.DB.Create(&pending).Error
}

// Take retrieves a pending request and removes it, so a state token can
// only be redeemed once
func (r *PendingAuthRepository) Take(id string) (models.PendingAuth, error) {
	var pending models.PendingAuth
	if err := database.DB.First(&pending, "id = ?", id).Error; err != nil {
		return models.PendingAuth{}, err
	}
	if err := database.DB.Delete(&models.PendingAuth{}, "id = ?", id).Error; err != nil {
		return models.PendingAuth{}, err
	}
	return pending, nil
}
