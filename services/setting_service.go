package services

import (
	"github.com/surveydisco-ai/backend/models"
	"github.com/surveydisco-ai/backend/repositories"
)

// SettingService handles the key/value settings store
type SettingService struct {
	settingRepo *repositories.SettingRepository
}

// NewSettingService creates a new setting service instance
func NewSettingService() *SettingService {
	return &SettingService{settingRepo: repositories.NewSettingRepository()}
}

// GetSetting retrieves a setting by key
func (s *SettingService) GetSetting(key string) (models.Setting, error) {
	return s.settingRepo.Get(key)
}

// SetSetting writes a setting value, creating the row when absent
func (s *SettingService) SetSetting(key, value string) (models.Setting, error) {
	return s.settingRepo.Set(key, value)
}
