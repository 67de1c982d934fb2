package repositories

import (
	"github.com/surveydisco-ai/backend/database"
	"github.com/surveydisco-ai/backend/models"
)

// SettingRepository handles database operations for key/value settings
type SettingRepository struct{}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository() *SettingRepository {
	return &SettingRepository{}
}

// Get retrieves a setting by key
func (r *SettingRepository) Get(key string) (models.Setting, error) {
	var setting models.Setting
	result := database.DB.First(&setting, "setting_key = ?", key)
	return setting, result.Error
}

// Set writes a setting value, inserting the row when absent
func (r *SettingRepository) Set(key, value string) (models.Setting, error) {
	setting := models.Setting{SettingKey: key}
	if err := database.DB.Where(models.Setting{SettingKey: key}).FirstOrCreate(&setting).Error; err != nil {
		return models.Setting{}, err
	}

	if err := database.DB.Model(&setting).Update("setting_value", value).Error; err != nil {
		return models.Setting{}, err
	}
	setting.SettingValue = value
	return setting, nil
}

// Delete removes a setting row
func (r *SettingRepository) Delete(key string) error {
	return database.DB.Delete(&models.Setting{}, "setting_key = ?", key).Error
}
