package models

import "time"

// Setting is a key/value pair. Seeded keys are inserted only when absent;
// explicit writes update in place.
type Setting struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SettingKey   string    `json:"settingKey" gorm:"column:setting_key;size:100;uniqueIndex;not null"`
	SettingValue string    `json:"settingValue" gorm:"column:setting_value;type:text"`
	Modified     time.Time `json:"modified" gorm:"column:modified;autoUpdateTime"`
}

// TableName keeps the original table name
func (Setting) TableName() string {
	return "surveydisco_settings"
}
