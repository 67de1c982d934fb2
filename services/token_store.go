package services

import (
	"encoding/json"
	"errors"

	"github.com/surveydisco-ai/backend/repositories"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// driveTokenKey is the settings row holding the serialized OneDrive token.
// The service is single-user, so one stored token covers all provisioning.
const driveTokenKey = "onedrive_token"

// settingsTokenStore persists the OAuth token in the settings relation
type settingsTokenStore struct {
	settings *repositories.SettingRepository
}

func newSettingsTokenStore() *settingsTokenStore {
	return &settingsTokenStore{settings: repositories.NewSettingRepository()}
}

// Load returns the stored token, or nil when none has been saved yet
func (s *settingsTokenStore) Load() (*oauth2.Token, error) {
	setting, err := s.settings.Get(driveTokenKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if setting.SettingValue == "" {
		return nil, nil
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(setting.SettingValue), &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Save writes the token, replacing any previous one
func (s *settingsTokenStore) Save(token *oauth2.Token) error {
	payload, err := json.Marshal(token)
	if err != nil {
		return err
	}
	_, err = s.settings.Set(driveTokenKey, string(payload))
	return err
}
