package models

import "time"

// PendingAuth stores the parameters of a folder provisioning request that
// was interrupted by the OneDrive OAuth redirect. The row is consumed when
// the callback arrives and rejected once expired.
type PendingAuth struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Request   string    `json:"request" gorm:"type:text;not null"`
	Created   time.Time `json:"created" gorm:"column:created;autoCreateTime"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at;not null"`
}

// TableName keeps the table in the surveydisco namespace
func (PendingAuth) TableName() string {
	return "surveydisco_pending_auths"
}
