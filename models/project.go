package models

import (
	"time"
)

// Project represents a survey project record created from free-text intake.
// Column names match the original surveydisco_projects schema so the
// service can run against an existing database.
type Project struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	JobNumber      string    `json:"jobNumber" gorm:"column:job_number;size:10;uniqueIndex;not null"`
	Client         string    `json:"client" gorm:"size:255"`
	Email          string    `json:"email" gorm:"size:255"`
	Phone          string    `json:"phone" gorm:"size:50"`
	PreparedFor    string    `json:"preparedFor" gorm:"column:prepared_for;size:255"`
	Address        string    `json:"address" gorm:"type:text"`
	GeoAddress     string    `json:"geoAddress" gorm:"column:geo_address;type:text"`
	Parcel         string    `json:"parcel" gorm:"size:100"`
	Area           string    `json:"area" gorm:"size:50"`
	Contact        string    `json:"contact" gorm:"type:text"`
	ServiceType    string    `json:"serviceType" gorm:"column:service_type;size:100"`
	CostEstimate   string    `json:"costEstimate" gorm:"column:cost_estimate;size:50"`
	Status         string    `json:"status" gorm:"size:50;default:New"`
	Created        time.Time `json:"created" gorm:"column:created;autoCreateTime"`
	Modified       time.Time `json:"modified" gorm:"column:modified;autoUpdateTime"`
	Notes          string    `json:"notes" gorm:"type:text"`
	TravelTime     string    `json:"travelTime" gorm:"column:travel_time;size:50"`
	TravelDistance string    `json:"travelDistance" gorm:"column:travel_distance;size:50"`
	// FolderURL is null until a OneDrive folder has been provisioned
	FolderURL *string `json:"folderUrl" gorm:"column:folder_url;type:text"`
}

// TableName keeps the original table name
func (Project) TableName() string {
	return "surveydisco_projects"
}
