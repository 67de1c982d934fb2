package models

import "time"

// TodoItem represents an entry on the shared TODO card.
// Item numbers are assigned as max+1 at creation and never recompacted.
type TodoItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ItemNumber  int       `json:"item_number" gorm:"column:item_number;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	Created     time.Time `json:"created" gorm:"column:created;autoCreateTime"`
	Modified    time.Time `json:"modified" gorm:"column:modified;autoUpdateTime"`
}

// TableName keeps the original table name
func (TodoItem) TableName() string {
	return "surveydisco_todo_items"
}
