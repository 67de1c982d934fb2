package repositories

import (
	"github.com/surveydisco-ai/backend/database"
	"github.com/surveydisco-ai/backend/models"
)

// TodoRepository handles database operations for todo items
type TodoRepository struct{}

// NewTodoRepository creates a new todo repository instance
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{}
}

// FindAll retrieves all todo items ordered by item number
func (r *TodoRepository) FindAll() ([]models.TodoItem, error) {
	var items []models.TodoItem
	result := database.DB.Order("item_number ASC").Find(&items)
	return items, result.Error
}

// NextItemNumber returns max(item_number)+1, starting at 1 on an empty table
func (r *TodoRepository) NextItemNumber() (int, error) {
	var next int
	err := database.DB.Model(&models.TodoItem{}).
		Select("COALESCE(MAX(item_number), 0) + 1").
		Scan(&next).Error
	return next, err
}

// Create inserts a new todo item
func (r *TodoRepository) Create(item models.TodoItem) (models.TodoItem, error) {
	result := database.DB.Create(&item)
	return item, result.Error
}

// UpdateColumns applies a partial update and returns the fresh record
func (r *TodoRepository) UpdateColumns(id uint, columns map[string]interface{}) (models.TodoItem, error) {
	var item models.TodoItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		return models.TodoItem{}, err
	}

	if err := database.DB.Model(&item).Updates(columns).Error; err != nil {
		return models.TodoItem{}, err
	}

	err := database.DB.First(&item, "id = ?", id).Error
	return item, err
}

// Delete removes a todo item. Item numbers are not recompacted.
func (r *TodoRepository) Delete(id uint) error {
	var item models.TodoItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		return err
	}
	return database.DB.Delete(&models.TodoItem{}, "id = ?", id).Error
}
