package services

import (
	"strings"

	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/models"
	"github.com/surveydisco-ai/backend/repositories"
)

// TodoService handles business logic for the shared TODO list
type TodoService struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService creates a new todo service instance
func NewTodoService() *TodoService {
	return &TodoService{todoRepo: repositories.NewTodoRepository()}
}

// ListTodos retrieves all todo items in item-number order
func (s *TodoService) ListTodos() ([]models.TodoItem, error) {
	return s.todoRepo.FindAll()
}

// CreateTodo appends a new item, numbering it max+1
func (s *TodoService) CreateTodo(description string) (models.TodoItem, error) {
	itemNumber, err := s.todoRepo.NextItemNumber()
	if err != nil {
		return models.TodoItem{}, err
	}

	return s.todoRepo.Create(models.TodoItem{
		ItemNumber:  itemNumber,
		Description: strings.TrimSpace(description),
	})
}

// UpdateTodo applies a partial update of description and/or completed
func (s *TodoService) UpdateTodo(id uint, req dto.UpdateTodoRequest) (models.TodoItem, error) {
	columns := make(map[string]interface{})
	if req.Description != nil {
		columns["description"] = *req.Description
	}
	if req.Completed != nil {
		columns["completed"] = *req.Completed
	}
	if len(columns) == 0 {
		return models.TodoItem{}, ErrNoUpdatableFields
	}

	return s.todoRepo.UpdateColumns(id, columns)
}

// DeleteTodo removes an item without recompacting item numbers
func (s *TodoService) DeleteTodo(id uint) error {
	return s.todoRepo.Delete(id)
}
