package dto

// CreateTodoRequest carries a new todo description
type CreateTodoRequest struct {
	Description string `json:"description" binding:"required"`
}

// UpdateTodoRequest represents a partial todo update; nil fields are untouched
type UpdateTodoRequest struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// UpdateSettingRequest carries an explicit setting write
type UpdateSettingRequest struct {
	Value string `json:"value"`
}
