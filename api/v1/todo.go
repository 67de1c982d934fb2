package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/services"
	"gorm.io/gorm"
)

var todoService = services.NewTodoService()

// ListTodos godoc
// @Summary List all todo items
// @Tags todos
// @Produce json
// @Success 200 {array} models.TodoItem
// @Router /todos [get]
func ListTodos(c *gin.Context) {
	todos, err := todoService.ListTodos()
	if err != nil {
		log.Printf("Error fetching todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch todos",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   todos,
	})
}

// CreateTodo godoc
// @Summary Create a todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Todo description"
// @Success 201 {object} models.TodoItem
// @Router /todos [post]
func CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Description is required",
		})
		return
	}

	todo, err := todoService.CreateTodo(req.Description)
	if err != nil {
		log.Printf("Error creating todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create todo",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   todo,
	})
}

// UpdateTodo godoc
// @Summary Update a todo item
// @Description Update the description and/or completion state of a todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Fields to update"
// @Success 200 {object} models.TodoItem
// @Router /todos/{id} [patch]
func UpdateTodo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	todo, err := todoService.UpdateTodo(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoUpdatableFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "No valid fields to update",
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Todo not found",
			})
		default:
			log.Printf("Error updating todo %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update todo",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   todo,
	})
}

// DeleteTodo godoc
// @Summary Delete a todo item
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} map[string]interface{}
// @Router /todos/{id} [delete]
func DeleteTodo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := todoService.DeleteTodo(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Todo not found",
			})
			return
		}
		log.Printf("Error deleting todo %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete todo",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Todo deleted successfully",
	})
}
