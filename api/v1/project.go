package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/services"
	"gorm.io/gorm"
)

var projectService = services.NewProjectService()

// parseIDParam reads a numeric :id path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}

// ListProjects godoc
// @Summary List all projects
// @Description Get all projects ordered by creation time, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	projects, err := projectService.ListProjects()
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch projects",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// ParseProject godoc
// @Summary Create a project from free text
// @Description Extract structured fields from intake text and insert a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.ParseProjectRequest true "Intake text"
// @Success 201 {object} models.Project
// @Router /projects/parse [post]
func ParseProject(c *gin.Context) {
	var req dto.ParseProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Text is required",
		})
		return
	}

	project, err := projectService.CreateFromText(c.Request.Context(), req.Text)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Partially update a project
// @Description Update any subset of mutable project fields
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.ProjectUpdateRequest true "Fields to update"
// @Success 200 {object} models.Project
// @Router /projects/{id} [patch]
func UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.UpdateProject(id, req)
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
				"message": "Project not found",
			})
		default:
			log.Printf("Error updating project %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update project",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// RefreshTravel godoc
// @Summary Recompute travel time and distance
// @Description Recalculate travel fields from the project's stored address
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id}/refresh-travel [post]
func RefreshTravel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := projectService.RefreshTravel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Project not found",
			})
		case errors.Is(err, services.ErrNoAddress):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "No address available for travel calculation",
			})
		default:
			log.Printf("Error refreshing travel info for project %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to refresh travel info",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Delete a project; requires the admin password
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.DeleteProjectRequest true "Admin password"
// @Success 200 {object} models.Project
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteProjectRequest
	// An unreadable body is treated as a missing password
	_ = c.ShouldBindJSON(&req)

	deleted, err := projectService.DeleteProject(id, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid password",
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Project not found",
			})
		default:
			log.Printf("Error deleting project %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to delete project",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
		"deleted": deleted,
	})
}
