package repositories

import (
	"github.com/surveydisco-ai/backend/database"
	"github.com/surveydisco-ai/backend/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects ordered by creation time, newest first
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Order("created DESC").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// LatestJobNumber returns the lexicographically greatest job number with
// the given prefix, or empty string when none exists
func (r *ProjectRepository) LatestJobNumber(prefix string) (string, error) {
	var project models.Project
	result := database.DB.
		Where("job_number LIKE ?", prefix+"%").
		Order("job_number DESC").
		Limit(1).
		Find(&project)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", nil
	}
	return project.JobNumber, nil
}

// UpdateColumns applies a partial update and returns the fresh record.
// The modified timestamp always advances with the change.
func (r *ProjectRepository) UpdateColumns(id uint, columns map[string]interface{}) (models.Project, error) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		return models.Project{}, err
	}

	result := database.DB.Model(&project).Updates(columns)
	if result.Error != nil {
		return models.Project{}, result.Error
	}

	err := database.DB.First(&project, "id = ?", id).Error
	return project, err
}

// SetFolderURL stores a validated shareable folder link on a project
func (r *ProjectRepository) SetFolderURL(id uint, url string) error {
	return database.DB.Model(&models.Project{}).
		Where("id = ?", id).
		Update("folder_url", url).Error
}

// FolderURL returns the stored shareable link, nil when not provisioned yet
func (r *ProjectRepository) FolderURL(id uint) (*string, error) {
	var project models.Project
	if err := database.DB.Select("folder_url").First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return project.FolderURL, nil
}

// Delete removes a project and returns the deleted row
func (r *ProjectRepository) Delete(id uint) (models.Project, error) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		return models.Project{}, err
	}
	result := database.DB.Delete(&models.Project{}, "id = ?", id)
	return project, result.Error
}
