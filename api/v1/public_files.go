package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/services"
	"gorm.io/gorm"
)

var publicFileService = services.NewPublicFileService()

// GetPublicFiles godoc
// @Summary List files in a project's shared OneDrive folder
// @Description Lists the shared folder through its public share link, no user login required. Projects without a stored link get an empty, folderInitialized=false listing.
// @Tags onedrive
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {object} dto.PublicFileList
// @Router /onedrive/public-files/{projectId} [get]
func GetPublicFiles(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	listing, err := publicFileService.ListFiles(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Project not found",
			})
			return
		}
		log.Printf("Error listing public files for project %d: %v", projectID, err)
		driveErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// GetPublicThumbnails godoc
// @Summary Fetch a public thumbnail URL for a shared file
// @Description Best-effort thumbnail lookup through the share link. Always responds 200; thumbnailUrl is null when no thumbnail is available.
// @Tags onedrive
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param request body dto.ThumbnailRequest true "File ID"
// @Success 200 {object} map[string]interface{}
// @Router /onedrive/public-thumbnails/{projectId} [post]
func GetPublicThumbnails(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.ThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File ID is required",
		})
		return
	}

	url := publicFileService.Thumbnail(c.Request.Context(), projectID, req.FileID)
	if url == "" {
		c.JSON(http.StatusOK, gin.H{"thumbnailUrl": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"thumbnailUrl": url})
}

// GetPublicFileContent godoc
// @Summary Download a shared file's content
// @Description Streams file bytes through the public share link, capped at the service size limit
// @Tags onedrive
// @Produce octet-stream
// @Param projectId path int true "Project ID"
// @Param fileId path string true "File ID"
// @Param maxSize query int false "Maximum size in bytes"
// @Success 200 {file} binary
// @Router /onedrive/public-file-content/{projectId}/{fileId} [get]
func GetPublicFileContent(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}
	fileID := c.Param("fileId")

	maxSize := services.DefaultMaxFileSize
	if raw := c.Query("maxSize"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxSize = parsed
		}
	}

	content, err := publicFileService.FileContent(c.Request.Context(), projectID, fileID, maxSize)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Project not found",
			})
		case errors.Is(err, services.ErrFolderNotInitialized):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "OneDrive folder not initialized",
			})
		case errors.Is(err, services.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  "error",
				"message": "File is too large to preview",
			})
		default:
			log.Printf("Error fetching public file content %s for project %d: %v", fileID, projectID, err)
			driveErrorResponse(c, err)
		}
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+content.Name+`"`)
	c.Data(http.StatusOK, content.ContentType, content.Data)
}
