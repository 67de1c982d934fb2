package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surveydisco-ai/backend/config"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/lib/graph"
	"github.com/surveydisco-ai/backend/services"
)

var driveService = services.NewDriveService()

// driveErrorResponse maps Microsoft Graph failure categories onto stable
// HTTP statuses and operator-friendly messages
func driveErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, graph.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "OneDrive service unavailable - missing credentials",
		})
	case errors.Is(err, graph.ErrUnauthenticated):
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "OneDrive authentication failed - please try again later",
		})
	case errors.Is(err, graph.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "OneDrive access denied - check the folder permissions",
		})
	case errors.Is(err, graph.ErrThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"status":  "error",
			"message": "OneDrive service is busy - please try again in a moment",
		})
	case errors.Is(err, graph.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "OneDrive folder not found - it may have been moved or deleted",
		})
	case errors.Is(err, graph.ErrInvalidShareURL):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid OneDrive share URL",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "OneDrive request failed",
		})
	}
}

// GetFolderURL godoc
// @Summary Provision a project's OneDrive folder
// @Description Idempotently create the project folder, copy the template on first creation and return a public share link. Responds with an auth URL when OneDrive consent is still needed.
// @Tags onedrive
// @Accept json
// @Produce json
// @Param request body dto.FolderRequest true "Project identification"
// @Success 200 {object} dto.FolderResponse
// @Router /onedrive/folder-url [post]
func GetFolderURL(c *gin.Context) {
	var req dto.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Project information required",
		})
		return
	}

	result, err := driveService.ProvisionFolder(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error provisioning OneDrive folder for job %s: %v", req.JobNumber, err)
		driveErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DriveCallback godoc
// @Summary OAuth redirect endpoint for OneDrive consent
// @Description Exchanges the authorization code, resumes the pending folder provisioning and redirects back to the frontend
// @Tags onedrive
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Signed state token"
// @Success 302
// @Router /onedrive/callback [get]
func DriveCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing authorization code or state",
		})
		return
	}

	if _, err := driveService.CompleteAuth(c.Request.Context(), code, state); err != nil {
		log.Printf("OneDrive auth callback failed: %v", err)
		c.Redirect(http.StatusFound, config.FrontendURL()+"?onedrive_auth=error")
		return
	}

	c.Redirect(http.StatusFound, config.FrontendURL()+"?onedrive_auth=success")
}
