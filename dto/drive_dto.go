package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FolderRequest identifies the project a OneDrive folder belongs to.
// Job number is the preferred identifier; the rest are naming fallbacks.
type FolderRequest struct {
	JobNumber  string `json:"jobNumber"`
	ClientName string `json:"clientName"`
	GeoAddress string `json:"geoAddress"`
	ProjectID  uint   `json:"projectId"`
}

// Empty reports whether the request carries no identifying information
func (r FolderRequest) Empty() bool {
	return r.JobNumber == "" && r.ClientName == "" && r.GeoAddress == "" && r.ProjectID == 0
}

// FolderResponse is the provisioning result. When RequiresAuth is set the
// caller must complete the OAuth flow at AuthURL and retry.
type FolderResponse struct {
	FolderURL      string `json:"folderUrl,omitempty"`
	FolderExists   bool   `json:"folderExists"`
	TemplateCopied bool   `json:"templateCopied"`
	RequiresAuth   bool   `json:"requiresAuth,omitempty"`
	AuthURL        string `json:"authUrl,omitempty"`
}

// AuthStateClaims is signed into the OAuth state parameter so the callback
// can locate the pending provisioning request it belongs to
type AuthStateClaims struct {
	PendingID string `json:"pendingId"`
	jwt.RegisteredClaims
}

// ThumbnailRequest names the file a public thumbnail is wanted for
type ThumbnailRequest struct {
	FileID string `json:"fileId" binding:"required"`
}

// PublicFile describes one entry of a shared folder listing
type PublicFile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Size          int64     `json:"size"`
	LastModified  time.Time `json:"lastModified"`
	MimeType      string    `json:"mimeType"`
	WebURL        string    `json:"webUrl"`
	DownloadURL   string    `json:"downloadUrl"`
	IsPreviewable bool      `json:"isPreviewable"`
}

// PublicFileList is the public listing response. FolderInitialized is false
// when the project has no stored share link yet; that is not an error.
type PublicFileList struct {
	Files             []PublicFile `json:"files"`
	FolderInitialized bool         `json:"folderInitialized"`
	ShareURL          string       `json:"shareUrl,omitempty"`
	Message           string       `json:"message,omitempty"`
}

// FileContent is raw file bytes plus the declared content type
type FileContent struct {
	Name        string
	ContentType string
	Data        []byte
}
