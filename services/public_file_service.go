package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/lib/graph"
	"github.com/surveydisco-ai/backend/repositories"
)

// DefaultMaxFileSize caps public content downloads at 10 MiB
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// shareGateway is the unauthenticated share surface of the drive collaborator
type shareGateway interface {
	SharedFolderChildren(ctx context.Context, shareURL string) ([]graph.DriveItem, error)
	SharedFileMetadata(ctx context.Context, shareURL, fileID string) (*graph.DriveItem, error)
	SharedFileContent(ctx context.Context, shareURL, fileID string) ([]byte, error)
	SharedFileThumbnail(ctx context.Context, shareURL, fileID string) (string, error)
}

// projectLinkSource reads the stored shareable folder link of a project
type projectLinkSource interface {
	FolderURL(id uint) (*string, error)
}

// PublicFileService serves folder contents to unauthenticated viewers using
// only the project's stored share link. Listings and thumbnails sit behind
// fixed-capacity caches with oldest-entry eviction.
type PublicFileService struct {
	gateway    shareGateway
	projects   projectLinkSource
	listings   *expirable.LRU[string, []dto.PublicFile]
	thumbnails *expirable.LRU[string, string]
}

// NewPublicFileService creates a public file service wired to the real drive
func NewPublicFileService() *PublicFileService {
	return &PublicFileService{
		gateway:    graph.NewClient(),
		projects:   repositories.NewProjectRepository(),
		listings:   expirable.NewLRU[string, []dto.PublicFile](128, nil, time.Minute),
		thumbnails: expirable.NewLRU[string, string](512, nil, 24*time.Hour),
	}
}

// ListFiles lists the shared folder of a project. A project whose folder
// has not been provisioned yet gets an empty listing, not an error, and
// causes no outbound call.
func (s *PublicFileService) ListFiles(ctx context.Context, projectID uint) (dto.PublicFileList, error) {
	shareURL, err := s.projects.FolderURL(projectID)
	if err != nil {
		return dto.PublicFileList{}, err
	}
	if shareURL == nil || *shareURL == "" {
		return dto.PublicFileList{
			Files:             []dto.PublicFile{},
			FolderInitialized: false,
			Message:           "OneDrive folder not initialized",
		}, nil
	}

	if cached, ok := s.listings.Get(*shareURL); ok {
		return dto.PublicFileList{Files: cached, FolderInitialized: true, ShareURL: *shareURL}, nil
	}

	children, err := s.gateway.SharedFolderChildren(ctx, *shareURL)
	if err != nil {
		return dto.PublicFileList{}, err
	}

	files := make([]dto.PublicFile, 0, len(children))
	for _, item := range children {
		mimeType := item.MimeType()
		files = append(files, dto.PublicFile{
			ID:            item.ID,
			Name:          item.Name,
			Size:          item.Size,
			LastModified:  item.LastModified,
			MimeType:      mimeType,
			WebURL:        item.WebURL,
			DownloadURL:   item.DownloadURL,
			IsPreviewable: graph.IsPreviewable(mimeType),
		})
	}

	s.listings.Add(*shareURL, files)
	return dto.PublicFileList{Files: files, FolderInitialized: true, ShareURL: *shareURL}, nil
}

// Thumbnail returns the best thumbnail URL for a file, empty when none is
// available. Thumbnails are a soft feature: every failure degrades to
// empty instead of an error.
func (s *PublicFileService) Thumbnail(ctx context.Context, projectID uint, fileID string) string {
	shareURL, err := s.projects.FolderURL(projectID)
	if err != nil || shareURL == nil || *shareURL == "" {
		return ""
	}

	if cached, ok := s.thumbnails.Get(fileID); ok {
		return cached
	}

	thumbnail, err := s.gateway.SharedFileThumbnail(ctx, *shareURL, fileID)
	if err != nil {
		log.Printf("Thumbnail lookup failed for file %s: %v", fileID, err)
		return ""
	}

	if thumbnail != "" {
		s.thumbnails.Add(fileID, thumbnail)
	}
	return thumbnail
}

// FileContent fetches a file's bytes, checking the declared size against
// maxSize before any content transfer. Zero maxSize means the default cap.
func (s *PublicFileService) FileContent(ctx context.Context, projectID uint, fileID string, maxSize int64) (*dto.FileContent, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	shareURL, err := s.projects.FolderURL(projectID)
	if err != nil {
		return nil, err
	}
	if shareURL == nil || *shareURL == "" {
		return nil, ErrFolderNotInitialized
	}

	meta, err := s.gateway.SharedFileMetadata(ctx, *shareURL, fileID)
	if err != nil {
		return nil, err
	}
	if meta.Size > maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, meta.Size, maxSize)
	}

	data, err := s.gateway.SharedFileContent(ctx, *shareURL, fileID)
	if err != nil {
		return nil, err
	}

	return &dto.FileContent{
		Name:        meta.Name,
		ContentType: meta.MimeType(),
		Data:        data,
	}, nil
}
