package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/require"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/lib/graph"
)

type fakeShareGateway struct {
	children    []graph.DriveItem
	childrenErr error
	metadata    *graph.DriveItem
	metadataErr error
	content     []byte
	contentErr  error
	thumbnail   string
	thumbErr    error

	childrenCalls int
	contentCalls  int
	thumbCalls    int
}

func (f *fakeShareGateway) SharedFolderChildren(ctx context.Context, shareURL string) ([]graph.DriveItem, error) {
	f.childrenCalls++
	return f.children, f.childrenErr
}

func (f *fakeShareGateway) SharedFileMetadata(ctx context.Context, shareURL, fileID string) (*graph.DriveItem, error) {
	return f.metadata, f.metadataErr
}

func (f *fakeShareGateway) SharedFileContent(ctx context.Context, shareURL, fileID string) ([]byte, error) {
	f.contentCalls++
	return f.content, f.contentErr
}

func (f *fakeShareGateway) SharedFileThumbnail(ctx context.Context, shareURL, fileID string) (string, error) {
	f.thumbCalls++
	return f.thumbnail, f.thumbErr
}

type fakeLinkSource struct {
	url *string
	err error
}

func (f *fakeLinkSource) FolderURL(id uint) (*string, error) { return f.url, f.err }

func newTestPublicFileService(gateway *fakeShareGateway, links *fakeLinkSource) *PublicFileService {
	return &PublicFileService{
		gateway:    gateway,
		projects:   links,
		listings:   expirable.NewLRU[string, []dto.PublicFile](128, nil, time.Minute),
		thumbnails: expirable.NewLRU[string, string](512, nil, 24*time.Hour),
	}
}

func shareURL(s string) *string { return &s }

func TestListFilesFolderNotInitialized(t *testing.T) {
	gateway := &fakeShareGateway{}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: nil})

	listing, err := s.ListFiles(context.Background(), 7)
	require.NoError(t, err)

	require.False(t, listing.FolderInitialized)
	require.NotNil(t, listing.Files)
	require.Empty(t, listing.Files)
	require.Equal(t, "OneDrive folder not initialized", listing.Message)

	// Without a stored link there is nothing to ask the share service
	require.Zero(t, gateway.childrenCalls)
}

func TestListFilesMapsItemsAndCaches(t *testing.T) {
	var pdf, folder graph.DriveItem
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"f1","name":"plan.pdf","size":2048,"webUrl":"https://w/p",
		"@microsoft.graph.downloadUrl":"https://dl/p",
		"file":{"mimeType":"application/pdf"}
	}`), &pdf))
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"f2","name":"Drawings","folder":{"childCount":3}
	}`), &folder))

	gateway := &fakeShareGateway{children: []graph.DriveItem{pdf, folder}}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: shareURL("https://1drv.ms/f/s!abc")})

	listing, err := s.ListFiles(context.Background(), 7)
	require.NoError(t, err)

	require.True(t, listing.FolderInitialized)
	require.Equal(t, "https://1drv.ms/f/s!abc", listing.ShareURL)
	require.Len(t, listing.Files, 2)

	require.Equal(t, "plan.pdf", listing.Files[0].Name)
	require.Equal(t, "application/pdf", listing.Files[0].MimeType)
	require.True(t, listing.Files[0].IsPreviewable)
	require.Equal(t, "https://dl/p", listing.Files[0].DownloadURL)

	// Folders carry the binary-stream default and are not previewable
	require.Equal(t, "application/octet-stream", listing.Files[1].MimeType)
	require.False(t, listing.Files[1].IsPreviewable)

	// A second call within the TTL is served from the cache
	again, err := s.ListFiles(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, listing.Files, again.Files)
	require.Equal(t, 1, gateway.childrenCalls)
}

func TestListFilesInvalidShare(t *testing.T) {
	gateway := &fakeShareGateway{childrenErr: graph.ErrInvalidShareURL}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: shareURL("https://1drv.ms/f/s!abc")})

	_, err := s.ListFiles(context.Background(), 7)
	require.ErrorIs(t, err, graph.ErrInvalidShareURL)
}

func TestThumbnailSoftFailure(t *testing.T) {
	gateway := &fakeShareGateway{thumbErr: errors.New("upstream down")}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: shareURL("https://1drv.ms/f/s!abc")})

	require.Empty(t, s.Thumbnail(context.Background(), 7, "f1"))

	// No stored link short-circuits to empty as well
	s = newTestPublicFileService(gateway, &fakeLinkSource{url: nil})
	require.Empty(t, s.Thumbnail(context.Background(), 7, "f1"))
}

func TestThumbnailCaches(t *testing.T) {
	gateway := &fakeShareGateway{thumbnail: "https://thumb/medium"}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: shareURL("https://1drv.ms/f/s!abc")})

	require.Equal(t, "https://thumb/medium", s.Thumbnail(context.Background(), 7, "f1"))
	require.Equal(t, "https://thumb/medium", s.Thumbnail(context.Background(), 7, "f1"))
	require.Equal(t, 1, gateway.thumbCalls)
}

func TestFileContentTooLarge(t *testing.T) {
	var meta graph.DriveItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"f1","name":"huge.pdf","size":999999,"file":{"mimeType":"application/pdf"}}`), &meta))

	gateway := &fakeShareGateway{metadata: &meta}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: shareURL("https://1drv.ms/f/s!abc")})

	_, err := s.FileContent(context.Background(), 7, "f1", 1024)
	require.ErrorIs(t, err, ErrFileTooLarge)

	// The size check happens before any content transfer
	require.Zero(t, gateway.contentCalls)
}

func TestFileContentRoundTrip(t *testing.T) {
	var meta graph.DriveItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"f1","name":"notes.txt","size":11,"file":{"mimeType":"text/plain"}}`), &meta))

	gateway := &fakeShareGateway{metadata: &meta, content: []byte("hello world")}
	s := newTestPublicFileService(gateway, &fakeLinkSource{url: shareURL("https://1drv.ms/f/s!abc")})

	content, err := s.FileContent(context.Background(), 7, "f1", 0)
	require.NoError(t, err)

	require.Equal(t, "notes.txt", content.Name)
	require.Equal(t, "text/plain", content.ContentType)
	require.Equal(t, []byte("hello world"), content.Data)
}

func TestFileContentFolderNotInitialized(t *testing.T) {
	s := newTestPublicFileService(&fakeShareGateway{}, &fakeLinkSource{url: nil})

	_, err := s.FileContent(context.Background(), 7, "f1", 0)
	require.ErrorIs(t, err, ErrFolderNotInitialized)
}
