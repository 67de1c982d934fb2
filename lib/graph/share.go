package graph

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// EncodeShareURL turns a shareable link into a Graph share id
// ("u!" + unpadded URL-safe base64)
func EncodeShareURL(shareURL string) (string, error) {
	parsed, err := url.Parse(shareURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidShareURL, shareURL)
	}
	return "u!" + base64.RawURLEncoding.EncodeToString([]byte(shareURL)), nil
}

// publicDo performs an unauthenticated request against a public share
func (c *Client) publicDo(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTP.Do(req)
}

type childrenResponse struct {
	Value []DriveItem `json:"value"`
}

// SharedFolderChildren lists the files of a publicly shared folder
func (c *Client) SharedFolderChildren(ctx context.Context, shareURL string) ([]DriveItem, error) {
	shareID, err := EncodeShareURL(shareURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.publicDo(ctx, "/shares/"+shareID+"/driveItem/children")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: share rejected by service", ErrInvalidShareURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp)
	}

	var out childrenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// sharedDriveItem resolves the share to its root item, which carries the
// drive id needed to address individual files
func (c *Client) sharedDriveItem(ctx context.Context, shareURL string) (*DriveItem, error) {
	shareID, err := EncodeShareURL(shareURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.publicDo(ctx, "/shares/"+shareID+"/driveItem")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: share rejected by service", ErrInvalidShareURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp)
	}

	var item DriveItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SharedFileMetadata fetches one file's metadata from a shared folder
func (c *Client) SharedFileMetadata(ctx context.Context, shareURL, fileID string) (*DriveItem, error) {
	root, err := c.sharedDriveItem(ctx, shareURL)
	if err != nil {
		return nil, err
	}
	if root.ParentReference == nil || root.ParentReference.DriveID == "" {
		return nil, fmt.Errorf("%w: share has no drive reference", ErrInvalidShareURL)
	}

	resp, err := c.publicDo(ctx, "/drives/"+url.PathEscape(root.ParentReference.DriveID)+"/items/"+url.PathEscape(fileID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp)
	}

	var item DriveItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SharedFileContent downloads a file's raw bytes from a shared folder
func (c *Client) SharedFileContent(ctx context.Context, shareURL, fileID string) ([]byte, error) {
	root, err := c.sharedDriveItem(ctx, shareURL)
	if err != nil {
		return nil, err
	}
	if root.ParentReference == nil || root.ParentReference.DriveID == "" {
		return nil, fmt.Errorf("%w: share has no drive reference", ErrInvalidShareURL)
	}

	resp, err := c.publicDo(ctx, "/drives/"+url.PathEscape(root.ParentReference.DriveID)+"/items/"+url.PathEscape(fileID)+"/content")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp)
	}

	return io.ReadAll(resp.Body)
}

type thumbnailsResponse struct {
	Value []struct {
		Small  *struct{ URL string `json:"url"` } `json:"small"`
		Medium *struct{ URL string `json:"url"` } `json:"medium"`
		Large  *struct{ URL string `json:"url"` } `json:"large"`
	} `json:"value"`
}

// SharedFileThumbnail returns the best available thumbnail URL for a file
// in a shared folder: medium, then small, then large, else empty
func (c *Client) SharedFileThumbnail(ctx context.Context, shareURL, fileID string) (string, error) {
	root, err := c.sharedDriveItem(ctx, shareURL)
	if err != nil {
		return "", err
	}
	if root.ParentReference == nil || root.ParentReference.DriveID == "" {
		return "", fmt.Errorf("%w: share has no drive reference", ErrInvalidShareURL)
	}

	resp, err := c.publicDo(ctx, "/drives/"+url.PathEscape(root.ParentReference.DriveID)+"/items/"+url.PathEscape(fileID)+"/thumbnails")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyResponse(resp)
	}

	var out thumbnailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Value) == 0 {
		return "", nil
	}

	set := out.Value[0]
	switch {
	case set.Medium != nil:
		return set.Medium.URL, nil
	case set.Small != nil:
		return set.Small.URL, nil
	case set.Large != nil:
		return set.Large.URL, nil
	}
	return "", nil
}

// previewableMimeTypes is the fixed allow-list for inline previews
var previewableMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/bmp":       true,
	"image/webp":      true,
	"text/plain":      true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// IsPreviewable reports whether a mime type can be previewed inline
func IsPreviewable(mimeType string) bool {
	return previewableMimeTypes[mimeType]
}
