package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client talks to the Microsoft Graph drive API. Operations on the owner's
// private drive require a previously obtained OAuth token; the share-based
// operations in share.go require none.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	oauth   *oauth2.Config
}

// NewClient builds a client from MS_CLIENT_ID / MS_CLIENT_SECRET /
// MS_REDIRECT_URL / MS_TENANT
func NewClient() *Client {
	tenant := os.Getenv("MS_TENANT")
	if tenant == "" {
		tenant = "common"
	}

	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("MS_CLIENT_ID"),
			ClientSecret: os.Getenv("MS_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("MS_REDIRECT_URL"),
			Scopes:       []string{"offline_access", "Files.ReadWrite"},
			Endpoint:     microsoft.AzureADEndpoint(tenant),
		},
	}
}

// Configured reports whether OAuth credentials are present
func (c *Client) Configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}

// AuthCodeURL builds the authorization URL the user must visit
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return token, nil
}

// DriveItem is the subset of the Graph drive item resource this service reads
type DriveItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	WebURL       string    `json:"webUrl"`
	LastModified time.Time `json:"lastModifiedDateTime"`
	DownloadURL  string    `json:"@microsoft.graph.downloadUrl"`
	File         *struct {
		MimeType string `json:"mimeType"`
	} `json:"file"`
	Folder *struct {
		ChildCount int `json:"childCount"`
	} `json:"folder"`
	ParentReference *struct {
		DriveID string `json:"driveId"`
		ID      string `json:"id"`
	} `json:"parentReference"`
}

// IsFolder reports whether the item is a folder
func (i *DriveItem) IsFolder() bool {
	return i.Folder != nil
}

// MimeType returns the declared mime type, defaulting to a binary stream
func (i *DriveItem) MimeType() string {
	if i.File != nil && i.File.MimeType != "" {
		return i.File.MimeType
	}
	return "application/octet-stream"
}

// authedDo performs a request with the user token, refreshing it as needed
func (c *Client) authedDo(ctx context.Context, token *oauth2.Token, method, path string, body interface{}) (*http.Response, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.oauth.Client(ctx, token).Do(req)
}

// escapePath escapes each path component for use in a root:/{path} address
func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// ItemByPath fetches an item addressed by drive path
func (c *Client) ItemByPath(ctx context.Context, token *oauth2.Token, path string) (*DriveItem, error) {
	resp, err := c.authedDo(ctx, token, http.MethodGet, "/me/drive/root:/"+escapePath(path), nil)
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

// CreateFolder creates a folder under parentPath (empty string for the
// drive root). On a name conflict the service auto-renames; existing items
// are never overwritten.
func (c *Client) CreateFolder(ctx context.Context, token *oauth2.Token, parentPath, name string) (*DriveItem, error) {
	endpoint := "/me/drive/root/children"
	if parentPath != "" {
		endpoint = "/me/drive/root:/" + escapePath(parentPath) + ":/children"
	}

	body := map[string]interface{}{
		"name":                              name,
		"folder":                            map[string]interface{}{},
		"@microsoft.graph.conflictBehavior": "rename",
	}

	resp, err := c.authedDo(ctx, token, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp)
	}

	var item DriveItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

type createLinkResponse struct {
	Link struct {
		WebURL string `json:"webUrl"`
	} `json:"link"`
}

// CreateShareLink mints a persistent anonymous view link for an item
func (c *Client) CreateShareLink(ctx context.Context, token *oauth2.Token, itemID string) (string, error) {
	body := map[string]string{"type": "view", "scope": "anonymous"}

	resp, err := c.authedDo(ctx, token, http.MethodPost, "/me/drive/items/"+url.PathEscape(itemID)+"/createLink", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", classifyResponse(resp)
	}

	var out createLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Link.WebURL == "" {
		return "", fmt.Errorf("createLink returned no web URL")
	}
	return out.Link.WebURL, nil
}

// CopyItemByPath copies the item at sourcePath into the target folder under
// a new name. The copy runs asynchronously on the service side.
func (c *Client) CopyItemByPath(ctx context.Context, token *oauth2.Token, sourcePath, targetDriveID, targetFolderID, newName string) error {
	body := map[string]interface{}{
		"parentReference": map[string]string{
			"driveId": targetDriveID,
			"id":      targetFolderID,
		},
		"name": newName,
	}

	resp, err := c.authedDo(ctx, token, http.MethodPost, "/me/drive/root:/"+escapePath(sourcePath)+":/copy", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return classifyResponse(resp)
	}
	return nil
}
