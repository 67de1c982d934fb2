package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/surveydisco-ai/backend/config"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/lib/graph"
	"github.com/surveydisco-ai/backend/models"
	"github.com/surveydisco-ai/backend/repositories"
	"github.com/surveydisco-ai/backend/utils"
	"golang.org/x/oauth2"
)

// authStateTTL bounds how long an OAuth round trip may take before the
// pending provisioning request is rejected
const authStateTTL = 15 * time.Minute

// driveAPI is the authenticated surface of the cloud drive collaborator
type driveAPI interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	ItemByPath(ctx context.Context, token *oauth2.Token, path string) (*graph.DriveItem, error)
	CreateFolder(ctx context.Context, token *oauth2.Token, parentPath, name string) (*graph.DriveItem, error)
	CreateShareLink(ctx context.Context, token *oauth2.Token, itemID string) (string, error)
	CopyItemByPath(ctx context.Context, token *oauth2.Token, sourcePath, targetDriveID, targetFolderID, newName string) error
}

// tokenStore persists the owner's OAuth token between requests
type tokenStore interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
}

// pendingStore persists interrupted provisioning requests across the OAuth
// redirect
type pendingStore interface {
	Create(pending models.PendingAuth) error
	Take(id string) (models.PendingAuth, error)
}

// folderLinkStore writes a validated share link onto the owning project
type folderLinkStore interface {
	SetFolderURL(id uint, url string) error
}

// DriveService provisions per-project OneDrive folders: it derives the
// folder name, creates missing path components without ever touching
// existing content, mints a shareable link and seeds new folders with the
// template file.
type DriveService struct {
	drive        driveAPI
	tokens       tokenStore
	pending      pendingStore
	projects     folderLinkStore
	rootFolder   string
	templatePath string
	now          func() time.Time
}

// NewDriveService creates a drive service wired to the real collaborators
func NewDriveService() *DriveService {
	return &DriveService{
		drive:        graph.NewClient(),
		tokens:       newSettingsTokenStore(),
		pending:      repositories.NewPendingAuthRepository(),
		projects:     repositories.NewProjectRepository(),
		rootFolder:   config.DriveRootFolder(),
		templatePath: config.DriveTemplatePath(),
		now:          time.Now,
	}
}

// ProvisionFolder ensures the project's folder exists and returns its
// shareable link. Without a stored token it returns an authorization URL
// instead, persisting the request so the callback can resume it.
func (s *DriveService) ProvisionFolder(ctx context.Context, req dto.FolderRequest) (dto.FolderResponse, error) {
	if !s.drive.Configured() {
		return dto.FolderResponse{}, graph.ErrNotConfigured
	}

	token, err := s.tokens.Load()
	if err != nil {
		log.Printf("Warning: failed to load drive token: %v", err)
		token = nil
	}
	if token == nil {
		return s.beginAuth(req)
	}

	folderName := utils.DeriveFolderName(req.JobNumber, req.ClientName, req.GeoAddress, req.ProjectID)
	log.Printf("Provisioning drive folder: %s/%s", s.rootFolder, folderName)

	leaf, leafExisted, err := s.ensureFolderPath(ctx, token, []string{s.rootFolder, folderName})
	if err != nil {
		return dto.FolderResponse{}, err
	}

	link, err := s.drive.CreateShareLink(ctx, token, leaf.ID)
	if err != nil {
		return dto.FolderResponse{}, err
	}

	templateCopied := false
	if !leafExisted {
		templateCopied = s.copyTemplate(ctx, token, req, leaf)
	}

	if req.ProjectID != 0 {
		if err := s.projects.SetFolderURL(req.ProjectID, link); err != nil {
			log.Printf("Warning: failed to persist folder link on project %d: %v", req.ProjectID, err)
		}
	}

	return dto.FolderResponse{
		FolderURL:      link,
		FolderExists:   leafExisted,
		TemplateCopied: templateCopied,
	}, nil
}

// ensureFolderPath walks the path component by component, creating each
// missing level. Existing items are never deleted, overwritten or renamed;
// a creation racing another writer relies on the service's rename-on-
// conflict behavior. Returns the leaf item and whether it already existed.
func (s *DriveService) ensureFolderPath(ctx context.Context, token *oauth2.Token, components []string) (*graph.DriveItem, bool, error) {
	currentPath := ""
	var item *graph.DriveItem
	existed := false

	for _, component := range components {
		parentPath := currentPath
		checkPath := component
		if currentPath != "" {
			checkPath = currentPath + "/" + component
		}

		found, err := s.drive.ItemByPath(ctx, token, checkPath)
		switch {
		case err == nil:
			item = found
			existed = true
			currentPath = checkPath
		case errors.Is(err, graph.ErrNotFound):
			created, createErr := s.drive.CreateFolder(ctx, token, parentPath, component)
			if createErr != nil {
				return nil, false, createErr
			}
			item = created
			existed = false
			// The service may have renamed on a conflicting concurrent
			// create; continue under the name it actually used
			if parentPath == "" {
				currentPath = created.Name
			} else {
				currentPath = parentPath + "/" + created.Name
			}
		default:
			return nil, false, err
		}
	}

	return item, existed, nil
}

// copyTemplate seeds a freshly created folder with the template file. A
// failure here is logged and never fails the provisioning.
func (s *DriveService) copyTemplate(ctx context.Context, token *oauth2.Token, req dto.FolderRequest, folder *graph.DriveItem) bool {
	if s.templatePath == "" {
		return false
	}
	if folder.ParentReference == nil || folder.ParentReference.DriveID == "" {
		log.Printf("Warning: new folder %s has no drive reference, skipping template copy", folder.Name)
		return false
	}

	fileName := utils.DeriveTemplateFileName(req.JobNumber, req.GeoAddress, path.Ext(s.templatePath))
	err := s.drive.CopyItemByPath(ctx, token, s.templatePath, folder.ParentReference.DriveID, folder.ID, fileName)
	if err != nil {
		log.Printf("Warning: template copy into %s failed: %v", folder.Name, err)
		return false
	}
	return true
}

// beginAuth persists the request and returns the authorization URL the
// caller must visit before retrying
func (s *DriveService) beginAuth(req dto.FolderRequest) (dto.FolderResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return dto.FolderResponse{}, err
	}

	pending := models.PendingAuth{
		ID:        uuid.NewString(),
		Request:   string(payload),
		ExpiresAt: s.now().Add(authStateTTL),
	}
	if err := s.pending.Create(pending); err != nil {
		return dto.FolderResponse{}, err
	}

	state, err := signAuthState(pending.ID, s.now())
	if err != nil {
		return dto.FolderResponse{}, err
	}

	return dto.FolderResponse{
		RequiresAuth: true,
		AuthURL:      s.drive.AuthCodeURL(state),
	}, nil
}

// CompleteAuth handles the OAuth callback: it validates the state token,
// consumes the pending request, exchanges the code, stores the token and
// resumes the original provisioning.
func (s *DriveService) CompleteAuth(ctx context.Context, code, state string) (dto.FolderResponse, error) {
	pendingID, err := parseAuthState(state)
	if err != nil {
		return dto.FolderResponse{}, err
	}

	pending, err := s.pending.Take(pendingID)
	if err != nil {
		return dto.FolderResponse{}, fmt.Errorf("%w: %v", ErrAuthStateInvalid, err)
	}
	if s.now().After(pending.ExpiresAt) {
		return dto.FolderResponse{}, ErrAuthStateExpired
	}

	token, err := s.drive.Exchange(ctx, code)
	if err != nil {
		return dto.FolderResponse{}, err
	}
	if err := s.tokens.Save(token); err != nil {
		return dto.FolderResponse{}, err
	}

	var req dto.FolderRequest
	if err := json.Unmarshal([]byte(pending.Request), &req); err != nil {
		return dto.FolderResponse{}, fmt.Errorf("%w: malformed pending request", ErrAuthStateInvalid)
	}

	return s.ProvisionFolder(ctx, req)
}

// signAuthState signs the pending-auth id into the OAuth state parameter
func signAuthState(pendingID string, now time.Time) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	claims := dto.AuthStateClaims{
		PendingID: pendingID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authStateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseAuthState validates a state token and returns the pending-auth id
func parseAuthState(state string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(state, &dto.AuthStateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthStateInvalid, err)
	}

	claims, ok := token.Claims.(*dto.AuthStateClaims)
	if !ok || !token.Valid || claims.PendingID == "" {
		return "", ErrAuthStateInvalid
	}
	return claims.PendingID, nil
}
