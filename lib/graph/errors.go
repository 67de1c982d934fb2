package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Stable failure categories surfaced to callers. None of these is retried
// by this client.
var (
	ErrNotConfigured   = errors.New("graph client not configured")
	ErrUnauthenticated = errors.New("graph authentication failed")
	ErrForbidden       = errors.New("insufficient permissions for drive access")
	ErrThrottled       = errors.New("drive service is busy")
	ErrNotFound        = errors.New("drive item not found")
	ErrInvalidShareURL = errors.New("invalid share URL")
)

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// classifyResponse maps a non-2xx Graph response onto a stable error
// category, keeping the upstream code for the logs
func classifyResponse(resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var ge graphError
	code := ""
	if err := json.Unmarshal(payload, &ge); err == nil {
		code = ge.Error.Code
	}

	var category error
	switch {
	case code == "itemNotFound" || resp.StatusCode == http.StatusNotFound:
		category = ErrNotFound
	case code == "unauthenticated" || code == "InvalidAuthenticationToken" || resp.StatusCode == http.StatusUnauthorized:
		category = ErrUnauthenticated
	case code == "accessDenied" || resp.StatusCode == http.StatusForbidden:
		category = ErrForbidden
	case code == "activityLimitReached" || code == "throttledRequest" || resp.StatusCode == http.StatusTooManyRequests:
		category = ErrThrottled
	default:
		return fmt.Errorf("graph request failed with status %d (%s)", resp.StatusCode, code)
	}

	return fmt.Errorf("%w: status %d (%s)", category, resp.StatusCode, code)
}
