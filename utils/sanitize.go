package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	invalidDriveChars = regexp.MustCompile(`[<>:"/\\|?*#%&{}+~]`)
	repeatWhitespace  = regexp.MustCompile(`\s+`)
	trailingDots      = regexp.MustCompile(`\.+$`)
)

// SanitizeDriveName makes a string safe as a OneDrive folder or file name.
// Sanitization is idempotent.
func SanitizeDriveName(name string) string {
	if name == "" {
		return "Untitled"
	}

	s := invalidDriveChars.ReplaceAllString(name, "-")
	s = repeatWhitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	// Limit length, leaving room for the path prefix
	if len(s) > 200 {
		s = s[:200]
	}
	s = trailingDots.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return "Untitled"
	}
	return s
}

// DeriveFolderName builds the human-readable folder name for a project.
// Job number plus geocoded address is preferred, then job number plus
// client, then job number alone, then the raw project id.
func DeriveFolderName(jobNumber, clientName, geoAddress string, projectID uint) string {
	switch {
	case jobNumber != "" && strings.TrimSpace(geoAddress) != "":
		return SanitizeDriveName(fmt.Sprintf("%s - %s", jobNumber, geoAddress))
	case jobNumber != "" && clientName != "":
		return SanitizeDriveName(fmt.Sprintf("%s - %s", jobNumber, clientName))
	case jobNumber != "":
		return SanitizeDriveName(fmt.Sprintf("%s - Project", jobNumber))
	default:
		return SanitizeDriveName(fmt.Sprintf("Project-%d", projectID))
	}
}

// DeriveTemplateFileName names the template copy placed in a new project
// folder: job number plus the first comma-separated segment of the
// geocoded address, with the template's file extension.
func DeriveTemplateFileName(jobNumber, geoAddress, ext string) string {
	label := "Project"
	if segment := strings.TrimSpace(strings.SplitN(geoAddress, ",", 2)[0]); segment != "" {
		label = segment
	}
	return SanitizeDriveName(fmt.Sprintf("%s - %s", jobNumber, label)) + ext
}
