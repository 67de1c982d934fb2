package graph

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeShareURL(t *testing.T) {
	url := "https://1drv.ms/f/s!AkZ9example"

	shareID, err := EncodeShareURL(url)
	require.NoError(t, err)

	require.Equal(t, "u!"+base64.RawURLEncoding.EncodeToString([]byte(url)), shareID)
	// The service rejects padded or non-url-safe ids
	require.NotContains(t, shareID, "=")
	require.NotContains(t, shareID, "+")
	require.NotContains(t, shareID, "/")
}

func TestEncodeShareURLRejectsInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"not a url",
		"ftp://files.example.com/share",
		"/relative/path",
		"https://",
	} {
		_, err := EncodeShareURL(input)
		require.ErrorIs(t, err, ErrInvalidShareURL, "input %q", input)
	}
}

func TestIsPreviewable(t *testing.T) {
	previewable := []string{
		"application/pdf",
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/bmp",
		"image/webp",
		"text/plain",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	for _, mimeType := range previewable {
		require.True(t, IsPreviewable(mimeType), "mime type %s", mimeType)
	}

	for _, mimeType := range []string{
		"application/octet-stream",
		"application/zip",
		"video/mp4",
		"",
	} {
		require.False(t, IsPreviewable(mimeType), "mime type %s", mimeType)
	}
}
