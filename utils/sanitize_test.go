package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeDriveName(t *testing.T) {
	cases := map[string]string{
		"260801 - 123 Main St":   "260801 - 123 Main St",
		`report<final>:v2`:       "report-final--v2",
		"a/b\\c|d?e*f":           "a-b-c-d-e-f",
		"lots   of\t whitespace": "lots of whitespace",
		"trailing dots...":       "trailing dots",
		"  padded  ":             "padded",
		"":                       "Untitled",
		"...":                    "Untitled",
		"50% off & more":         "50- off - more",
	}
	for input, want := range cases {
		require.Equal(t, want, SanitizeDriveName(input), "input %q", input)
	}
}

func TestSanitizeDriveNameCapsLength(t *testing.T) {
	long := strings.Repeat("x", 400)
	got := SanitizeDriveName(long)
	require.Len(t, got, 200)
}

func TestSanitizeDriveNameIdempotent(t *testing.T) {
	inputs := []string{
		"260801 - 123 Main St, Jonesboro, GA 30238",
		`a<b>c:"d"`,
		"dots at the end. ",
		"   spaced   out   ",
		strings.Repeat("y.", 150),
		"#%&{}~",
	}
	for _, input := range inputs {
		once := SanitizeDriveName(input)
		require.Equal(t, once, SanitizeDriveName(once), "input %q", input)
	}
}

func TestDeriveFolderName(t *testing.T) {
	// Geocoded address wins, then client, then job number alone
	require.Equal(t, "260801 - 123 Main St, Jonesboro, GA",
		DeriveFolderName("260801", "John Smith", "123 Main St, Jonesboro, GA", 7))
	require.Equal(t, "260801 - John Smith",
		DeriveFolderName("260801", "John Smith", "", 7))
	require.Equal(t, "260801 - Project",
		DeriveFolderName("260801", "", "  ", 7))
	require.Equal(t, "Project-7",
		DeriveFolderName("", "", "", 7))
}

func TestDeriveTemplateFileName(t *testing.T) {
	require.Equal(t, "260801 - 123 Main St.xlsx",
		DeriveTemplateFileName("260801", "123 Main St, Jonesboro, GA 30238", ".xlsx"))
	require.Equal(t, "260801 - Project.xlsx",
		DeriveTemplateFileName("260801", "", ".xlsx"))
}
