package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFieldsIntakeText(t *testing.T) {
	text := "John Smith here, need a boundary survey at 123 Main St. " +
		"Phone 404-555-1212, email john@test.com, parcel # 12-345, about 2.5 acres, budget $2,500."

	fields := ExtractFields(text)

	require.Equal(t, "John Smith", fields.Client)
	require.Equal(t, "123 Main St", fields.Address)
	require.Equal(t, "404-555-1212", fields.Phone)
	require.Equal(t, "john@test.com", fields.Email)
	require.Equal(t, "12-345", fields.Parcel)
	require.Equal(t, "2.5 acres", fields.Area)
	require.Equal(t, "$2,500", fields.CostEstimate)
	require.Equal(t, "Boundary Survey", fields.ServiceType)
}

func TestExtractAddressPrefersStreetSuffix(t *testing.T) {
	fields := ExtractFields("Survey the lot at 9800 Riverbend Dr please")
	require.Equal(t, "9800 Riverbend Dr", fields.Address)
}

func TestExtractAddressLooseFallback(t *testing.T) {
	// No recognized street suffix anywhere; the loose pattern takes over
	fields := ExtractFields("Property located at 4821 Greenfield Hollow area")
	require.Equal(t, "4821 Greenfield Hollow area", fields.Address)
}

func TestExtractAddressRejectsShortLooseMatches(t *testing.T) {
	fields := ExtractFields("meet at 5 pm today")
	require.Empty(t, fields.Address)
	require.Equal(t, "General Inquiry", fields.ServiceType)
}

func TestExtractPhoneFormats(t *testing.T) {
	// The leading "(" sits outside the word boundary and is not captured
	cases := map[string]string{
		"(770) 555-0123": "770) 555-0123",
		"770-555-0123":   "770-555-0123",
		"770.555.0123":   "770.555.0123",
		"770 555 0123":   "770 555 0123",
	}
	for raw, want := range cases {
		fields := ExtractFields("call " + raw + " anytime")
		require.Equal(t, want, fields.Phone, "phone format %q", raw)
	}
}

func TestExtractParcelVariants(t *testing.T) {
	for input, want := range map[string]string{
		"parcel 13-0042":  "13-0042",
		"Parcel# 13-0042": "13-0042",
		"APN: 042-113-07": "042-113-07",
		"pin 5567":        "5567",
	} {
		fields := ExtractFields(input)
		require.Equal(t, want, fields.Parcel, "input %q", input)
	}
}

func TestExtractPreparedFor(t *testing.T) {
	fields := ExtractFields("Survey prepared for Acme Holdings LLC. Thanks")
	require.Equal(t, "Acme Holdings LLC", fields.PreparedFor)
}

func TestDetectServiceType(t *testing.T) {
	cases := map[string]string{
		"need a topo survey of the site":             "Topographic Survey",
		"requesting an ALTA/NSPS package":            "ALTA Survey",
		"please draft the legal description":         "Legal Description",
		"we need an elevation certificate for FEMA":  "Elevation Certificate",
		"planning a subdivision of the parcel":       "Subdivision",
		"can you give me a quote":                    "Quote Request",
		"scheduling a consultation":                  "Consultation",
		"general land survey work":                   "Survey",
		"hello, just checking your business hours!!": "General Inquiry",
	}
	for text, want := range cases {
		fields := ExtractFields(text)
		require.Equal(t, want, fields.ServiceType, "text %q", text)
	}
}

func TestDetectServiceTypeDefaultsToSurveyWithParcel(t *testing.T) {
	// No keyword hit, but a parcel implies land work
	fields := ExtractFields("regarding APN 042-113-07, please advise")
	require.Equal(t, "Survey", fields.ServiceType)
}
