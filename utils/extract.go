package utils

import (
	"regexp"
	"strings"

	"github.com/surveydisco-ai/backend/dto"
)

var (
	addressRegex       = regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z0-9\s.,'-]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Way|Place|Pl|Court|Ct|Circle|Cir|Trail|Tr|Parkway|Pkwy)\b`)
	simpleAddressRegex = regexp.MustCompile(`\b\d+\s+[A-Za-z\s]+\b`)
	digitsOnlyRegex    = regexp.MustCompile(`^\d+\s*$`)
	phoneRegex         = regexp.MustCompile(`\b\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})\b`)
	emailRegex         = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	parcelRegex        = regexp.MustCompile(`(?i)\b(?:parcel|apn|pin)\s*[#:]?\s*([0-9-]+)\b`)
	areaRegex          = regexp.MustCompile(`(?i)\b[0-9]+(?:\.[0-9]+)?\s*(?:ac|acres?)\b`)
	costRegex          = regexp.MustCompile(`\$[0-9,]+(?:\.[0-9]{2})?`)
	clientNameRegex    = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	preparedForRegex   = regexp.MustCompile(`(?i)(?:prepared for|prep for|for)\s*:?\s*([A-Za-z\s]+?)(?:\n|\.|$)`)
)

// ExtractFields pulls structured project fields out of free text using
// deterministic pattern rules. Fields that match nothing stay empty.
func ExtractFields(text string) dto.ProjectFields {
	extraction := dto.ProjectFields{}

	extraction.Address = extractAddress(text)

	if m := phoneRegex.FindString(text); m != "" {
		extraction.Phone = strings.TrimSpace(m)
	}

	if m := emailRegex.FindString(text); m != "" {
		extraction.Email = strings.TrimSpace(m)
	}

	if m := parcelRegex.FindStringSubmatch(text); m != nil {
		extraction.Parcel = m[1]
	}

	if m := areaRegex.FindString(text); m != "" {
		extraction.Area = strings.TrimSpace(m)
	}

	if m := costRegex.FindString(text); m != "" {
		extraction.CostEstimate = strings.TrimSpace(m)
	}

	if m := clientNameRegex.FindString(text); m != "" {
		extraction.Client = strings.TrimSpace(m)
	}

	if m := preparedForRegex.FindStringSubmatch(text); m != nil {
		preparedFor := strings.TrimSpace(m[1])
		if len(preparedFor) > 2 {
			extraction.PreparedFor = preparedFor
		}
	}

	extraction.ServiceType = detectServiceType(text, extraction)

	return extraction
}

// extractAddress first requires a street-suffix token; when that finds
// nothing it falls back to a looser number-plus-words pattern
func extractAddress(text string) string {
	if matches := addressRegex.FindAllString(text, -1); matches != nil {
		for _, addr := range matches {
			if !strings.Contains(addr, "$") {
				return strings.TrimSpace(addr)
			}
		}
		return ""
	}

	matches := simpleAddressRegex.FindAllString(text, -1)
	best := ""
	for _, m := range matches {
		if strings.Contains(m, "$") || len(m) <= 10 || digitsOnlyRegex.MatchString(m) {
			continue
		}
		if len(m) > len(best) {
			best = m
		}
	}
	return strings.TrimSpace(best)
}

// serviceTypeRule maps keyword checks to a categorical service type.
// Rules are evaluated in order; the first hit wins.
type serviceTypeRule struct {
	keywords []string
	service  string
}

var serviceTypeRules = []serviceTypeRule{
	{[]string{"boundary survey", "boundary line"}, "Boundary Survey"},
	{[]string{"topographic survey", "topo survey"}, "Topographic Survey"},
	{[]string{"alta survey", "alta/nsps"}, "ALTA Survey"},
	{[]string{"legal description", "legal desc"}, "Legal Description"},
	{[]string{"elevation certificate", "elev cert"}, "Elevation Certificate"},
	{[]string{"subdivision", "plat"}, "Subdivision"},
	{[]string{"survey"}, "Survey"},
	{[]string{"quote", "estimate"}, "Quote Request"},
	{[]string{"consultation", "consult"}, "Consultation"},
}

func detectServiceType(text string, extraction dto.ProjectFields) string {
	lower := strings.ToLower(text)
	for _, rule := range serviceTypeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.service
			}
		}
	}
	if extraction.Address != "" || extraction.Parcel != "" {
		return "Survey"
	}
	return "General Inquiry"
}
