package services

import (
	"context"
	"log"
	"time"

	"github.com/surveydisco-ai/backend/config"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/lib/googlemaps"
	"github.com/surveydisco-ai/backend/lib/openai"
	"github.com/surveydisco-ai/backend/models"
	"github.com/surveydisco-ai/backend/repositories"
	"github.com/surveydisco-ai/backend/utils"
)

// fieldExtractor is the primary (LLM) extraction collaborator
type fieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (*dto.LLMExtraction, error)
}

// geoProvider validates addresses and computes travel estimates
type geoProvider interface {
	Geocode(ctx context.Context, address string) (string, error)
	ComputeTravel(ctx context.Context, origin, destination string) (*dto.TravelInfo, error)
}

// jobNumberSource looks up the greatest stored job number for a month
type jobNumberSource interface {
	LatestJobNumber(prefix string) (string, error)
}

// ParserService turns free intake text into a structured project record
type ParserService struct {
	extractor  fieldExtractor
	geo        geoProvider
	jobNumbers jobNumberSource
	homeBase   string
	now        func() time.Time
}

// NewParserService creates a parser service wired to the real collaborators
func NewParserService() *ParserService {
	return &ParserService{
		extractor:  openai.NewClient(),
		geo:        googlemaps.NewClient(),
		jobNumbers: repositories.NewProjectRepository(),
		homeBase:   config.HomeBaseAddress(),
		now:        time.Now,
	}
}

// GenerateJobNumber derives the next YYMM-prefixed job number. A storage
// failure degrades to the month's first sequence rather than propagating.
func (s *ParserService) GenerateJobNumber() (string, error) {
	prefix := utils.JobNumberPrefix(s.now())

	latest, err := s.jobNumbers.LatestJobNumber(prefix)
	if err != nil {
		log.Printf("Error generating job number: %v", err)
		return prefix + "01", nil
	}

	return utils.NextJobNumber(prefix, latest)
}

// ParseProjectText extracts structured fields from text and enriches the
// result with geocoding and travel data. Enrichment failures are absorbed:
// a project always comes back from valid input.
func (s *ParserService) ParseProjectText(ctx context.Context, text string) (models.Project, error) {
	jobNumber, err := s.GenerateJobNumber()
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		JobNumber: jobNumber,
		Status:    "New",
		Notes:     text,
	}

	// Try the LLM extractor first
	usedLLM := false
	if llmResult, err := s.extractor.ExtractFields(ctx, text); err != nil {
		log.Printf("LLM extraction failed, falling back to regex: %v", err)
	} else if llmResult != nil {
		fields := llmResult.Fields()
		project.Client = fields.Client
		project.Email = fields.Email
		project.Phone = fields.Phone
		project.PreparedFor = fields.PreparedFor
		project.Address = fields.Address
		project.Parcel = fields.Parcel
		project.Area = fields.Area
		project.ServiceType = fields.ServiceType
		project.CostEstimate = fields.CostEstimate
		usedLLM = true
	}

	// Regex fallback fills only fields the primary extractor left empty
	fallback := utils.ExtractFields(text)
	if project.Client == "" {
		project.Client = fallback.Client
	}
	if project.Email == "" {
		project.Email = fallback.Email
	}
	if project.Phone == "" {
		project.Phone = fallback.Phone
	}
	if project.PreparedFor == "" {
		project.PreparedFor = fallback.PreparedFor
	}
	if project.Address == "" {
		project.Address = fallback.Address
	}
	if project.Parcel == "" {
		project.Parcel = fallback.Parcel
	}
	if project.Area == "" {
		project.Area = fallback.Area
	}
	if project.ServiceType == "" {
		project.ServiceType = fallback.ServiceType
	}
	if project.CostEstimate == "" {
		project.CostEstimate = fallback.CostEstimate
	}

	if !usedLLM {
		project.Status = "Regex"
	}

	project.Contact = joinContact(project.Phone, project.Email)

	// Address validation never replaces the original address
	if project.Address != "" {
		geoAddress, err := s.geo.Geocode(ctx, project.Address)
		if err != nil {
			log.Printf("Address validation failed, keeping original address: %v", err)
		} else if geoAddress != "" {
			project.GeoAddress = geoAddress
		}
	}

	destination := project.GeoAddress
	if destination == "" {
		destination = project.Address
	}
	if destination != "" {
		travel, err := s.geo.ComputeTravel(ctx, s.homeBase, destination)
		if err != nil {
			log.Printf("Travel time calculation failed: %v", err)
		} else if travel != nil {
			project.TravelTime = travel.Duration
			project.TravelDistance = travel.Distance
		}
	}

	return project, nil
}

// joinContact concatenates phone and email, whichever are present
func joinContact(phone, email string) string {
	switch {
	case phone != "" && email != "":
		return phone + ", " + email
	case phone != "":
		return phone
	default:
		return email
	}
}
