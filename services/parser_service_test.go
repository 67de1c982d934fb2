package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/surveydisco-ai/backend/dto"
)

type fakeExtractor struct {
	result *dto.LLMExtraction
	err    error
}

func (f *fakeExtractor) ExtractFields(ctx context.Context, text string) (*dto.LLMExtraction, error) {
	return f.result, f.err
}

type fakeGeo struct {
	geoAddress string
	geoErr     error
	travel     *dto.TravelInfo
	travelErr  error

	travelOrigin      string
	travelDestination string
	travelCalls       int
}

func (f *fakeGeo) Geocode(ctx context.Context, address string) (string, error) {
	return f.geoAddress, f.geoErr
}

func (f *fakeGeo) ComputeTravel(ctx context.Context, origin, destination string) (*dto.TravelInfo, error) {
	f.travelCalls++
	f.travelOrigin = origin
	f.travelDestination = destination
	return f.travel, f.travelErr
}

type fakeJobSource struct {
	latest string
	err    error
}

func (f *fakeJobSource) LatestJobNumber(prefix string) (string, error) {
	return f.latest, f.err
}

func ptr(s string) *string { return &s }

func newTestParser(extractor *fakeExtractor, geo *fakeGeo, jobs *fakeJobSource) *ParserService {
	return &ParserService{
		extractor:  extractor,
		geo:        geo,
		jobNumbers: jobs,
		homeBase:   "523 Hastings Way, Jonesboro, GA 30238",
		now: func() time.Time {
			return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestGenerateJobNumberFirstOfMonth(t *testing.T) {
	s := newTestParser(&fakeExtractor{}, &fakeGeo{}, &fakeJobSource{latest: ""})

	got, err := s.GenerateJobNumber()
	require.NoError(t, err)
	require.Equal(t, "260801", got)
}

func TestGenerateJobNumberIncrements(t *testing.T) {
	s := newTestParser(&fakeExtractor{}, &fakeGeo{}, &fakeJobSource{latest: "260812"})

	got, err := s.GenerateJobNumber()
	require.NoError(t, err)
	require.Equal(t, "260813", got)
}

func TestGenerateJobNumberStorageErrorDegrades(t *testing.T) {
	s := newTestParser(&fakeExtractor{}, &fakeGeo{}, &fakeJobSource{err: errors.New("db down")})

	got, err := s.GenerateJobNumber()
	require.NoError(t, err)
	require.Equal(t, "260801", got)
}

func TestParseProjectTextLLMPrimary(t *testing.T) {
	extractor := &fakeExtractor{result: &dto.LLMExtraction{
		Client:      ptr("Jane Doe"),
		Phone:       ptr("770-555-0100"),
		Address:     ptr("88 Oak Ave"),
		ServiceType: ptr("Boundary Survey"),
	}}
	geo := &fakeGeo{
		geoAddress: "88 Oak Ave, Jonesboro, GA 30238, USA",
		travel:     &dto.TravelInfo{Duration: "25 min", Distance: "12.3 mi"},
	}
	s := newTestParser(extractor, geo, &fakeJobSource{})

	// The text carries an email the model missed; the fallback fills it in
	project, err := s.ParseProjectText(context.Background(), "boundary survey, reach me at jane@doe.example please")
	require.NoError(t, err)

	require.Equal(t, "260801", project.JobNumber)
	require.Equal(t, "New", project.Status)
	require.Equal(t, "Jane Doe", project.Client)
	require.Equal(t, "88 Oak Ave", project.Address)
	require.Equal(t, "jane@doe.example", project.Email)
	require.Equal(t, "770-555-0100, jane@doe.example", project.Contact)
	require.Equal(t, "88 Oak Ave, Jonesboro, GA 30238, USA", project.GeoAddress)
	require.Equal(t, "25 min", project.TravelTime)
	require.Equal(t, "12.3 mi", project.TravelDistance)

	// Travel is computed from home base to the geocoded address
	require.Equal(t, 1, geo.travelCalls)
	require.Equal(t, "523 Hastings Way, Jonesboro, GA 30238", geo.travelOrigin)
	require.Equal(t, "88 Oak Ave, Jonesboro, GA 30238, USA", geo.travelDestination)

	// The raw intake text is preserved as notes
	require.Equal(t, "boundary survey, reach me at jane@doe.example please", project.Notes)
}

func TestParseProjectTextRegexFallback(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("model unavailable")}
	geo := &fakeGeo{geoErr: errors.New("geocode down"), travelErr: errors.New("routes down")}
	s := newTestParser(extractor, geo, &fakeJobSource{})

	project, err := s.ParseProjectText(context.Background(),
		"John Smith here, need a boundary survey at 123 Main St, budget $2,500")
	require.NoError(t, err)

	require.Equal(t, "Regex", project.Status)
	require.Equal(t, "John Smith", project.Client)
	require.Equal(t, "123 Main St", project.Address)
	require.Equal(t, "$2,500", project.CostEstimate)
	require.Equal(t, "Boundary Survey", project.ServiceType)

	// Failed enrichment leaves the fields empty but never fails the parse
	require.Empty(t, project.GeoAddress)
	require.Empty(t, project.TravelTime)
	require.Empty(t, project.TravelDistance)
}

func TestParseProjectTextTravelFallsBackToRawAddress(t *testing.T) {
	extractor := &fakeExtractor{result: &dto.LLMExtraction{Address: ptr("77 Pine Ln")}}
	geo := &fakeGeo{geoErr: errors.New("geocode down"), travel: &dto.TravelInfo{Duration: "5 min", Distance: "1.1 mi"}}
	s := newTestParser(extractor, geo, &fakeJobSource{})

	project, err := s.ParseProjectText(context.Background(), "survey at my place")
	require.NoError(t, err)

	require.Empty(t, project.GeoAddress)
	require.Equal(t, "77 Pine Ln", geo.travelDestination)
	require.Equal(t, "5 min", project.TravelTime)
}

func TestParseProjectTextNoAddressSkipsTravel(t *testing.T) {
	extractor := &fakeExtractor{result: &dto.LLMExtraction{}}
	geo := &fakeGeo{}
	s := newTestParser(extractor, geo, &fakeJobSource{})

	project, err := s.ParseProjectText(context.Background(), "hello, what are your rates")
	require.NoError(t, err)

	require.Zero(t, geo.travelCalls)
	require.Empty(t, project.TravelTime)
}

func TestJoinContact(t *testing.T) {
	require.Equal(t, "770-555-0100, a@b.c", joinContact("770-555-0100", "a@b.c"))
	require.Equal(t, "770-555-0100", joinContact("770-555-0100", ""))
	require.Equal(t, "a@b.c", joinContact("", "a@b.c"))
	require.Empty(t, joinContact("", ""))
}
