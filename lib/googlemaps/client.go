package googlemaps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/utils"
)

// Client wraps the Google Maps Geocoding API and the Routes v2 API
type Client struct {
	APIKey     string
	GeocodeURL string
	RoutesURL  string
	HTTP       *http.Client
}

// NewClient builds a client from GOOGLE_MAPS_API_KEY
func NewClient() *Client {
	return &Client{
		APIKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodeURL: "https://maps.googleapis.com/maps/api/geocode/json",
		RoutesURL:  "https://routes.googleapis.com/directions/v2:computeRoutes",
		HTTP:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is available
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

// Geocode returns the best normalized address for a query, or empty string
// when nothing validates. Missing configuration is not an error here; the
// caller treats empty as "no enrichment".
func (c *Client) Geocode(ctx context.Context, address string) (string, error) {
	if !c.Configured() || address == "" {
		return "", nil
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GeocodeURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if out.Status == "OK" && len(out.Results) > 0 {
		return out.Results[0].FormattedAddress, nil
	}
	return "", nil
}

type routesRequest struct {
	Origin                   addressWaypoint `json:"origin"`
	Destination              addressWaypoint `json:"destination"`
	TravelMode               string          `json:"travelMode"`
	RoutingPreference        string          `json:"routingPreference"`
	ComputeAlternativeRoutes bool            `json:"computeAlternativeRoutes"`
	RouteModifiers           routeModifiers  `json:"routeModifiers"`
	LanguageCode             string          `json:"languageCode"`
	Units                    string          `json:"units"`
}

type addressWaypoint struct {
	Address string `json:"address"`
}

type routeModifiers struct {
	AvoidTolls    bool `json:"avoidTolls"`
	AvoidHighways bool `json:"avoidHighways"`
	AvoidFerries  bool `json:"avoidFerries"`
}

type routesResponse struct {
	Routes []struct {
		Duration       string `json:"duration"`
		StaticDuration string `json:"staticDuration"`
		DistanceMeters int    `json:"distanceMeters"`
	} `json:"routes"`
}

// ComputeTravel asks the Routes API for a traffic-aware driving route and
// returns formatted duration and distance. A nil result without error
// means travel could not be computed.
func (c *Client) ComputeTravel(ctx context.Context, origin, destination string) (*dto.TravelInfo, error) {
	if !c.Configured() || destination == "" {
		return nil, nil
	}

	body, err := json.Marshal(routesRequest{
		Origin:                   addressWaypoint{Address: origin},
		Destination:              addressWaypoint{Address: destination},
		TravelMode:               "DRIVE",
		RoutingPreference:        "TRAFFIC_AWARE",
		ComputeAlternativeRoutes: false,
		RouteModifiers:           routeModifiers{},
		LanguageCode:             "en-US",
		Units:                    "IMPERIAL",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.RoutesURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", "routes.duration,routes.distanceMeters,routes.staticDuration")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routes API returned status %d", resp.StatusCode)
	}

	var out routesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Routes) == 0 {
		return nil, nil
	}

	route := out.Routes[0]
	seconds := parseDurationSeconds(route.Duration)
	if seconds == 0 {
		seconds = parseDurationSeconds(route.StaticDuration)
	}
	if seconds == 0 || route.DistanceMeters == 0 {
		return nil, nil
	}

	return &dto.TravelInfo{
		Duration: utils.FormatTravelDuration(seconds),
		Distance: utils.FormatTravelDistance(route.DistanceMeters),
	}, nil
}

// parseDurationSeconds parses the API's "123s" duration strings
func parseDurationSeconds(d string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(d, "s"))
	if err != nil {
		return 0
	}
	return n
}
