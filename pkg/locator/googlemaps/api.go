package googlemaps

import (
	"context"
	"fmt"
)

// APIClient defines the interface for Google Maps API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// Geocode resolves a free-text query to coordinates.
	Geocode(ctx context.Context, query string) (*GeocodeResponse, error)

	// DistanceMatrix computes distances between origin/destination sets.
	DistanceMatrix(ctx context.Context, origins, destinations []string) (*DistanceMatrixResponse, error)
}

// Top-level and element-level statuses used by the Google Maps APIs.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
	StatusNotFound    = "NOT_FOUND"
)

// ============================================================================
// API Response Types (match the Google Maps JSON API structure)
// ============================================================================

// GeocodeResponse is the Geocoding API response.
type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

// GeocodeResult is a single geocoding match.
type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

// Geometry holds the match coordinates.
type Geometry struct {
	Location LatLng `json:"location"`
}

// LatLng is a coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMatrixResponse is the Distance Matrix API response.
type DistanceMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Rows         []Row  `json:"rows"`
}

// Row holds the elements for one origin.
type Row struct {
	Elements []Element `json:"elements"`
}

// Element is one origin/destination pair result.
type Element struct {
	Status   string    `json:"status"`
	Distance ValueText `json:"distance"`
	Duration ValueText `json:"duration"`
}

// ValueText is a numeric value with its human-readable rendering.
type ValueText struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// APIError represents an error from the Google Maps API.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	return e.Status
}
