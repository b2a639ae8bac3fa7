package opencage

import (
	"context"
	"fmt"
)

// APIClient defines the interface for OpenCage API operations.
type APIClient interface {
	// Geocode performs a forward geocoding query.
	Geocode(ctx context.Context, query string) (*GeocodeResponse, error)
}

// GeocodeResponse matches the OpenCage JSON payload.
type GeocodeResponse struct {
	Status       Status   `json:"status"`
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
}

// Status is the OpenCage response status block.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Result is a single geocoding match.
type Result struct {
	Formatted string   `json:"formatted"`
	Geometry  Geometry `json:"geometry"`
}

// Geometry holds the match coordinates.
type Geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// APIError represents an error from the OpenCage API.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("opencage status %d: %s", e.Code, e.Message)
}
