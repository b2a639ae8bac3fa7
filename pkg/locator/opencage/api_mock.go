package opencage

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGeocode func(ctx context.Context, query string) (*GeocodeResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Geocode returns mock coordinates.
func (m *MockAPIClient) Geocode(ctx context.Context, query string) (*GeocodeResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: 500, Message: "simulated API error"}
	}

	if m.OnGeocode != nil {
		return m.OnGeocode(ctx, query)
	}

	return &GeocodeResponse{
		Status:       Status{Code: 200, Message: "OK"},
		TotalResults: 1,
		Results: []Result{
			{
				Formatted: "Coqueiros, Florianópolis - SC, Brazil",
				Geometry:  Geometry{Lat: -27.6010, Lng: -48.5762},
			},
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
