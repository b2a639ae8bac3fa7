package googlemaps

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGeocode        func(ctx context.Context, query string) (*GeocodeResponse, error)
	OnDistanceMatrix func(ctx context.Context, origins, destinations []string) (*DistanceMatrixResponse, error)
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
		return nil, &APIError{Status: "MOCK_ERROR", Message: "simulated API error"}
	}

	if m.OnGeocode != nil {
		return m.OnGeocode(ctx, query)
	}

	return &GeocodeResponse{
		Status: StatusOK,
		Results: []GeocodeResult{
			{
				FormattedAddress: "Florianópolis, SC, Brazil",
				Geometry: Geometry{
					Location: LatLng{Lat: -27.5954, Lng: -48.5480},
				},
			},
		},
	}, nil
}

// DistanceMatrix returns a mock single-pair distance.
func (m *MockAPIClient) DistanceMatrix(ctx context.Context, origins, destinations []string) (*DistanceMatrixResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Status: "MOCK_ERROR", Message: "simulated API error"}
	}

	if m.OnDistanceMatrix != nil {
		return m.OnDistanceMatrix(ctx, origins, destinations)
	}

	return &DistanceMatrixResponse{
		Status: StatusOK,
		Rows: []Row{
			{
				Elements: []Element{
					{
						Status:   StatusOK,
						Distance: ValueText{Text: "12.3 km", Value: 12300},
						Duration: ValueText{Text: "21 mins", Value: 1260},
					},
				},
			},
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
