package correios

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCalculateShipping func(ctx context.Context, req *ShippingRequest) ([]ShippingItem, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// CalculateShipping returns mock delivery products.
func (m *MockAPIClient) CalculateShipping(ctx context.Context, req *ShippingRequest) ([]ShippingItem, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{StatusCode: 500, Message: "simulated API error"}
	}

	if m.OnCalculateShipping != nil {
		return m.OnCalculateShipping(ctx, req)
	}

	return []ShippingItem{
		{
			ETA:         "6 dias úteis",
			ProductCode: "04510",
			Price:       "R$ 27,00",
			Description: "PAC",
		},
		{
			ETA:         "3 dias úteis",
			ProductCode: "04014",
			Price:       "R$ 43,20",
			Description: "Sedex",
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
