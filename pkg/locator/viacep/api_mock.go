package viacep

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGetAddress func(ctx context.Context, cep string) (*AddressResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// GetAddress returns a mock address.
func (m *MockAPIClient) GetAddress(ctx context.Context, cep string) (*AddressResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{StatusCode: 500, Message: "simulated API error"}
	}

	if m.OnGetAddress != nil {
		return m.OnGetAddress(ctx, cep)
	}

	return &AddressResponse{
		CEP:      cep[:5] + "-" + cep[5:],
		Street:   "Rua Desembargador Pedro Silva",
		District: "Coqueiros",
		City:     "Florianópolis",
		State:    "Santa Catarina",
		UF:       "SC",
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
