package viacep

import (
	"context"
)

// APIClient defines the interface for ViaCEP API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// GetAddress fetches the registered address for a digits-only CEP.
	GetAddress(ctx context.Context, cep string) (*AddressResponse, error)
}

// AddressResponse matches the ViaCEP JSON payload.
type AddressResponse struct {
	CEP        string `json:"cep"`
	Street     string `json:"logradouro"`
	Complement string `json:"complemento"`
	District   string `json:"bairro"`
	City       string `json:"localidade"`
	State      string `json:"estado"`
	UF         string `json:"uf"`
	// NotFound is set when ViaCEP answers {"erro": true} for a
	// syntactically valid but unassigned CEP.
	NotFound bool `json:"erro,omitempty"`
}

// APIError represents an error from the ViaCEP API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
