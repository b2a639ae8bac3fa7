package correios

import (
	"context"
	"fmt"
)

// APIClient defines the interface for Correios shipping quote operations.
type APIClient interface {
	// CalculateShipping prices a shipment and returns one item per
	// available delivery product.
	CalculateShipping(ctx context.Context, req *ShippingRequest) ([]ShippingItem, error)
}

// ShippingRequest is the Correios quote payload. Postal codes are masked
// ("#####-###") and dimensions are centimetre strings, per the API contract.
type ShippingRequest struct {
	OriginCEP      string `json:"cepOrigem"`
	DestinationCEP string `json:"cepDestino"`
	Length         string `json:"comprimento"`
	Width          string `json:"largura"`
	Height         string `json:"altura"`
}

// ShippingItem is one priced delivery product.
type ShippingItem struct {
	ETA         string `json:"prazo"`
	ProductCode string `json:"codProdutoAgencia"`
	Price       string `json:"precoPPN"`
	Description string `json:"urlTitulo"`
}

// APIError represents an error from the Correios API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("correios status %d: %s", e.StatusCode, e.Message)
}
