// Package viacep integrates with the ViaCEP postal code registry.
package viacep

import (
	"context"
	"time"

	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "viacep"

// Config holds ViaCEP configuration.
type Config struct {
	BaseURL string
	UseMock bool
}

// Client is the ViaCEP address lookup client.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new ViaCEP client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			Timeout: 10 * time.Second,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new ViaCEP client with a custom API client.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Lookup resolves a postal code to its registered street address.
func (c *Client) Lookup(ctx context.Context, code locator.PostalCode) (*locator.Address, error) {
	c.logger.Ctx(ctx).Info("Looking up postal code with ViaCEP",
		zap.String("postal_code", code.String()),
	)

	resp, err := c.apiClient.GetAddress(ctx, code.String())
	if err != nil {
		c.logger.Ctx(ctx).Error("ViaCEP API error", zap.Error(err))
		return nil, locator.E(providerName, locator.KindProviderError, "address lookup failed").WithCause(err)
	}

	if resp.NotFound {
		return nil, locator.E(providerName, locator.KindNotFound, "postal code not found: "+code.String())
	}

	return &locator.Address{
		Street:    resp.Street,
		District:  resp.District,
		City:      resp.City,
		StateCode: resp.UF,
	}, nil
}

var _ locator.AddressLookup = (*Client)(nil)
