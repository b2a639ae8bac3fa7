// Package correios integrates with the Correios shipping price API used for
// the long-range postal carrier tier.
package correios

import (
	"context"
	"strconv"
	"time"

	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "correios"

// Config holds Correios configuration.
type Config struct {
	BaseURL string
	UseMock bool
}

// Client is the Correios carrier quote client.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Correios client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			Timeout: 15 * time.Second,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new Correios client with a custom API client.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Quote prices a shipment between two postal codes. Every line item the API
// returns maps 1:1 to a carrier option.
func (c *Client) Quote(ctx context.Context, origin, destination locator.PostalCode, parcel locator.Parcel) ([]locator.CarrierOption, error) {
	c.logger.Ctx(ctx).Info("Calculating shipping with Correios",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
	)

	items, err := c.apiClient.CalculateShipping(ctx, &ShippingRequest{
		OriginCEP:      origin.Masked(),
		DestinationCEP: destination.Masked(),
		Length:         strconv.Itoa(parcel.LengthCM),
		Width:          strconv.Itoa(parcel.WidthCM),
		Height:         strconv.Itoa(parcel.HeightCM),
	})
	if err != nil {
		c.logger.Ctx(ctx).Error("Correios API error", zap.Error(err))
		return nil, locator.E(providerName, locator.KindProviderError, "shipping quote failed").WithCause(err)
	}

	options := make([]locator.CarrierOption, len(items))
	for i, item := range items {
		options[i] = locator.CarrierOption{
			ETA:         item.ETA,
			ProductCode: item.ProductCode,
			Price:       item.Price,
			Description: item.Description,
		}
	}
	return options, nil
}

var _ locator.CarrierQuoter = (*Client)(nil)
