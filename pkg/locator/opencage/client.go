// Package opencage integrates with the OpenCage forward geocoding API. It is
// the secondary geocoder in the resolution chain, queried with a composed
// street address when postal-code-only geocoding comes up empty.
package opencage

import (
	"context"
	"net/http"
	"time"

	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "opencage"

// Config holds OpenCage configuration.
type Config struct {
	APIKey  string
	BaseURL string
	UseMock bool
}

// Client is the OpenCage geocoding client.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new OpenCage client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
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

// NewWithAPIClient creates a new OpenCage client with a custom API client.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Geocode resolves a query to coordinates.
func (c *Client) Geocode(ctx context.Context, query string) (*locator.GeoPoint, error) {
	c.logger.Ctx(ctx).Info("Geocoding with OpenCage",
		zap.String("query", query),
	)

	resp, err := c.apiClient.Geocode(ctx, query)
	if err != nil {
		c.logger.Ctx(ctx).Error("OpenCage API error", zap.Error(err))
		return nil, locator.E(providerName, locator.KindProviderError, "geocode request failed").WithCause(err)
	}

	if resp.Status.Code != http.StatusOK {
		return nil, locator.E(providerName, locator.KindProviderError, "geocode status "+resp.Status.Message).
			WithStatusCode(resp.Status.Code)
	}
	if len(resp.Results) == 0 {
		return nil, locator.E(providerName, locator.KindNotFound, "no geocoding match for query: "+query)
	}

	geometry := resp.Results[0].Geometry
	return &locator.GeoPoint{
		Latitude:  geometry.Lat,
		Longitude: geometry.Lng,
	}, nil
}

var _ locator.Geocoder = (*Client)(nil)
