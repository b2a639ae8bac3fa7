// Package googlemaps integrates with the Google Maps Geocoding and Distance
// Matrix APIs.
package googlemaps

import (
	"context"
	"time"

	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "googlemaps"

// Config holds Google Maps configuration.
type Config struct {
	APIKey  string
	BaseURL string
	UseMock bool
}

// Client is the Google Maps geocoding and distance matrix client.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Google Maps client.
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

// NewWithAPIClient creates a new Google Maps client with a custom API client.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Geocode resolves a query to coordinates. A ZERO_RESULTS answer maps to
// KindNotFound so the resolver chain can fall back; everything else non-OK
// is a provider error.
func (c *Client) Geocode(ctx context.Context, query string) (*locator.GeoPoint, error) {
	c.logger.Ctx(ctx).Info("Geocoding with Google Maps",
		zap.String("query", query),
	)

	resp, err := c.apiClient.Geocode(ctx, query)
	if err != nil {
		c.logger.Ctx(ctx).Error("Google Maps API error", zap.Error(err))
		return nil, locator.E(providerName, locator.KindProviderError, "geocode request failed").WithCause(err)
	}

	switch {
	case resp.Status == StatusZeroResults, resp.Status == StatusOK && len(resp.Results) == 0:
		return nil, locator.E(providerName, locator.KindNotFound, "no geocoding match for query: "+query)
	case resp.Status != StatusOK:
		return nil, locator.E(providerName, locator.KindProviderError, "geocode status "+resp.Status+": "+resp.ErrorMessage)
	}

	location := resp.Results[0].Geometry.Location
	return &locator.GeoPoint{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, nil
}

// Distance computes travel distance for a single origin/destination pair.
// An element-level NOT_FOUND or ZERO_RESULTS maps to KindNotFound so the
// calculator can retry with coordinates.
func (c *Client) Distance(ctx context.Context, origin, destination string) (*locator.DistanceResult, error) {
	c.logger.Ctx(ctx).Info("Calculating distance with Google Maps",
		zap.String("origin", origin),
		zap.String("destination", destination),
	)

	resp, err := c.apiClient.DistanceMatrix(ctx, []string{origin}, []string{destination})
	if err != nil {
		c.logger.Ctx(ctx).Error("Google Maps API error", zap.Error(err))
		return nil, locator.E(providerName, locator.KindProviderError, "distance matrix request failed").WithCause(err)
	}

	if resp.Status != StatusOK {
		return nil, locator.E(providerName, locator.KindProviderError, "distance matrix status "+resp.Status+": "+resp.ErrorMessage)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, locator.E(providerName, locator.KindInternal, "distance matrix response has no elements")
	}

	element := resp.Rows[0].Elements[0]
	switch element.Status {
	case StatusOK:
	case StatusNotFound, StatusZeroResults:
		return nil, locator.E(providerName, locator.KindNotFound, "distance matrix could not match endpoints")
	default:
		return nil, locator.E(providerName, locator.KindProviderError, "distance matrix element status "+element.Status)
	}

	return &locator.DistanceResult{
		Text:   element.Distance.Text,
		Meters: element.Distance.Value,
	}, nil
}

var (
	_ locator.Geocoder       = (*Client)(nil)
	_ locator.DistanceMatrix = (*Client)(nil)
)
