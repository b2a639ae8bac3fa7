package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service. Provider clients receive
// their slice of it at construction; nothing reads the environment after
// Load.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// MongoDB
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"storelocator"`

	// ViaCEP (address lookup)
	ViaCEPBaseURL string `envconfig:"VIACEP_BASE_URL" default:"https://viacep.com.br"`
	ViaCEPUseMock bool   `envconfig:"VIACEP_USE_MOCK" default:"false"`

	// Google Maps (primary geocoder + distance matrix)
	GoogleMapsAPIKey  string `envconfig:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsBaseURL string `envconfig:"GOOGLE_MAPS_BASE_URL" default:"https://maps.googleapis.com"`
	GoogleMapsUseMock bool   `envconfig:"GOOGLE_MAPS_USE_MOCK" default:"false"`

	// OpenCage (secondary geocoder)
	OpenCageAPIKey  string `envconfig:"OPENCAGE_API_KEY"`
	OpenCageBaseURL string `envconfig:"OPENCAGE_BASE_URL" default:"https://api.opencagedata.com"`
	OpenCageUseMock bool   `envconfig:"OPENCAGE_USE_MOCK" default:"false"`

	// Correios (carrier quotes)
	CorreiosBaseURL string `envconfig:"CORREIOS_BASE_URL" default:"https://api.correios.com.br/frete"`
	CorreiosUseMock bool   `envconfig:"CORREIOS_USE_MOCK" default:"false"`

	// Shipping resolution policy
	ShippingPreflightLookup bool          `envconfig:"SHIPPING_PREFLIGHT_LOOKUP" default:"true"`
	ShippingMaxConcurrency  int           `envconfig:"SHIPPING_MAX_CONCURRENCY" default:"10"`
	ShippingRequestTimeout  time.Duration `envconfig:"SHIPPING_REQUEST_TIMEOUT" default:"30s"`
	DefaultPageLimit        int64         `envconfig:"DEFAULT_PAGE_LIMIT" default:"10"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"storelocator"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("shipping.preflight_lookup", c.ShippingPreflightLookup),
		attribute.Int("shipping.max_concurrency", c.ShippingMaxConcurrency),
	}
}
