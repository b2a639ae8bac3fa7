package main

import (
	"context"

	"github.com/tournevent/storelocator/internal/config"
	"github.com/tournevent/storelocator/internal/telemetry"
	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/tournevent/storelocator/pkg/locator/correios"
	"github.com/tournevent/storelocator/pkg/locator/googlemaps"
	"github.com/tournevent/storelocator/pkg/locator/opencage"
	"github.com/tournevent/storelocator/pkg/locator/viacep"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}
	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
}

// initOrchestrator wires the provider clients into the shipping engine.
func initOrchestrator(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer) *locator.Orchestrator {
	lookup := viacep.New(viacep.Config{
		BaseURL: cfg.ViaCEPBaseURL,
		UseMock: cfg.ViaCEPUseMock,
	}, logger, tracer)

	maps := googlemaps.New(googlemaps.Config{
		APIKey:  cfg.GoogleMapsAPIKey,
		BaseURL: cfg.GoogleMapsBaseURL,
		UseMock: cfg.GoogleMapsUseMock,
	}, logger, tracer)

	secondary := opencage.New(opencage.Config{
		APIKey:  cfg.OpenCageAPIKey,
		BaseURL: cfg.OpenCageBaseURL,
		UseMock: cfg.OpenCageUseMock,
	}, logger, tracer)

	carrier := correios.New(correios.Config{
		BaseURL: cfg.CorreiosBaseURL,
		UseMock: cfg.CorreiosUseMock,
	}, logger, tracer)

	resolver := locator.NewResolver(maps, lookup, secondary, logger)
	calculator := locator.NewCalculator(maps, resolver, logger)
	quoter := locator.NewQuoter(carrier, logger)

	return locator.NewOrchestrator(calculator, quoter, resolver, lookup, logger, locator.Options{
		PreflightLookup: cfg.ShippingPreflightLookup,
		MaxConcurrency:  cfg.ShippingMaxConcurrency,
	})
}
