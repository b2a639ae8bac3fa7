package locator

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Calculator computes travel distance between two postal codes. The distance
// matrix provider is queried with the raw postal codes first; when it cannot
// match an endpoint, both codes are resolved to coordinates through the
// geocoding chain and the query is retried with "lat,lng" strings.
type Calculator struct {
	matrix   DistanceMatrix
	resolver *Resolver
	logger   *otelzap.Logger
}

// NewCalculator creates a distance calculator.
func NewCalculator(matrix DistanceMatrix, resolver *Resolver, logger *otelzap.Logger) *Calculator {
	return &Calculator{
		matrix:   matrix,
		resolver: resolver,
		logger:   logger,
	}
}

// Distance returns the travel distance between origin and destination.
// Conversion to kilometers is left to the caller.
func (c *Calculator) Distance(ctx context.Context, origin, destination PostalCode) (*DistanceResult, error) {
	result, err := c.matrix.Distance(ctx, origin.String(), destination.String())
	if err == nil {
		return result, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	c.logger.Ctx(ctx).Info("Distance matrix could not match postal codes, retrying with coordinates",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
	)

	originPoint, err := c.resolver.Resolve(ctx, origin)
	if err != nil {
		return nil, err
	}
	destinationPoint, err := c.resolver.Resolve(ctx, destination)
	if err != nil {
		return nil, err
	}

	result, err = c.matrix.Distance(ctx, coordinates(originPoint), coordinates(destinationPoint))
	if err != nil {
		if IsNotFound(err) {
			return nil, E("", KindProviderError, "distance matrix rejected resolved coordinates").WithCause(err)
		}
		return nil, err
	}
	return result, nil
}

func coordinates(p *GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}
