package locator

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Resolver resolves a postal code to coordinates through an ordered provider
// chain: the primary geocoder is queried with the raw postal code, and only
// after a definitive zero-results answer the postal code is expanded into a
// full street address and geocoded against the secondary provider. The two
// geocoders are never queried concurrently.
type Resolver struct {
	primary   Geocoder
	lookup    AddressLookup
	secondary Geocoder
	logger    *otelzap.Logger
}

// NewResolver creates a geocoding resolver with its fallback chain.
func NewResolver(primary Geocoder, lookup AddressLookup, secondary Geocoder, logger *otelzap.Logger) *Resolver {
	return &Resolver{
		primary:   primary,
		lookup:    lookup,
		secondary: secondary,
		logger:    logger,
	}
}

// Resolve returns the coordinates for a postal code. It fails with
// KindNotFound when neither provider has a match and KindProviderError on any
// transport-level failure.
func (r *Resolver) Resolve(ctx context.Context, code PostalCode) (*GeoPoint, error) {
	point, err := r.primary.Geocode(ctx, code.String())
	if err == nil {
		return point, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	r.logger.Ctx(ctx).Info("Primary geocoder had no match, composing full address",
		zap.String("postal_code", code.String()),
	)

	addr, err := r.lookup.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	point, err = r.secondary.Geocode(ctx, addr.Query())
	if err != nil {
		if IsNotFound(err) {
			r.logger.Ctx(ctx).Warn("Secondary geocoder had no match",
				zap.String("postal_code", code.String()),
				zap.String("query", addr.Query()),
			)
		}
		return nil, err
	}
	return point, nil
}
