package locator

import (
	"context"
	"fmt"
	"math"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// TierKind tags a shipping tier variant.
type TierKind string

const (
	// TierNotServiceable means the store cannot ship to the destination.
	TierNotServiceable TierKind = "not_serviceable"
	// TierCourier is short-range, flat-rate, hour-denominated delivery.
	TierCourier TierKind = "courier"
	// TierPostalCarrier is long-range delivery priced by the carrier API.
	TierPostalCarrier TierKind = "postal_carrier"
)

// ShippingTier is the shipping classification of one store for one
// destination. Exactly one variant is populated per result.
type ShippingTier struct {
	Kind    TierKind
	Courier *CourierQuote
	Entries []CarrierOption
}

// CourierQuote is the flat-rate short-range delivery quote.
type CourierQuote struct {
	ETAHours   int
	PriceCents int
}

// Serviceable reports whether the store can ship at all.
func (t ShippingTier) Serviceable() bool {
	return t.Kind != TierNotServiceable
}

// Options renders the tier as customer-facing delivery options.
func (t ShippingTier) Options() []CarrierOption {
	switch t.Kind {
	case TierCourier:
		return []CarrierOption{{
			ETA:         formatHours(t.Courier.ETAHours),
			Price:       formatBRL(t.Courier.PriceCents),
			Description: "Motoboy",
		}}
	case TierPostalCarrier:
		return t.Entries
	}
	return nil
}

const (
	courierRadiusKm    = 50
	courierSpeedKmHour = 40
	courierPriceCents  = 1500
)

// Quoter classifies a store into a shipping tier by distance and store type.
type Quoter struct {
	carrier CarrierQuoter
	logger  *otelzap.Logger
}

// NewQuoter creates a shipping quoter backed by a carrier quote provider for
// the long-range tier.
func NewQuoter(carrier CarrierQuoter, logger *otelzap.Logger) *Quoter {
	return &Quoter{
		carrier: carrier,
		logger:  logger,
	}
}

// Quote evaluates the distance decision table for one store. Within courier
// radius both store types get the same flat-rate quote; beyond it a PDV is
// not serviceable and a LOJA is priced through the carrier API. A carrier
// failure is a hard failure for this store's evaluation.
func (q *Quoter) Quote(ctx context.Context, store StoreCandidate, destination PostalCode, distanceKm float64) (ShippingTier, error) {
	if distanceKm <= courierRadiusKm {
		return ShippingTier{
			Kind: TierCourier,
			Courier: &CourierQuote{
				ETAHours:   int(math.Ceil(distanceKm / courierSpeedKmHour)),
				PriceCents: courierPriceCents,
			},
		}, nil
	}

	if store.Type == StorePDV {
		return ShippingTier{Kind: TierNotServiceable}, nil
	}

	q.logger.Ctx(ctx).Info("Quoting postal carrier shipment",
		zap.String("store_id", store.ID),
		zap.String("origin", store.PostalCode.String()),
		zap.String("destination", destination.String()),
	)

	entries, err := q.carrier.Quote(ctx, store.PostalCode, destination, DefaultParcel)
	if err != nil {
		return ShippingTier{}, err
	}
	return ShippingTier{
		Kind:    TierPostalCarrier,
		Entries: entries,
	}, nil
}

func formatHours(hours int) string {
	if hours > 1 {
		return fmt.Sprintf("%d horas", hours)
	}
	return fmt.Sprintf("%d hora", hours)
}

func formatBRL(cents int) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
