package locator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/locator"
)

func pdvStore() locator.StoreCandidate {
	return locator.StoreCandidate{
		ID:         "store-1",
		Name:       "Loja Centro",
		PostalCode: "88010400",
		Type:       locator.StorePDV,
		City:       "Florianópolis",
		State:      "SC",
	}
}

func lojaStore() locator.StoreCandidate {
	store := pdvStore()
	store.Type = locator.StoreLoja
	return store
}

func TestQuote_PDVBeyondRadius_NotServiceable(t *testing.T) {
	carrier := &fakeCarrier{}
	quoter := locator.NewQuoter(carrier, testLogger())

	tier, err := quoter.Quote(context.Background(), pdvStore(), "88080080", 50.1)

	require.NoError(t, err)
	assert.False(t, tier.Serviceable())
	assert.Equal(t, locator.TierNotServiceable, tier.Kind)
	assert.Nil(t, tier.Options())
	assert.Zero(t, carrier.calls.Load(), "carrier must not be queried for PDV")
}

func TestQuote_WithinRadius_Courier(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		wantHours  int
		wantETA    string
	}{
		{"short hop", 30, 1, "1 hora"},
		{"exactly one hour", 40, 1, "1 hora"},
		{"just over one hour", 41, 2, "2 horas"},
		{"radius boundary", 50, 2, "2 horas"},
	}

	quoter := locator.NewQuoter(&fakeCarrier{}, testLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := quoter.Quote(context.Background(), pdvStore(), "88080080", tt.distanceKm)
			require.NoError(t, err)

			assert.Equal(t, locator.TierCourier, tier.Kind)
			require.NotNil(t, tier.Courier)
			assert.Equal(t, tt.wantHours, tier.Courier.ETAHours)
			assert.Equal(t, 1500, tier.Courier.PriceCents)

			options := tier.Options()
			require.Len(t, options, 1)
			assert.Equal(t, tt.wantETA, options[0].ETA)
			assert.Equal(t, "R$ 15,00", options[0].Price)
			assert.Equal(t, "Motoboy", options[0].Description)
		})
	}
}

func TestQuote_WithinRadius_StoreTypeSymmetry(t *testing.T) {
	quoter := locator.NewQuoter(&fakeCarrier{}, testLogger())

	for _, km := range []float64{0.5, 10, 40, 50} {
		pdvTier, err := quoter.Quote(context.Background(), pdvStore(), "88080080", km)
		require.NoError(t, err)
		lojaTier, err := quoter.Quote(context.Background(), lojaStore(), "88080080", km)
		require.NoError(t, err)

		assert.Equal(t, pdvTier, lojaTier, "distance %.1f km", km)
	}
}

func TestQuote_LOJABeyondRadius_PostalCarrier(t *testing.T) {
	carrier := &fakeCarrier{fn: func(origin, destination locator.PostalCode) ([]locator.CarrierOption, error) {
		assert.Equal(t, "88010400", origin.String())
		assert.Equal(t, "88080080", destination.String())
		return []locator.CarrierOption{
			{ETA: "6 dias úteis", ProductCode: "04510", Price: "R$ 27,00", Description: "PAC"},
			{ETA: "3 dias úteis", ProductCode: "04014", Price: "R$ 43,20", Description: "Sedex"},
		}, nil
	}}
	quoter := locator.NewQuoter(carrier, testLogger())

	tier, err := quoter.Quote(context.Background(), lojaStore(), "88080080", 80)

	require.NoError(t, err)
	assert.Equal(t, locator.TierPostalCarrier, tier.Kind)
	require.Len(t, tier.Options(), 2)
	assert.Equal(t, "PAC", tier.Options()[0].Description)
	assert.Equal(t, "Sedex", tier.Options()[1].Description)

	require.Len(t, carrier.parcels, 1)
	assert.Equal(t, locator.Parcel{LengthCM: 20, WidthCM: 15, HeightCM: 10}, carrier.parcels[0])
}

func TestQuote_CarrierFailurePropagates(t *testing.T) {
	carrier := &fakeCarrier{fn: func(_, _ locator.PostalCode) ([]locator.CarrierOption, error) {
		return nil, locator.E("correios", locator.KindProviderError, "shipping quote failed")
	}}
	quoter := locator.NewQuoter(carrier, testLogger())

	_, err := quoter.Quote(context.Background(), lojaStore(), "88080080", 80)

	require.Error(t, err)
	assert.Equal(t, locator.KindProviderError, locator.KindOf(err))
}
