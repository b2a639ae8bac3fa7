// Package locator resolves which stores can ship to a destination postal
// code, at what cost and within what time window.
package locator

import (
	"context"
	"math"
	"strings"
)

// StoreType classifies a store's service radius.
type StoreType string

const (
	// StorePDV is a point-of-sale restricted to courier range.
	StorePDV StoreType = "PDV"
	// StoreLoja is a full store eligible for postal carrier shipment.
	StoreLoja StoreType = "LOJA"
)

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// DistanceResult is the travel distance between two locations.
type DistanceResult struct {
	Text   string `json:"text"`
	Meters int    `json:"meters"`
}

// Kilometers returns the distance in kilometers rounded to one decimal.
func (d DistanceResult) Kilometers() float64 {
	return math.Round(float64(d.Meters)/1000*10) / 10
}

// Address is a structured street address returned by an address lookup.
type Address struct {
	Street    string
	District  string
	City      string
	StateCode string
}

// Query composes the address into a single geocoding query string.
func (a Address) Query() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.District, a.City, a.StateCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// StoreCandidate is the read-only subset of a store record the engine needs.
type StoreCandidate struct {
	ID         string
	Name       string
	PostalCode PostalCode
	Type       StoreType
	City       string
	State      string
}

// CarrierOption is one priced delivery option shown to the customer.
type CarrierOption struct {
	ETA         string `json:"prazo"`
	ProductCode string `json:"codProdutoAgencia,omitempty"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Parcel holds the package dimensions sent to the carrier quote API.
type Parcel struct {
	LengthCM int
	WidthCM  int
	HeightCM int
}

// DefaultParcel is the fixed parcel used for store shipping quotes.
var DefaultParcel = Parcel{LengthCM: 20, WidthCM: 15, HeightCM: 10}

// StoreShippingResult is one serviceable store with its shipping quote.
type StoreShippingResult struct {
	Store    StoreCandidate
	Distance DistanceResult
	Tier     ShippingTier
}

// MapPin marks one serviceable store on a map.
type MapPin struct {
	Position GeoPoint `json:"position"`
	Title    string   `json:"title"`
}

// ShippingPage is the aggregate outcome of evaluating one page of stores.
type ShippingPage struct {
	Results []StoreShippingResult
	Pins    []MapPin
	// Failed counts stores excluded because a provider call failed.
	Failed int
}

// AddressLookup resolves a postal code to a structured street address.
type AddressLookup interface {
	Lookup(ctx context.Context, code PostalCode) (*Address, error)
}

// Geocoder resolves a free-text query to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*GeoPoint, error)
}

// DistanceMatrix computes travel distance between two endpoint strings,
// either raw postal codes or "lat,lng" pairs.
type DistanceMatrix interface {
	Distance(ctx context.Context, origin, destination string) (*DistanceResult, error)
}

// CarrierQuoter prices a shipment between two postal codes.
type CarrierQuoter interface {
	Quote(ctx context.Context, origin, destination PostalCode, parcel Parcel) ([]CarrierOption, error)
}
