package locator_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tournevent/storelocator/internal/telemetry"
	"github.com/tournevent/storelocator/pkg/locator"
)

// Scriptable provider fakes. They record calls under a mutex because the
// orchestrator fans out store evaluations concurrently.

type fakeGeocoder struct {
	mu      sync.Mutex
	calls   atomic.Int32
	queries []string
	fn      func(query string) (*locator.GeoPoint, error)
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (*locator.GeoPoint, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return f.fn(query)
}

type fakeLookup struct {
	calls atomic.Int32
	fn    func(code locator.PostalCode) (*locator.Address, error)
}

func (f *fakeLookup) Lookup(ctx context.Context, code locator.PostalCode) (*locator.Address, error) {
	f.calls.Add(1)
	if f.fn != nil {
		return f.fn(code)
	}
	return &locator.Address{
		Street:    "Rua Desembargador Pedro Silva",
		District:  "Coqueiros",
		City:      "Florianópolis",
		StateCode: "SC",
	}, nil
}

type fakeMatrix struct {
	mu           sync.Mutex
	calls        atomic.Int32
	origins      []string
	destinations []string
	fn           func(origin, destination string) (*locator.DistanceResult, error)
}

func (f *fakeMatrix) Distance(ctx context.Context, origin, destination string) (*locator.DistanceResult, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.origins = append(f.origins, origin)
	f.destinations = append(f.destinations, destination)
	f.mu.Unlock()
	return f.fn(origin, destination)
}

type fakeCarrier struct {
	mu      sync.Mutex
	calls   atomic.Int32
	parcels []locator.Parcel
	fn      func(origin, destination locator.PostalCode) ([]locator.CarrierOption, error)
}

func (f *fakeCarrier) Quote(ctx context.Context, origin, destination locator.PostalCode, parcel locator.Parcel) ([]locator.CarrierOption, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.parcels = append(f.parcels, parcel)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(origin, destination)
	}
	return []locator.CarrierOption{
		{ETA: "6 dias úteis", ProductCode: "04510", Price: "R$ 27,00", Description: "PAC"},
	}, nil
}

func geocoderReturning(point *locator.GeoPoint) *fakeGeocoder {
	return &fakeGeocoder{fn: func(string) (*locator.GeoPoint, error) {
		return point, nil
	}}
}

func geocoderFailing(err error) *fakeGeocoder {
	return &fakeGeocoder{fn: func(string) (*locator.GeoPoint, error) {
		return nil, err
	}}
}

var testLogger = telemetry.NewNopLogger
