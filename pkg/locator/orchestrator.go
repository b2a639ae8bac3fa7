package locator

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures orchestration policy.
type Options struct {
	// PreflightLookup runs an address-lookup existence check on the
	// destination before fanning out.
	PreflightLookup bool
	// MaxConcurrency bounds the per-page fan-out.
	MaxConcurrency int
}

// DefaultMaxConcurrency bounds fan-out when Options leaves it unset.
const DefaultMaxConcurrency = 10

// Orchestrator fans out per-store shipping evaluation across a page of store
// candidates and assembles the aggregate response.
//
// Partial-failure policy: a store whose provider calls fail is logged,
// counted and excluded from the page, never propagated as a page-level error.
type Orchestrator struct {
	calculator *Calculator
	quoter     *Quoter
	resolver   *Resolver
	lookup     AddressLookup
	logger     *otelzap.Logger
	opts       Options
}

// NewOrchestrator creates the store shipping orchestrator.
func NewOrchestrator(calculator *Calculator, quoter *Quoter, resolver *Resolver, lookup AddressLookup, logger *otelzap.Logger, opts Options) *Orchestrator {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Orchestrator{
		calculator: calculator,
		quoter:     quoter,
		resolver:   resolver,
		lookup:     lookup,
		logger:     logger,
		opts:       opts,
	}
}

type storeEvaluation struct {
	result StoreShippingResult
	pin    MapPin
	failed bool
}

// ResolveShipping validates the destination postal code and evaluates every
// candidate store: travel distance, shipping tier, pin coordinates. Stores
// out of any viable tier are dropped; result order follows candidate order.
func (o *Orchestrator) ResolveShipping(ctx context.Context, rawPostalCode string, candidates []StoreCandidate) (*ShippingPage, error) {
	destination, err := ParsePostalCode(rawPostalCode)
	if err != nil {
		return nil, err
	}

	if o.opts.PreflightLookup {
		if _, err := o.lookup.Lookup(ctx, destination); err != nil {
			return nil, err
		}
	}

	evaluations := make([]*storeEvaluation, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.MaxConcurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			eval, err := o.evaluate(gctx, candidate, destination)
			if err != nil {
				o.logger.Ctx(gctx).Warn("Store evaluation failed, excluding store from page",
					zap.String("store_id", candidate.ID),
					zap.String("store_name", candidate.Name),
					zap.Error(err),
				)
				evaluations[i] = &storeEvaluation{failed: true}
				return nil
			}
			evaluations[i] = eval
			return nil
		})
	}
	g.Wait()

	page := &ShippingPage{
		Results: make([]StoreShippingResult, 0, len(candidates)),
		Pins:    make([]MapPin, 0, len(candidates)),
	}
	for _, eval := range evaluations {
		if eval == nil {
			continue
		}
		if eval.failed {
			page.Failed++
			continue
		}
		if !eval.result.Tier.Serviceable() {
			continue
		}
		page.Results = append(page.Results, eval.result)
		page.Pins = append(page.Pins, eval.pin)
	}
	return page, nil
}

func (o *Orchestrator) evaluate(ctx context.Context, store StoreCandidate, destination PostalCode) (*storeEvaluation, error) {
	distance, err := o.calculator.Distance(ctx, store.PostalCode, destination)
	if err != nil {
		return nil, err
	}

	tier, err := o.quoter.Quote(ctx, store, destination, distance.Kilometers())
	if err != nil {
		return nil, err
	}

	eval := &storeEvaluation{
		result: StoreShippingResult{
			Store:    store,
			Distance: *distance,
			Tier:     tier,
		},
	}
	if !tier.Serviceable() {
		return eval, nil
	}

	point, err := o.resolver.Resolve(ctx, store.PostalCode)
	if err != nil {
		return nil, err
	}
	eval.pin = MapPin{
		Position: *point,
		Title:    store.Name,
	}
	return eval, nil
}
