// Package fulfillment drives each order through its lifecycle: resolve the
// holiday factory, reconcile the produced variant against inventory, and
// record the outcome in the ledger.
package fulfillment

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/factory"
	"github.com/giftworks/storefront/internal/inventory"
	"github.com/giftworks/storefront/internal/ledger"
	"github.com/giftworks/storefront/internal/order"
)

// RestockBatch is the fixed number of units added to inventory when
// on-hand stock does not exceed the requested quantity.
const RestockBatch = 100

// Engine fulfills orders against a shared inventory store and ledger. It
// owns no state of its own; the registry, store, and ledger are borrowed
// for the duration of a run.
type Engine struct {
	registry *factory.Registry
	store    *inventory.Store
	ledger   *ledger.Ledger
}

// NewEngine creates an Engine with the required collaborators.
func NewEngine(registry *factory.Registry, store *inventory.Store, lg *ledger.Ledger) *Engine {
	return &Engine{
		registry: registry,
		store:    store,
		ledger:   lg,
	}
}

// Process runs a single order through resolution, reconciliation, and
// recording. Orders that fail to resolve or validate are not recorded.
//
// Reconciliation keeps the strict greater-than comparison: stock exactly
// equal to the requested quantity (or zero) triggers a restock of
// RestockBatch units instead of fulfilling the order.
func (e *Engine) Process(ctx context.Context, rec order.Record) (ledger.Outcome, error) {
	product, err := e.registry.CreateFor(rec.Holiday, rec.Category, rec.Fields())
	if err != nil {
		return "", errors.Wrapf(err, "resolve order %d", rec.Number)
	}

	name := product.ProductName()
	available := e.store.CountByName(rec.Category, name)

	var (
		outcome   ledger.Outcome
		removed   int
		restocked int
	)
	if available > rec.Quantity {
		removed = e.store.Remove(rec.Category, name, rec.Quantity)
		outcome = ledger.OutcomeFulfilled
	} else {
		if err := e.store.Add(rec.Category, product, RestockBatch); err != nil {
			return "", errors.Wrapf(err, "restock order %d", rec.Number)
		}
		restocked = RestockBatch
		outcome = ledger.OutcomeRestocked
	}

	e.ledger.Record(rec, outcome, removed, restocked)

	zctx.From(ctx).Info("Order processed",
		zap.Int("order", rec.Number),
		zap.String("holiday", string(rec.Holiday)),
		zap.String("category", string(rec.Category)),
		zap.String("name", name),
		zap.Int("quantity", rec.Quantity),
		zap.Int("available", available),
		zap.String("outcome", string(outcome)),
	)

	return outcome, nil
}

// BatchResult summarizes a sequential batch run.
type BatchResult struct {
	Fulfilled int
	Restocked int
	Failed    int
}

// ProcessBatch processes records strictly in source order. A failure on one
// order is logged and counted; it never aborts the remaining orders.
func (e *Engine) ProcessBatch(ctx context.Context, recs []order.Record) BatchResult {
	var res BatchResult
	for _, rec := range recs {
		outcome, err := e.Process(ctx, rec)
		if err != nil {
			res.Failed++
			zctx.From(ctx).Warn("Order failed",
				zap.Int("order", rec.Number),
				zap.Error(err),
			)
			continue
		}
		switch outcome {
		case ledger.OutcomeFulfilled:
			res.Fulfilled++
		case ledger.OutcomeRestocked:
			res.Restocked++
		}
	}
	return res
}

// IsResolutionError reports whether err stems from an unknown holiday key.
func IsResolutionError(err error) bool {
	var re *factory.ResolutionError
	return errors.As(err, &re)
}

// IsValidationError reports whether err stems from a missing or
// out-of-domain field.
func IsValidationError(err error) bool {
	var ve *catalog.ValidationError
	return errors.As(err, &ve)
}
