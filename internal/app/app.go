package app

import (
	"context"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/giftworks/storefront/internal/factory"
	"github.com/giftworks/storefront/internal/fulfillment"
	"github.com/giftworks/storefront/internal/inventory"
	"github.com/giftworks/storefront/internal/ledger"
	"github.com/giftworks/storefront/internal/orderfile"
	"github.com/giftworks/storefront/internal/storefront"
)

// Run creates all dependencies, optionally pre-processes a batch order
// file, runs the interactive menu when asked, and writes the daily report
// on the way out. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config, interactive bool) error {
	ctx = zctx.Base(ctx, lg)

	registry := factory.NewRegistry()
	store := inventory.NewStore()
	book := ledger.New()
	engine := fulfillment.NewEngine(registry, store, book)

	if cfg.OrdersPath != "" {
		if err := processOrderFile(ctx, lg, engine, cfg.OrdersPath); err != nil {
			return err
		}
	}

	if interactive {
		menu := storefront.NewMenu(engine, store, os.Stdin, os.Stdout)
		if err := menu.Run(ctx); err != nil {
			return errors.Wrap(err, "run menu")
		}
	}

	return writeReports(lg, book, cfg)
}

// processOrderFile reads the order sheet and fulfills every well-formed
// row. Malformed rows are logged individually; only an unreadable source
// aborts the run.
func processOrderFile(ctx context.Context, lg *zap.Logger, engine *fulfillment.Engine, path string) error {
	records, rowErrs, err := orderfile.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read orders from %s", path)
	}
	for i := range rowErrs {
		lg.Warn("Skipping malformed order row",
			zap.Int("line", rowErrs[i].Line),
			zap.Error(rowErrs[i].Err),
		)
	}

	res := engine.ProcessBatch(ctx, records)
	lg.Info("Batch complete",
		zap.Int("orders", len(records)),
		zap.Int("fulfilled", res.Fulfilled),
		zap.Int("restocked", res.Restocked),
		zap.Int("failed", res.Failed),
		zap.Int("malformed_rows", len(rowErrs)),
	)
	return nil
}

func writeReports(lg *zap.Logger, book *ledger.Ledger, cfg *Config) error {
	if err := book.SaveReport(cfg.ReportPath, time.Now()); err != nil {
		return errors.Wrap(err, "write daily report")
	}
	lg.Info("Daily report written",
		zap.String("path", cfg.ReportPath),
		zap.Int("entries", book.Len()),
	)

	if cfg.LedgerJSONPath != "" {
		if err := book.SaveJSON(cfg.LedgerJSONPath); err != nil {
			return errors.Wrap(err, "write ledger export")
		}
		lg.Info("Ledger export written", zap.String("path", cfg.LedgerJSONPath))
	}
	return nil
}
