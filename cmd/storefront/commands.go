package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appkg "github.com/giftworks/storefront/internal/app"
)

var (
	flagOrders     string
	flagReport     string
	flagLedgerJSON string
)

// storefront run — batch the configured order sheet (if any), then drop
// into the interactive menu.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive storefront menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, true)
	},
}

// storefront process — batch-only mode: read the order sheet, fulfill
// every row, write the report, and exit.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process an order sheet and write the daily report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, false)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, processCmd} {
		cmd.Flags().StringVar(&flagOrders, "orders", "", "order sheet to process (.csv, .csv.gz, .jsonl)")
		cmd.Flags().StringVar(&flagReport, "report", "", "daily transaction report destination")
		cmd.Flags().StringVar(&flagLedgerJSON, "ledger-json", "", "optional JSON lines export of the ledger")
	}
}

// withApp loads config, applies flag overrides, builds the logger, and
// hands control to app.Run.
func withApp(cmd *cobra.Command, interactive bool) error {
	cfg, err := appkg.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("orders") {
		cfg.OrdersPath = flagOrders
	}
	if cmd.Flags().Changed("report") {
		cfg.ReportPath = flagReport
	}
	if cmd.Flags().Changed("ledger-json") {
		cfg.LedgerJSONPath = flagLedgerJSON
	}

	lg, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return appkg.Run(ctx, lg, cfg, interactive)
}
