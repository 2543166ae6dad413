// Command storefront runs the holiday storefront: an interactive console
// menu over an in-memory inventory, with optional batch processing of an
// order sheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Holiday storefront console",
	Long: "Holiday storefront: reads orders from a sheet, builds themed products\n" +
		"through per-holiday factories, reconciles them against an in-memory\n" +
		"inventory, and writes a daily transaction report on exit.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(processCmd)
}
