package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix) or YAML config files. Command-line
// overrides are applied by the CLI layer on top of the loaded values.
type Config struct {
	OrdersPath     string `default:"" usage:"Order sheet to process before the menu (.csv, .csv.gz, .jsonl)" flag:"orders"`
	ReportPath     string `default:"daily_transactions.txt" usage:"Daily transaction report destination" flag:"report"`
	LedgerJSONPath string `default:"" usage:"Optional JSON lines export of the ledger" flag:"ledger-json"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files. Flag handling is left to the CLI layer.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		SkipFlags: true,
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
