package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/finlytic/ratio-lens/internal"
)

type Params struct {
	Source     string `descr:"Input format" alts:"xlsx,simple-json" strict:"true" default:"xlsx"`
	Output     string `descr:"Output format" alts:"table,json" strict:"true" default:"table"`
	Config     string `descr:"Path to config file (default ~/.ratio-lens/config.yaml)" optional:"true"`
	Currency   string `descr:"Currency code used to format extracted amounts" optional:"true"`
	ShowRecord bool   `descr:"Also print the extracted figures"`
	File       string `descr:"Path to the financial statement file" positional:"true"`
}

func main() {
	boa.NewCmdT[Params]("ratio-lens").
		WithShort("Compute financial ratio indicators from a statement spreadsheet").
		WithLong("Reads a financial statement (balance sheet and income statement line items), extracts the key figures by matching row labels, and reports seven standard ratios with interpretation, recommendation and a traffic-light score.").
		WithRunFunc(func(params *Params) {
			cfg := loadConfig(params.Config)

			format, path := internal.ParseFileArg(params.File)
			if format == "" {
				format = params.Source
			}

			parser, err := internal.GetParser(format)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			record, err := parser.Parse(path, cfg.Matchers())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing file: %v\n", err)
				os.Exit(1)
			}

			if !record.IsValid() {
				fmt.Fprintln(os.Stderr, "no valid financial data detected")
				os.Exit(1)
			}

			indicators := internal.Evaluate(record)

			if params.Output == "json" {
				internal.PrintAnalysisJSON(os.Stdout, record, indicators)
				return
			}

			if params.ShowRecord {
				code := params.Currency
				if code == "" {
					code = cfg.Currency
				}
				if code == "" {
					code = "USD"
				}
				internal.PrintRecordTable(os.Stdout, record, internal.GetCurrency(code))
				fmt.Println()
			}
			internal.PrintIndicatorsTable(os.Stdout, indicators)
		}).
		Run()
}

// loadConfig loads the config file if one exists. An explicitly passed
// path must load; the default path is optional.
func loadConfig(path string) *internal.Config {
	explicit := path != ""
	if !explicit {
		path = internal.DefaultConfigPath()
	}
	if path == "" {
		return &internal.Config{}
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		return &internal.Config{}
	}
	return cfg
}
