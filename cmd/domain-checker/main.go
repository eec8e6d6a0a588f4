// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command domain-checker runs liveness, delegation, parking, and expiry
// checks over a list of domains and writes the results as a CSV or XLSX
// table.
//
// Domains come from positional arguments, a newline-delimited file
// (--input), or both. All four checks are enabled by default; use the
// --skip-* flags or a YAML config file to narrow the run. One progress
// line is printed per completed domain, then a final line naming the
// output file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/domain-checker/src/domaincheck"
)

var (
	inputFile  string
	configFile string

	outputFile   string
	outputFormat string

	skipHTTP    bool
	skipNS      bool
	skipParking bool
	skipExpiry  bool

	descriptive bool
	sortResults bool
	concurrency int
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "domain-checker [flags] [domain ...]",
	Short: "Check domains for liveness, delegation, parking, and expiry",
	Long: `domain-checker probes each domain for HTTP accessibility, NS delegation,
parking-provider signatures, and WHOIS registration expiry, then writes
one row per domain to a CSV or XLSX table.

Failures never stop the batch: a domain that times out or has no WHOIS
data simply gets sentinel values in its row.`,
	Example: `  domain-checker example.com example.net
  domain-checker --input domains.txt --output results.csv
  domain-checker --input domains.txt --skip-expiry --sort
  domain-checker --config checks.yaml example.org`,
	Args:          cobra.ArbitraryArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&inputFile, "input", "i", "", "newline-delimited file of domains to check")
	flags.StringVar(&configFile, "config", "", "YAML config file (flags override it)")
	flags.StringVarP(&outputFile, "output", "o", domaincheck.DefaultOutputFile, "output file path")
	flags.StringVar(&outputFormat, "format", domaincheck.FormatCSV, "output format: csv or xlsx")
	flags.BoolVar(&skipHTTP, "skip-http", false, "skip the HTTP accessibility check")
	flags.BoolVar(&skipNS, "skip-ns", false, "skip the name-server lookup (parking reports N/A)")
	flags.BoolVar(&skipParking, "skip-parking", false, "skip the parking classifier")
	flags.BoolVar(&skipExpiry, "skip-expiry", false, "skip the WHOIS expiry lookup")
	flags.BoolVar(&descriptive, "descriptive", false, `report "<code> - <description>" instead of Accessible/Inaccessible`)
	flags.BoolVar(&sortResults, "sort", false, "sort output: unreachable first, then possibly parked")
	flags.IntVar(&concurrency, "concurrency", 0, "domains checked in parallel (default sequential)")
	flags.DurationVar(&timeout, "timeout", 0, "timeout per probe attempt (default 5s)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	domains, err := gatherDomains(args)
	if err != nil {
		return err
	}
	if len(domains) == 0 {
		return errors.New("no domains to check: pass them as arguments or via --input")
	}

	opts := append(cfg.Options(), domaincheck.WithProgress(func(domain string, completed, total int) {
		fmt.Printf("Checking: %s (%d%%)\n", domain, completed*100/total)
	}))
	checker := domaincheck.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := checker.Check(ctx, domains...)
	if err != nil {
		return err
	}

	if cfg.SortByAttention {
		domaincheck.SortByAttention(records)
	}

	switch cfg.Format {
	case domaincheck.FormatXLSX:
		err = domaincheck.SaveXLSX(cfg.Output, records)
	default:
		err = domaincheck.SaveCSV(cfg.Output, records)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Results written to %s\n", cfg.Output)
	return nil
}

// loadConfig builds the effective config: defaults, then the YAML file,
// then any flags the user actually set.
func loadConfig(cmd *cobra.Command) (domaincheck.Config, error) {
	cfg := domaincheck.DefaultConfig()
	if configFile != "" {
		loaded, err := domaincheck.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("format") {
		format := strings.ToLower(outputFormat)
		if format != domaincheck.FormatCSV && format != domaincheck.FormatXLSX {
			return cfg, fmt.Errorf("unsupported output format %q", outputFormat)
		}
		cfg.Format = format
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if flags.Changed("timeout") {
		cfg.Timeout = domaincheck.Duration(timeout)
	}
	if descriptive {
		cfg.DescriptiveStatus = true
	}
	if sortResults {
		cfg.SortByAttention = true
	}
	if skipHTTP {
		cfg.Checks.Accessibility = false
	}
	if skipNS {
		cfg.Checks.NameServers = false
	}
	if skipParking {
		cfg.Checks.Parking = false
	}
	if skipExpiry {
		cfg.Checks.Expiry = false
	}

	// Keep the default file name in step with the format when the user
	// picked xlsx but no explicit output path.
	if cfg.Format == domaincheck.FormatXLSX && cfg.Output == domaincheck.DefaultOutputFile {
		cfg.Output = strings.TrimSuffix(domaincheck.DefaultOutputFile, ".csv") + ".xlsx"
	}

	return cfg, nil
}

// gatherDomains merges positional arguments with the --input file.
func gatherDomains(args []string) ([]string, error) {
	var domains []string
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg != "" {
			domains = append(domains, arg)
		}
	}

	if inputFile != "" {
		fromFile, err := domaincheck.ReadDomainsFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
		domains = append(domains, fromFile...)
	}

	return domains, nil
}
