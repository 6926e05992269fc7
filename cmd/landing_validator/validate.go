package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vladimir-litvinchik/landing-validator/internal/config"
	"github.com/vladimir-litvinchik/landing-validator/internal/pipeline"
)

// Production defaults; overridable via flags, config file, or environment.
const (
	defaultCatalogURL = "https://raw.githubusercontent.com/vladimir-litvinchik/groupdocs-product-grid/refs/heads/main/product_versions.json"
	defaultPageURL    = "https://products.groupdocs.com/"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate the landing page against the product catalog",
	Long: `Fetches the product-versions catalog and the landing page, extracts family
and platform links from the page, and reports every product link the catalog
expects but the page lacks.

Writes validation_report.md and product_links.json to the output directory.
Exits non-zero when any error-severity issue is found.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runValidateCmd,
}

var (
	validateConfigPath     string
	validateCatalogURL     string
	validatePageURL        string
	validateOutputDir      string
	validateTimeout        int
	validateUseBrowser     bool
	validateWarnUnexpected bool
	validateVerbose        bool
)

func init() {
	// Config file flag (processed first)
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	validateCommand.Flags().StringVar(&validateCatalogURL, "catalog-url", "", "Product-versions catalog URL (defaults to CATALOG_URL env var, then the production catalog)")
	validateCommand.Flags().StringVar(&validatePageURL, "page-url", "", "Landing page URL (defaults to LANDING_PAGE_URL env var, then the production page)")
	validateCommand.Flags().StringVarP(&validateOutputDir, "output-dir", "o", "", "Directory for the report files (defaults to the working directory)")
	validateCommand.Flags().IntVar(&validateTimeout, "timeout", 0, "HTTP timeout in seconds (0 uses the default)")
	validateCommand.Flags().BoolVar(&validateUseBrowser, "use-browser", false, "Render the landing page in a headless browser (requires Chrome)")
	validateCommand.Flags().BoolVar(&validateWarnUnexpected, "warn-unexpected", false, "Warn about platform links the catalog does not declare")
	validateCommand.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(validateCommand)
}

// resolveConfig merges the config file, explicitly set CLI flags, the
// environment, and the production defaults, in rising precedence of the
// first three.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if validateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(validateConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if validateVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", validateConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("catalog-url") {
		cfg.CatalogURL = validateCatalogURL
	}
	if cmd.Flags().Changed("page-url") {
		cfg.PageURL = validatePageURL
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = validateOutputDir
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = validateTimeout
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = validateUseBrowser
	}
	if cmd.Flags().Changed("warn-unexpected") {
		cfg.WarnUnexpected = validateWarnUnexpected
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = validateVerbose
	}

	// Step 3: Apply environment and production defaults for unset values
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = os.Getenv("CATALOG_URL")
	}
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = defaultCatalogURL
	}
	if cfg.PageURL == "" {
		cfg.PageURL = os.Getenv("LANDING_PAGE_URL")
	}
	if cfg.PageURL == "" {
		cfg.PageURL = defaultPageURL
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// A failing validation is not a usage error
	cmd.SilenceUsage = true

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		CatalogURL:     cfg.CatalogURL,
		PageURL:        cfg.PageURL,
		OutputDir:      cfg.OutputDir,
		Timeout:        cfg.Timeout(),
		UseBrowser:     cfg.UseBrowser,
		WarnUnexpected: cfg.WarnUnexpected,
		Verbose:        cfg.Verbose,
	}, cfg.EffectiveRules())
	if err != nil {
		return err
	}

	if result.Result.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", result.Result.Counts.Errors)
	}
	return nil
}
