// Package pipeline provides the high-level orchestration of one validation
// run: fetch both inputs, extract links, reconcile, render reports.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/config"
	"github.com/vladimir-litvinchik/landing-validator/internal/extraction"
	"github.com/vladimir-litvinchik/landing-validator/internal/fetch"
	"github.com/vladimir-litvinchik/landing-validator/internal/observability"
	"github.com/vladimir-litvinchik/landing-validator/internal/reconcile"
	"github.com/vladimir-litvinchik/landing-validator/internal/report"
)

// RunOptions holds configuration for one validation run.
type RunOptions struct {
	CatalogURL     string
	PageURL        string
	OutputDir      string
	Timeout        time.Duration
	UseBrowser     bool
	WarnUnexpected bool
	Verbose        bool

	// Out receives progress and summary output; defaults to os.Stdout.
	Out io.Writer
	// Now supplies the report timestamp; defaults to time.Now.
	Now func() time.Time
}

// RunResult carries the reconciliation outcome back to the CLI, which owns
// the exit-code decision.
type RunResult struct {
	RunID  string
	Result *reconcile.Result
}

// Run executes the full validation sequence. A fetch or parse failure aborts
// before any output file is written; validation findings never abort, so a
// failing validation still produces both reports.
func Run(ctx context.Context, opts RunOptions, rules *config.Rules) (*RunResult, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	runID := uuid.New().String()
	printer := observability.NewPrinter(out)

	fetchOpts := fetch.DefaultOptions()
	if opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}

	// The two inputs are independent until reconciliation, so fetch them
	// concurrently. Either failure aborts the whole run.
	var products []catalog.Product
	var pageHTML string

	fmt.Fprintf(out, "Fetching product catalog from %s...\n", opts.CatalogURL)
	fmt.Fprintf(out, "Fetching landing page from %s...\n", opts.PageURL)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = catalog.Load(gCtx, opts.CatalogURL, fetchOpts, rules)
		return err
	})
	g.Go(func() error {
		var err error
		pageHTML, err = fetchPage(gCtx, opts, fetchOpts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := catalog.Filter(products)
	if opts.Verbose {
		printer.PrintCatalog(products, kept)
	}

	links, err := extraction.Extract(pageHTML, opts.PageURL, rules)
	if err != nil {
		return nil, err
	}

	ruleSet := reconcile.BaseRules()
	if opts.WarnUnexpected {
		ruleSet = append(ruleSet, reconcile.UnexpectedPlatformRule())
	}

	result := reconcile.Reconcile(kept, links, rules, ruleSet)
	if opts.Verbose {
		printer.PrintIssues(result)
	}

	meta := report.Meta{
		GeneratedAt: now(),
		RunID:       runID,
		PageURL:     opts.PageURL,
	}

	// The renderers are independent: attempt both even if one fails.
	mdErr := report.WriteMarkdown(result, rules, meta, opts.OutputDir)
	if mdErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", mdErr)
	}
	manifestErr := report.WriteManifest(result, rules, meta.GeneratedAt, opts.OutputDir)
	if manifestErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", manifestErr)
	}

	printer.PrintSummary(result)

	if err := errors.Join(mdErr, manifestErr); err != nil {
		return &RunResult{RunID: runID, Result: result}, err
	}

	return &RunResult{RunID: runID, Result: result}, nil
}

// fetchPage retrieves the landing-page HTML, optionally through a headless
// browser for pages that render their product grid client-side.
func fetchPage(ctx context.Context, opts RunOptions, fetchOpts *fetch.Options) (string, error) {
	if opts.UseBrowser {
		return fetch.WithBrowser(ctx, opts.PageURL, fetchOpts.Timeout, opts.Verbose)
	}

	result, err := fetch.URL(ctx, opts.PageURL, fetchOpts)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}
