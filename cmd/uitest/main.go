// Command uitest runs the portal UI smoke checks against a live deployment.
//
// Usage:
//
//	uitest --url https://portal.example.com [--headed] [--no-s3] [--config suite.yaml]
//
// Each check probes a page-object concern (header visibility, submenus, song
// library shape). Failures capture a full-page screenshot; unless --no-s3 is
// set, screenshots are mirrored to the configured bucket. Exits 1 on any
// failing check.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kuitang/benefits-e2e/internal/artifacts"
	"github.com/kuitang/benefits-e2e/internal/browser"
	"github.com/kuitang/benefits-e2e/internal/config"
	"github.com/kuitang/benefits-e2e/internal/obs"
	"github.com/kuitang/benefits-e2e/internal/pages"
	"github.com/kuitang/benefits-e2e/internal/runner"
)

func main() {
	headed, noS3, url, configFile := config.ParseFlags()
	cfg, err := config.LoadConfig(headed, noS3, url, configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uitest: %v\n", err)
		os.Exit(1)
	}

	if err := obs.Init(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "uitest: open logs: %v\n", err)
		os.Exit(1)
	}
	defer obs.Close()

	cfg.PrintStartupSummary()

	runID := obs.NewRunID()
	ctx := obs.WithCorrelation(context.Background(), obs.Correlation{RunID: runID, Suite: "smoke"})
	log := obs.From(ctx).With("pkg", "uitest")

	var bucket *artifacts.Bucket
	if !cfg.NoS3 {
		bucket, err = artifacts.NewBucket(ctx, artifacts.BucketConfig{
			Endpoint:        cfg.AWSEndpointS3,
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Name:            cfg.AWSBucketName,
			PublicURL:       cfg.AWSPublicURL,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "uitest: connect artifact bucket: %v\n", err)
			os.Exit(1)
		}
	}
	store := artifacts.NewStore(cfg.ScreenshotDir, bucket, runID)

	engine, err := browser.Launch(browser.Options{Headless: cfg.Headless, SlowMo: cfg.SlowMo})
	if err != nil {
		fmt.Fprintf(os.Stderr, "uitest: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	page, err := engine.NewPage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "uitest: %v\n", err)
		os.Exit(1)
	}
	defer page.Close()

	timeouts := pages.Timeouts{
		Probe:  cfg.ProbeTimeout,
		Action: cfg.ActionTimeout,
		Nav:    cfg.NavTimeout,
	}
	header := pages.NewNavigationHeaderPage(page, store, timeouts)
	library := pages.NewSongLibraryPage(page, store, timeouts)

	checks := []runner.Check{
		{Name: "portal loads", Fn: func(context.Context) error {
			return header.NavigateTo(cfg.BaseURL)
		}},
		{Name: "header elements visible", Fn: func(context.Context) error {
			return reportErr(header.CheckAllElementsVisibility())
		}},
		{Name: "main menu items visible", Fn: func(context.Context) error {
			return reportErr(header.CheckMainMenuItemsVisibility())
		}},
		{Name: "submenu items visible", Fn: func(context.Context) error {
			return reportErr(header.CheckAllSubmenuVisibility())
		}},
		{Name: "song library elements visible", Fn: func(context.Context) error {
			return reportErr(library.CheckAllElementsVisibility())
		}},
		{Name: "initial songs seeded", Fn: func(context.Context) error {
			if !library.AreInitialSongsLoaded() {
				count, err := library.GetSongRowCount()
				if err != nil {
					return fmt.Errorf("song table unreadable: %w", err)
				}
				return fmt.Errorf("want 5 seeded rows, got %d", count)
			}
			return nil
		}},
		{Name: "all songs have required fields", Fn: func(context.Context) error {
			records, err := library.GetAllSongData()
			if err != nil {
				return err
			}
			result := library.VerifyAllSongsHaveRequiredFields(records)
			if !result.Valid {
				return fmt.Errorf("incomplete song rows:\n      %s", strings.Join(result.Issues, "\n      "))
			}
			return nil
		}},
	}

	onFailure := func(fctx context.Context, name string, _ error) {
		shotName := strings.ReplaceAll(name, " ", "-")
		path, err := header.TakeScreenshot(shotName)
		if err != nil {
			obs.From(fctx).Warn("failure screenshot not captured", "check", name, "error", err)
			return
		}
		obs.From(fctx).Info("failure screenshot captured", "check", name, "path", path)
	}

	results := runner.Run(ctx, checks, onFailure)
	fmt.Println()
	runner.Print(os.Stdout, results)

	log.Info("run finished", "checks", len(results.Checks), "failures", len(results.Failures))
	if !results.OK() {
		os.Exit(1)
	}
}

func reportErr(report pages.VisibilityReport) error {
	if report.AllVisible {
		return nil
	}
	return fmt.Errorf("%d of %d elements missing: %s",
		len(report.Missing), report.Total, strings.Join(report.Missing, ", "))
}
