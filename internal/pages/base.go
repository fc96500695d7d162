// Package pages holds the page objects for the benefits portal UI. Each page
// is a declarative locator table plus stateless probe and interaction
// methods; all DOM state lives in the remote page and is re-read on every
// call.
//
// Two-tier failure policy: visibility probes resolve to a boolean and never
// return an error; actions (navigate, click, fill, extract) propagate coded
// errors to the caller.
package pages

import (
	"context"
	"log/slog"
	"time"

	"github.com/kuitang/benefits-e2e/internal/artifacts"
	"github.com/kuitang/benefits-e2e/internal/browser"
	"github.com/kuitang/benefits-e2e/internal/errs"
	"github.com/kuitang/benefits-e2e/internal/logutil"
	"github.com/kuitang/benefits-e2e/internal/obs"
)

const mirrorTimeout = 30 * time.Second

// Timeouts carries the wait budgets shared by all page objects.
type Timeouts struct {
	// Probe bounds visibility checks; running out of budget is a negative
	// result, not an error.
	Probe time.Duration
	// Action bounds clicks, fills, and text extraction.
	Action time.Duration
	// Nav bounds full page navigations.
	Nav time.Duration
}

// DefaultTimeouts returns the standard wait budgets.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Probe:  2 * time.Second,
		Action: 5 * time.Second,
		Nav:    10 * time.Second,
	}
}

// BasePage wraps a borrowed browser page with logging, screenshots, and the
// shared wait/click/fill/probe primitives. It never closes the page handle;
// that duty stays with whoever created it.
type BasePage struct {
	page     browser.Page
	log      *slog.Logger
	store    *artifacts.Store
	timeouts Timeouts
}

// NewBasePage creates a base page over the given driver. store may be nil
// when screenshots are not needed.
func NewBasePage(page browser.Page, store *artifacts.Store, timeouts Timeouts) BasePage {
	return BasePage{
		page:     page,
		log:      obs.Pkg("pages"),
		store:    store,
		timeouts: timeouts,
	}
}

// NavigateTo opens the given URL and waits for DOMContentLoaded.
func (b *BasePage) NavigateTo(url string) error {
	b.log.Info("navigating", "url", url)
	if err := b.page.Goto(url, b.timeouts.Nav); err != nil {
		return errs.Wrap(errs.Navigation, "navigate to "+url, err)
	}
	return nil
}

// WaitForElement waits until the selector's first match is visible.
func (b *BasePage) WaitForElement(selector string, timeout time.Duration) error {
	if err := b.page.WaitVisible(selector, timeout); err != nil {
		return errs.Wrap(errs.Timeout, "wait for "+selector, err)
	}
	return nil
}

// ClickElement waits for the element and clicks it.
func (b *BasePage) ClickElement(selector string) error {
	b.log.Info("clicking element", "selector", selector)
	if err := b.page.Click(selector, b.timeouts.Action); err != nil {
		return errs.Wrap(errs.Action, "click "+selector, err)
	}
	return nil
}

// FillInput waits for the input and replaces its value. Values bound for
// sensitive-looking fields are redacted in the log, never in the DOM.
func (b *BasePage) FillInput(selector, value string) error {
	b.log.Info("filling input",
		"selector", selector,
		"value", logutil.RedactFillValue(selector, logutil.TruncateForLog(value, 120)),
	)
	if err := b.page.Fill(selector, value, b.timeouts.Action); err != nil {
		return errs.Wrap(errs.Action, "fill "+selector, err)
	}
	return nil
}

// GetTextContent returns the text content of the selector's first match.
func (b *BasePage) GetTextContent(selector string) (string, error) {
	text, err := b.page.Text(selector, b.timeouts.Action)
	if err != nil {
		return "", errs.Wrap(errs.Action, "get text of "+selector, err)
	}
	return text, nil
}

// GetPageTitle returns the document title.
func (b *BasePage) GetPageTitle() (string, error) {
	title, err := b.page.Title()
	if err != nil {
		return "", errs.Wrap(errs.Action, "get page title", err)
	}
	return title, nil
}

// GetCurrentURL returns the page's current URL.
func (b *BasePage) GetCurrentURL() string {
	return b.page.URL()
}

// IsElementVisible probes for the selector within the standard probe budget.
// Absence within budget is false, never an error.
func (b *BasePage) IsElementVisible(selector string) bool {
	return b.IsElementVisibleWithin(selector, b.timeouts.Probe)
}

// IsElementVisibleWithin probes for the selector within an explicit budget.
func (b *BasePage) IsElementVisibleWithin(selector string, timeout time.Duration) bool {
	if err := b.page.WaitVisible(selector, timeout); err != nil {
		b.log.Debug("probe negative", "selector", selector, "timeout", timeout.String())
		return false
	}
	return true
}

// TakeScreenshot captures a full-page screenshot named
// "<name>-<timestamp>.png" under the configured screenshot directory,
// mirrors it to the artifact bucket when one is configured, and returns the
// local path.
func (b *BasePage) TakeScreenshot(name string) (string, error) {
	path, err := b.store.NextScreenshotPath(name)
	if err != nil {
		return "", err
	}
	if err := b.page.Screenshot(path); err != nil {
		return "", errs.Wrap(errs.Action, "capture screenshot "+name, err)
	}
	b.log.Info("captured screenshot", "name", name, "path", path)

	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()
	if _, err := b.store.Mirror(ctx, path); err != nil {
		// Upload failure should not fail the capture; the local file exists.
		b.log.Warn("screenshot mirror failed", "path", path, "error", err)
	}
	return path, nil
}

// VisibilityReport is a snapshot of one aggregate visibility pass.
// AllVisible is the AND of every constituent probe.
type VisibilityReport struct {
	AllVisible bool
	Total      int
	Visible    int
	Missing    []string
}

// namedLocator pairs a human-readable element name with its selector.
type namedLocator struct {
	name     string
	selector string
}

// probeAll runs the probes sequentially and folds them with logical AND.
func (b *BasePage) probeAll(locators []namedLocator) VisibilityReport {
	report := VisibilityReport{AllVisible: true, Total: len(locators)}
	for _, loc := range locators {
		if b.IsElementVisible(loc.selector) {
			report.Visible++
			continue
		}
		report.AllVisible = false
		report.Missing = append(report.Missing, loc.name)
		b.log.Warn("element not visible", "element", loc.name, "selector", loc.selector)
	}
	return report
}
