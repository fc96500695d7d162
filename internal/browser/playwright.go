package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options configures a browser launch.
type Options struct {
	Headless bool
	SlowMo   time.Duration
}

// Engine owns the Playwright runtime and a Chromium instance. One Engine
// serves any number of pages; Close tears the whole stack down.
type Engine struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Launch starts Playwright and a Chromium browser.
func Launch(opts Options) (*Engine, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	if opts.SlowMo > 0 {
		launchOpts.SlowMo = playwright.Float(float64(opts.SlowMo.Milliseconds()))
	}

	b, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	return &Engine{pw: pw, browser: b}, nil
}

// NewPage opens a fresh tab.
func (e *Engine) NewPage() (Page, error) {
	p, err := e.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return &playwrightPage{page: p}, nil
}

// Close shuts down the browser and the Playwright runtime.
func (e *Engine) Close() {
	if e.browser != nil {
		_ = e.browser.Close()
	}
	if e.pw != nil {
		_ = e.pw.Stop()
	}
}

// playwrightPage adapts a playwright.Page to the Page interface.
type playwrightPage struct {
	page playwright.Page
}

func ms(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}

func (p *playwrightPage) Goto(url string, timeout time.Duration) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   ms(timeout),
	})
	return err
}

func (p *playwrightPage) Title() (string, error) {
	return p.page.Title()
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) WaitVisible(selector string, timeout time.Duration) error {
	return p.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: ms(timeout),
	})
}

func (p *playwrightPage) Click(selector string, timeout time.Duration) error {
	return p.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: ms(timeout),
	})
}

func (p *playwrightPage) Fill(selector, value string, timeout time.Duration) error {
	return p.page.Locator(selector).First().Fill(value, playwright.LocatorFillOptions{
		Timeout: ms(timeout),
	})
}

func (p *playwrightPage) Text(selector string, timeout time.Duration) (string, error) {
	return p.page.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: ms(timeout),
	})
}

func (p *playwrightPage) InputValue(selector string, timeout time.Duration) (string, error) {
	return p.page.Locator(selector).First().InputValue(playwright.LocatorInputValueOptions{
		Timeout: ms(timeout),
	})
}

func (p *playwrightPage) Count(selector string) (int, error) {
	return p.page.Locator(selector).Count()
}

func (p *playwrightPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}
