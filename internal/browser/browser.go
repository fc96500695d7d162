// Package browser defines the minimal page-driver capability set the page
// objects are written against, plus the Playwright-backed implementation.
//
// Page objects never talk to Playwright directly; they hold a Page. That
// keeps them unit-testable against a fake DOM driver and keeps all engine
// detail in one place.
package browser

import "time"

// Page is a live browser tab. Selectors resolve lazily against the DOM on
// every call; nothing is cached across operations.
//
// Every bounded wait owns its timeout. A wait that runs out of budget
// returns an error; the caller decides whether that is a failure (actions)
// or a negative probe result (visibility checks).
type Page interface {
	// Goto navigates to the URL and waits for DOMContentLoaded.
	Goto(url string, timeout time.Duration) error
	// Title returns the document title.
	Title() (string, error)
	// URL returns the page's current URL.
	URL() string
	// WaitVisible waits until the first match for selector is visible.
	WaitVisible(selector string, timeout time.Duration) error
	// Click waits for the first match and clicks it.
	Click(selector string, timeout time.Duration) error
	// Fill waits for the first match and replaces its value.
	Fill(selector, value string, timeout time.Duration) error
	// Text returns the text content of the first match.
	Text(selector string, timeout time.Duration) (string, error)
	// InputValue returns the current value of the first matching input.
	InputValue(selector string, timeout time.Duration) (string, error)
	// Count returns the number of elements currently matching selector.
	Count(selector string) (int, error)
	// Screenshot writes a full-page PNG to path.
	Screenshot(path string) error
	// Close releases the tab. Owned by whoever created the page, never
	// by a page object.
	Close() error
}
