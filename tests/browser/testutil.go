// Package browser drives the real page objects through Playwright against an
// in-process fixture rendition of the benefits portal. Tests skip when
// Playwright or Chromium is not installed.
package browser

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kuitang/benefits-e2e/internal/artifacts"
	enginepkg "github.com/kuitang/benefits-e2e/internal/browser"
	"github.com/kuitang/benefits-e2e/internal/pages"
)

const navTimeout = 10 * time.Second

var (
	fixtureMu     sync.Mutex
	sharedFixture *PortalTestEnv
)

// PortalTestEnv serves the fixture portal and owns one shared Chromium
// instance for the whole test binary.
type PortalTestEnv struct {
	Server  *httptest.Server
	BaseURL string

	engine   *enginepkg.Engine
	engineMu sync.Mutex
}

// SetupPortalTestEnv returns the shared fixture, creating it on first use.
func SetupPortalTestEnv(t *testing.T) *PortalTestEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("browser tests skipped in short mode")
	}

	fixtureMu.Lock()
	defer fixtureMu.Unlock()

	if sharedFixture == nil {
		server := httptest.NewServer(portalHandler())
		sharedFixture = &PortalTestEnv{Server: server, BaseURL: server.URL}
	}
	return sharedFixture
}

// InitBrowser launches Chromium once per binary. Skips the test if
// Playwright is unavailable.
func (env *PortalTestEnv) InitBrowser(t *testing.T) {
	t.Helper()

	env.engineMu.Lock()
	defer env.engineMu.Unlock()

	if env.engine != nil {
		return
	}
	engine, err := enginepkg.Launch(enginepkg.Options{Headless: true})
	if err != nil {
		t.Skip("Playwright not available:", err)
	}
	env.engine = engine
}

// OpenPortal opens a fresh tab on the fixture portal at the given path
// ("" or "/" for the default page) and navigates to it.
func (env *PortalTestEnv) OpenPortal(t *testing.T, path string) enginepkg.Page {
	t.Helper()

	env.InitBrowser(t)
	page, err := env.engine.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	t.Cleanup(func() { _ = page.Close() })

	if err := page.Goto(env.BaseURL+path, navTimeout); err != nil {
		t.Fatalf("could not open fixture portal at %q: %v", path, err)
	}
	return page
}

// testStore returns a local-only artifact store rooted in the test temp dir.
func testStore(t *testing.T) *artifacts.Store {
	t.Helper()
	return artifacts.NewStore(t.TempDir(), nil, "test-run")
}

// testTimeouts keeps negative probes fast; a missing element costs one probe
// budget, not the production 2s.
func testTimeouts() pages.Timeouts {
	return pages.Timeouts{
		Probe:  500 * time.Millisecond,
		Action: 5 * time.Second,
		Nav:    navTimeout,
	}
}

func openHeader(t *testing.T, env *PortalTestEnv, path string) *pages.NavigationHeaderPage {
	t.Helper()
	return pages.NewNavigationHeaderPage(env.OpenPortal(t, path), testStore(t), testTimeouts())
}

func openLibrary(t *testing.T, env *PortalTestEnv, path string) *pages.SongLibraryPage {
	t.Helper()
	return pages.NewSongLibraryPage(env.OpenPortal(t, path), testStore(t), testTimeouts())
}
