package browser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// expectHeading navigates to path and waits for a heading with the given text.
func expectHeading(t *testing.T, app *testApp, page playwright.Page, path, heading string) {
	t.Helper()
	if _, err := page.Goto(app.BaseURL + path); err != nil {
		t.Fatalf("failed to navigate to %s: %v", path, err)
	}
	err := page.Locator(fmt.Sprintf("h1:has-text('%s')", heading)).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(10000),
	})
	if err != nil {
		t.Errorf("%s: heading %q never rendered: %v", path, heading, err)
	}
}

// openSeededLeague clicks through to the demo league and returns its path.
func openSeededLeague(t *testing.T, app *testApp, page playwright.Page) string {
	t.Helper()
	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate home: %v", err)
	}
	if err := page.Locator("a.card-title:has-text('Harbour Basketball League')").Click(); err != nil {
		t.Fatalf("failed to open seeded league: %v", err)
	}
	if err := page.Locator("h1:has-text('Harbour Basketball League')").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("league page never rendered: %v", err)
	}
	return strings.TrimPrefix(page.URL(), app.BaseURL)
}

// TestSmoke_SeededLeaguePages walks every page of the seeded demo league.
func TestSmoke_SeededLeaguePages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)
	app.login(t, page)
	leaguePath := openSeededLeague(t, app, page)

	expectHeading(t, app, page, leaguePath+"/seasons", "Seasons")
	expectHeading(t, app, page, leaguePath+"/venues", "Venues")
	expectHeading(t, app, page, leaguePath+"/news", "News")
	expectHeading(t, app, page, "/account", "Account")

	// The seeded season's schedule is reachable from the Seasons page.
	if _, err := page.Goto(app.BaseURL + leaguePath + "/seasons"); err != nil {
		t.Fatalf("failed to navigate to seasons: %v", err)
	}
	if err := page.Locator("a:has-text('2026 Winter')").Click(); err != nil {
		t.Fatalf("failed to open seeded season: %v", err)
	}
	if err := page.Locator("h1:has-text('2026 Winter schedule')").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Errorf("season schedule never rendered: %v", err)
	}
}

// TestSmoke_TeamRoster opens the seeded team's roster from the league page.
func TestSmoke_TeamRoster(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)
	app.login(t, page)
	openSeededLeague(t, app, page)

	if err := page.Locator("a:has-text('Gulls')").Click(); err != nil {
		t.Fatalf("failed to open seeded team: %v", err)
	}
	if err := page.Locator("h1:has-text('Gulls roster')").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("roster page never rendered: %v", err)
	}
	visible, err := page.Locator("text=Rangi Parata").IsVisible()
	if err != nil || !visible {
		t.Errorf("seeded player not on the roster (err=%v)", err)
	}
}

// TestSmoke_GuestSeesPublishedNews verifies public pages work without signing
// in and drafts stay hidden.
func TestSmoke_GuestSeesPublishedNews(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)
	leaguePath := openSeededLeague(t, app, page)

	expectHeading(t, app, page, leaguePath+"/news", "News")
	visible, err := page.Locator("h2:has-text('Your drafts')").IsVisible()
	if err != nil {
		t.Fatalf("failed to check drafts section: %v", err)
	}
	if visible {
		t.Error("guests must not see the drafts section")
	}
}
