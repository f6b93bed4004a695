package browser_test

import (
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"leaguedesk/internal/adapters/api"
	accountAPI "leaguedesk/internal/adapters/api/account"
	conferenceAPI "leaguedesk/internal/adapters/api/conference"
	divisionAPI "leaguedesk/internal/adapters/api/division"
	gameAPI "leaguedesk/internal/adapters/api/game"
	leagueAPI "leaguedesk/internal/adapters/api/league"
	newsAPI "leaguedesk/internal/adapters/api/news"
	playerAPI "leaguedesk/internal/adapters/api/player"
	seasonAPI "leaguedesk/internal/adapters/api/season"
	teamAPI "leaguedesk/internal/adapters/api/team"
	venueAPI "leaguedesk/internal/adapters/api/venue"
	"leaguedesk/internal/adapters/email"
	web "leaguedesk/internal/adapters/http"
	"leaguedesk/internal/adapters/http/middleware"
	"leaguedesk/internal/adapters/http/perf"
	"leaguedesk/internal/adapters/storage"
	sessionStore "leaguedesk/internal/adapters/storage/session"
	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/session"
	"leaguedesk/internal/stubapi"
)

// testApp holds the running servers and Playwright handles.
type testApp struct {
	BaseURL string
	APIURL  string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	App     *web.App
}

// newTestApp starts the stub league API and a fully wired app server over a
// temp SQLite session database, then launches a headless browser.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	// Stub league API
	stub := stubapi.NewServer()
	stub.Seed()
	apiSrv := httptest.NewServer(stub.Routes())
	t.Cleanup(apiSrv.Close)

	// Session database in a temp dir
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init test DB: %v", err)
	}

	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)
	sessions := session.NewManager(sessionStore.NewSQLiteStore(timedDB))

	base := api.NewClient(apiSrv.URL, api.WithObserver(collector))
	accounts := accountAPI.NewHTTPClient(base)

	app := &web.App{
		Sessions:    sessions,
		Refresher:   orchestrators.AccountRefresher{Accounts: accounts},
		Accounts:    accounts,
		Leagues:     leagueAPI.NewHTTPClient(base),
		Conferences: conferenceAPI.NewHTTPClient(base),
		Divisions:   divisionAPI.NewHTTPClient(base),
		Teams:       teamAPI.NewHTTPClient(base),
		Players:     playerAPI.NewHTTPClient(base),
		Seasons:     seasonAPI.NewHTTPClient(base),
		Games:       gameAPI.NewHTTPClient(base),
		Venues:      venueAPI.NewHTTPClient(base),
		News:        newsAPI.NewHTTPClient(base),
		Email:       email.NewNoopSender(),
		FeedbackTo:  "ops@leaguedesk.test",
		Collector:   collector,
		Now:         time.Now,
		GenerateID:  uuid.NewString,
	}
	app.NewCaches()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)
	web.RateLimitPerSecond = 1000

	mux := web.NewMux("static", app, collector)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	ta := &testApp{
		BaseURL: baseURL,
		APIURL:  apiSrv.URL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		App:     app,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return ta
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login opens the auth overlay and signs in as the seeded admin.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/?auth=login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator(".overlay input[name=email]").Fill(stubapi.SeedAdminEmail); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator(".overlay input[name=password]").Fill(stubapi.SeedAdminPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator(".overlay button:has-text('Sign in')").Click(); err != nil {
		t.Fatalf("failed to submit login: %v", err)
	}
	if err := page.Locator(".topbar-actions >> text=" + stubapi.SeedAdminEmail).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not land signed in: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
