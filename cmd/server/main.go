package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
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
	emailPkg "leaguedesk/internal/adapters/email"
	web "leaguedesk/internal/adapters/http"
	"leaguedesk/internal/adapters/http/perf"
	"leaguedesk/internal/adapters/storage"
	sessionStore "leaguedesk/internal/adapters/storage/session"
	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Local state is browser sessions only; league data lives behind the API.
	dbPath := envOrDefault("LEAGUEDESK_SESSION_DB", "leaguedesk.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	// Performance instrumentation: one collector times requests, upstream
	// API calls, and session-store queries.
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	sessions := session.NewManager(sessionStore.NewSQLiteStore(timedDB))

	// Upstream API clients share one base client.
	apiURL := envOrDefault("LEAGUEDESK_API_URL", "http://localhost:4000")
	base := api.NewClient(apiURL, api.WithObserver(collector))
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
		Collector:   collector,
		Now:         time.Now,
		GenerateID:  uuid.NewString,
	}
	app.NewCaches()

	// Configure email sender for operator feedback reports. The from
	// address lives in the sender; handlers never see it.
	resendKey := os.Getenv("LEAGUEDESK_RESEND_KEY")
	emailFrom := envOrDefault("LEAGUEDESK_RESEND_FROM", "LeagueDesk <noreply@leaguedesk.app>")
	app.FeedbackTo = envOrDefault("LEAGUEDESK_FEEDBACK_TO", "ops@leaguedesk.app")
	if resendKey != "" {
		app.Email = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		app.Email = emailPkg.NewNoopSender()
		if os.Getenv("LEAGUEDESK_ENV") == "production" {
			log.Println("WARNING: LEAGUEDESK_RESEND_KEY is not set; feedback email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop; set LEAGUEDESK_RESEND_KEY for real delivery)")
		}
	}

	// Purge expired session records hourly for the life of the process.
	go func() {
		for range time.Tick(time.Hour) {
			sessions.PurgeExpired(context.Background())
		}
	}()

	mux := web.NewMux("static", app, collector)

	addr := envOrDefault("LEAGUEDESK_ADDR", ":8080")
	log.Printf("LeagueDesk %s starting on %s (env=%s, api=%s)", version, addr, envOrDefault("LEAGUEDESK_ENV", "development"), apiURL)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
