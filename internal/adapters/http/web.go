// Package web serves the admin UI: server-rendered pages over the league
// API, with per-session view state (dialogs, drawer, auth overlay) and
// locally patched list caches.
package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

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
	"leaguedesk/internal/adapters/http/middleware"
	"leaguedesk/internal/adapters/http/perf"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/domain/conference"
	"leaguedesk/internal/domain/division"
	"leaguedesk/internal/domain/game"
	"leaguedesk/internal/domain/league"
	"leaguedesk/internal/domain/news"
	"leaguedesk/internal/domain/player"
	"leaguedesk/internal/domain/season"
	"leaguedesk/internal/domain/team"
	"leaguedesk/internal/domain/venue"
	"leaguedesk/internal/session"
)

// App holds every dependency the handlers need. Wired once in main; tests
// construct it with fakes.
type App struct {
	Sessions  *session.Manager
	Refresher session.Refresher

	Accounts    accountAPI.Client
	Leagues     leagueAPI.Client
	Conferences conferenceAPI.Client
	Divisions   divisionAPI.Client
	Teams       teamAPI.Client
	Players     playerAPI.Client
	Seasons     seasonAPI.Client
	Games       gameAPI.Client
	Venues      venueAPI.Client
	News        newsAPI.Client

	LeagueCache      *listcache.Collection[league.League]
	ConferenceCaches *listcache.Registry[conference.Conference]
	DivisionCaches   *listcache.Registry[division.Division]
	TeamCaches       *listcache.Registry[team.Team]
	PlayerCaches     *listcache.Registry[player.Player]
	SeasonCaches     *listcache.Registry[season.Season]
	GameCaches       *listcache.Registry[game.Game]
	VenueCaches      *listcache.Registry[venue.Venue]
	NewsCaches       *listcache.Registry[news.Post]

	Email      email.Sender
	FeedbackTo string

	Collector *perf.Collector

	Now        func() time.Time
	GenerateID func() string
}

// NewCaches fills the App's cache fields with empty collections.
func (app *App) NewCaches() {
	app.LeagueCache = listcache.New[league.League]()
	app.ConferenceCaches = listcache.NewRegistry[conference.Conference]()
	app.DivisionCaches = listcache.NewRegistry[division.Division]()
	app.TeamCaches = listcache.NewRegistry[team.Team]()
	app.PlayerCaches = listcache.NewRegistry[player.Player]()
	app.SeasonCaches = listcache.NewRegistry[season.Season]()
	app.GameCaches = listcache.NewRegistry[game.Game]()
	app.VenueCaches = listcache.NewRegistry[venue.Venue]()
	app.NewsCaches = listcache.NewRegistry[news.Post]()
}

// Deps builders keep handler bodies short.

func (app *App) leagueDeps() orchestrators.LeagueDeps {
	return orchestrators.LeagueDeps{Leagues: app.Leagues, Cache: app.LeagueCache, Now: app.Now}
}

func (app *App) conferenceDeps() orchestrators.ConferenceDeps {
	return orchestrators.ConferenceDeps{Conferences: app.Conferences, Caches: app.ConferenceCaches, Now: app.Now}
}

func (app *App) divisionDeps() orchestrators.DivisionDeps {
	return orchestrators.DivisionDeps{Divisions: app.Divisions, Caches: app.DivisionCaches, Now: app.Now}
}

func (app *App) teamDeps() orchestrators.TeamDeps {
	return orchestrators.TeamDeps{Teams: app.Teams, Caches: app.TeamCaches, Now: app.Now}
}

func (app *App) playerDeps() orchestrators.PlayerDeps {
	return orchestrators.PlayerDeps{Players: app.Players, Caches: app.PlayerCaches, Now: app.Now}
}

func (app *App) seasonDeps() orchestrators.SeasonDeps {
	return orchestrators.SeasonDeps{Seasons: app.Seasons, Caches: app.SeasonCaches, Now: app.Now}
}

func (app *App) gameDeps() orchestrators.GameDeps {
	return orchestrators.GameDeps{Games: app.Games, Caches: app.GameCaches, Now: app.Now}
}

func (app *App) venueDeps() orchestrators.VenueDeps {
	return orchestrators.VenueDeps{Venues: app.Venues, Caches: app.VenueCaches, Now: app.Now}
}

func (app *App) newsDeps() orchestrators.NewsDeps {
	return orchestrators.NewsDeps{News: app.News, Caches: app.NewsCaches, Now: app.Now}
}

// apiCtx returns the request context carrying the session's bearer token for
// upstream calls.
func apiCtx(r *http.Request, st *session.State) context.Context {
	return api.WithBearer(r.Context(), st.AccessToken())
}

// loadCSRFKey reads the CSRF secret from LEAGUEDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("LEAGUEDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("LEAGUEDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("LEAGUEDESK_ENV") == "production" {
		log.Fatal("LEAGUEDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (forms break across restarts). Set LEAGUEDESK_CSRF_KEY for production.")
	return key
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, app *App, collector *perf.Collector) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	app.registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Session -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Session(app.Sessions, app.Refresher),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
