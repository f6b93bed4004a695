// Package stubapi is an in-memory development backend implementing the
// league REST API the app talks to. It issues real HS256 access tokens and a
// refresh cookie, so the full auth flow works locally and in browser tests.
// Nothing survives a restart.
package stubapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeded accounts, for local development and browser tests.
const (
	SeedAdminEmail    = "admin@leaguedesk.test"
	SeedAdminPassword = "changeme123"
	SeedUserEmail     = "demo@leaguedesk.test"
	SeedUserPassword  = "demopass123"
)

const (
	refreshCookie  = "refresh_token"
	accessTokenTTL = 15 * time.Minute
)

var signingKey = []byte("stubapi-dev-secret")

type account struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
}

type league struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Abbrev      string    `json:"abbrev"`
	Sport       string    `json:"sport"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type conference struct {
	ID        string    `json:"id"`
	LeagueID  string    `json:"leagueId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type division struct {
	ID           string    `json:"id"`
	LeagueID     string    `json:"leagueId"`
	ConferenceID string    `json:"conferenceId"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type team struct {
	ID         string    `json:"id"`
	LeagueID   string    `json:"leagueId"`
	DivisionID string    `json:"divisionId"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Abbrev     string    `json:"abbrev"`
	LogoURL    string    `json:"logoUrl"`
	OwnerID    string    `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type player struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	HeightCm  int       `json:"heightCm"`
	WeightKg  int       `json:"weightKg"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type season struct {
	ID        string    `json:"id"`
	LeagueID  string    `json:"leagueId"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Current   bool      `json:"current"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type game struct {
	ID          string    `json:"id"`
	SeasonID    string    `json:"seasonId"`
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	VenueID     string    `json:"venueId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type venue struct {
	ID        string    `json:"id"`
	LeagueID  string    `json:"leagueId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type newsPost struct {
	ID          string    `json:"id"`
	LeagueID    string    `json:"leagueId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Status      string    `json:"status"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Server holds everything in memory behind one lock. Throughput does not
// matter here; predictability does.
type Server struct {
	mu          sync.Mutex
	accounts    map[string]*account // by id
	byEmail     map[string]*account
	refresh     map[string]string // refresh token -> account id
	leagues     map[string]*league
	conferences map[string]*conference
	divisions   map[string]*division
	teams       map[string]*team
	players     map[string]*player
	seasons     map[string]*season
	games       map[string]*game
	venues      map[string]*venue
	news        map[string]*newsPost
	order       []string // league ids in creation order
}

func NewServer() *Server {
	return &Server{
		accounts:    make(map[string]*account),
		byEmail:     make(map[string]*account),
		refresh:     make(map[string]string),
		leagues:     make(map[string]*league),
		conferences: make(map[string]*conference),
		divisions:   make(map[string]*division),
		teams:       make(map[string]*team),
		players:     make(map[string]*player),
		seasons:     make(map[string]*season),
		games:       make(map[string]*game),
		venues:      make(map[string]*venue),
		news:        make(map[string]*newsPost),
	}
}

// Seed creates the known accounts and a small demo league so the app has
// something to show on first boot.
func (s *Server) Seed() {
	admin := s.addAccount(SeedAdminEmail, SeedAdminPassword, "admin")
	s.addAccount(SeedUserEmail, SeedUserPassword, "user")

	now := time.Now().UTC()
	lg := &league{
		ID: uuid.NewString(), Name: "Harbour Basketball League", Abbrev: "HBL",
		Sport: "basketball", Description: "Demo league seeded by stubapi.",
		OwnerID: admin.ID, CreatedAt: now, UpdatedAt: now,
	}
	s.leagues[lg.ID] = lg
	s.order = append(s.order, lg.ID)

	conf := &conference{ID: uuid.NewString(), LeagueID: lg.ID, Name: "Northern", CreatedAt: now, UpdatedAt: now}
	s.conferences[conf.ID] = conf
	div := &division{ID: uuid.NewString(), LeagueID: lg.ID, ConferenceID: conf.ID, Name: "Division A", CreatedAt: now, UpdatedAt: now}
	s.divisions[div.ID] = div

	home := &team{ID: uuid.NewString(), LeagueID: lg.ID, DivisionID: div.ID, Name: "Gulls", City: "Bayview", Abbrev: "BAY", OwnerID: admin.ID, CreatedAt: now, UpdatedAt: now}
	away := &team{ID: uuid.NewString(), LeagueID: lg.ID, DivisionID: div.ID, Name: "Harriers", City: "Eastport", Abbrev: "EAS", OwnerID: admin.ID, CreatedAt: now, UpdatedAt: now}
	s.teams[home.ID] = home
	s.teams[away.ID] = away

	pl := &player{ID: uuid.NewString(), TeamID: home.ID, FirstName: "Rangi", LastName: "Parata", Number: 7, Position: "guard", HeightCm: 188, CreatedAt: now, UpdatedAt: now}
	s.players[pl.ID] = pl

	vn := &venue{ID: uuid.NewString(), LeagueID: lg.ID, Name: "Bayview Stadium", City: "Bayview", Capacity: 2400, CreatedAt: now, UpdatedAt: now}
	s.venues[vn.ID] = vn

	sn := &season{ID: uuid.NewString(), LeagueID: lg.ID, Name: "2026 Winter", StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 3, 0), Current: true, CreatedAt: now, UpdatedAt: now}
	s.seasons[sn.ID] = sn

	g := &game{ID: uuid.NewString(), SeasonID: sn.ID, HomeTeamID: home.ID, AwayTeamID: away.ID, VenueID: vn.ID, ScheduledAt: now.AddDate(0, 0, 7), Status: "scheduled", CreatedAt: now, UpdatedAt: now}
	s.games[g.ID] = g

	post := &newsPost{
		ID: uuid.NewString(), LeagueID: lg.ID, Title: "Season tip-off",
		Body: "The **2026 Winter** season starts next week.", Status: "published",
		AuthorID: admin.ID, AuthorName: admin.Email, PublishedAt: now, CreatedAt: now, UpdatedAt: now,
	}
	s.news[post.ID] = post
}

func (s *Server) addAccount(email, password, role string) *account {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	a := &account{ID: uuid.NewString(), Email: email, PasswordHash: hash, Role: role, CreatedAt: time.Now().UTC()}
	s.accounts[a.ID] = a
	s.byEmail[a.Email] = a
	return a
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /refresh-token", s.handleRefresh)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /account", s.handleAccount)

	mux.HandleFunc("GET /leagues", s.handleListLeagues)
	mux.HandleFunc("POST /leagues", s.handleCreateLeague)
	mux.HandleFunc("GET /leagues/{id}", s.handleGetLeague)
	mux.HandleFunc("PATCH /leagues/{id}", s.handleUpdateLeague)
	mux.HandleFunc("DELETE /leagues/{id}", s.handleDeleteLeague)

	mux.HandleFunc("GET /leagues/{id}/conferences", s.handleListConferences)
	mux.HandleFunc("POST /leagues/{id}/conferences", s.handleCreateConference)
	mux.HandleFunc("GET /leagues/{id}/conferences/{cid}", s.handleGetConference)
	mux.HandleFunc("PATCH /leagues/{id}/conferences/{cid}", s.handleUpdateConference)
	mux.HandleFunc("DELETE /leagues/{id}/conferences/{cid}", s.handleDeleteConference)

	mux.HandleFunc("GET /leagues/{id}/divisions", s.handleListDivisions)
	mux.HandleFunc("POST /leagues/{id}/divisions", s.handleCreateDivision)
	mux.HandleFunc("GET /leagues/{id}/divisions/{did}", s.handleGetDivision)
	mux.HandleFunc("PATCH /leagues/{id}/divisions/{did}", s.handleUpdateDivision)
	mux.HandleFunc("DELETE /leagues/{id}/divisions/{did}", s.handleDeleteDivision)

	mux.HandleFunc("GET /leagues/{id}/teams", s.handleListTeams)
	mux.HandleFunc("POST /leagues/{id}/teams", s.handleCreateTeam)
	mux.HandleFunc("GET /leagues/{id}/teams/{tid}", s.handleGetTeam)
	mux.HandleFunc("PATCH /leagues/{id}/teams/{tid}", s.handleUpdateTeam)
	mux.HandleFunc("DELETE /leagues/{id}/teams/{tid}", s.handleDeleteTeam)

	mux.HandleFunc("GET /teams/{id}/players", s.handleListPlayers)
	mux.HandleFunc("POST /teams/{id}/players", s.handleCreatePlayer)
	mux.HandleFunc("GET /teams/{id}/players/{pid}", s.handleGetPlayer)
	mux.HandleFunc("PATCH /teams/{id}/players/{pid}", s.handleUpdatePlayer)
	mux.HandleFunc("DELETE /teams/{id}/players/{pid}", s.handleDeletePlayer)

	mux.HandleFunc("GET /leagues/{id}/seasons", s.handleListSeasons)
	mux.HandleFunc("POST /leagues/{id}/seasons", s.handleCreateSeason)
	mux.HandleFunc("GET /leagues/{id}/seasons/{sid}", s.handleGetSeason)
	mux.HandleFunc("PATCH /leagues/{id}/seasons/{sid}", s.handleUpdateSeason)
	mux.HandleFunc("DELETE /leagues/{id}/seasons/{sid}", s.handleDeleteSeason)

	mux.HandleFunc("GET /seasons/{id}/games", s.handleListGames)
	mux.HandleFunc("POST /seasons/{id}/games", s.handleCreateGame)
	mux.HandleFunc("GET /seasons/{id}/games/{gid}", s.handleGetGame)
	mux.HandleFunc("PATCH /seasons/{id}/games/{gid}", s.handleUpdateGame)
	mux.HandleFunc("DELETE /seasons/{id}/games/{gid}", s.handleDeleteGame)
	mux.HandleFunc("PATCH /games/{id}/result", s.handleSaveResult)

	mux.HandleFunc("GET /leagues/{id}/venues", s.handleListVenues)
	mux.HandleFunc("POST /leagues/{id}/venues", s.handleCreateVenue)
	mux.HandleFunc("GET /leagues/{id}/venues/{vid}", s.handleGetVenue)
	mux.HandleFunc("PATCH /leagues/{id}/venues/{vid}", s.handleUpdateVenue)
	mux.HandleFunc("DELETE /leagues/{id}/venues/{vid}", s.handleDeleteVenue)

	mux.HandleFunc("GET /leagues/{id}/news", s.handleListNews)
	mux.HandleFunc("POST /leagues/{id}/news", s.handleCreateNews)
	mux.HandleFunc("GET /leagues/{id}/news/{nid}", s.handleGetNews)
	mux.HandleFunc("PATCH /leagues/{id}/news/{nid}", s.handleUpdateNews)
	mux.HandleFunc("DELETE /leagues/{id}/news/{nid}", s.handleDeleteNews)

	return mux
}

// --- auth ---

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		fail(w, http.StatusBadRequest, "malformed body")
		return
	}
	s.mu.Lock()
	acct := s.byEmail[strings.ToLower(strings.TrimSpace(creds.Email))]
	s.mu.Unlock()
	if acct == nil || bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(creds.Password)) != nil {
		fail(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	s.issueTokens(w, acct)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		fail(w, http.StatusBadRequest, "malformed body")
		return
	}
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || len(creds.Password) < 8 {
		fail(w, http.StatusBadRequest, "email required and password must be at least 8 characters")
		return
	}
	s.mu.Lock()
	if s.byEmail[email] != nil {
		s.mu.Unlock()
		fail(w, http.StatusConflict, "an account with this email already exists")
		return
	}
	acct := s.addAccount(email, creds.Password, "user")
	s.mu.Unlock()
	s.issueTokens(w, acct)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ck, err := r.Cookie(refreshCookie)
	if err != nil || ck.Value == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.mu.Lock()
	acctID, ok := s.refresh[ck.Value]
	var acct *account
	if ok {
		acct = s.accounts[acctID]
	}
	s.mu.Unlock()
	if acct == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.issueTokens(w, acct)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if ck, err := r.Cookie(refreshCookie); err == nil {
		s.mu.Lock()
		delete(s.refresh, ck.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: refreshCookie, Value: "", MaxAge: -1, HttpOnly: true, Path: "/"})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	acct := s.authed(r)
	if acct == nil {
		fail(w, http.StatusUnauthorized, "sign in required")
		return
	}
	reply(w, map[string]any{
		"id": acct.ID, "email": acct.Email, "role": acct.Role, "createdAt": acct.CreatedAt,
	})
}

func (s *Server) issueTokens(w http.ResponseWriter, acct *account) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   acct.ID,
		"email": acct.Email,
		"role":  acct.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		fail(w, http.StatusInternalServerError, "token signing failed")
		return
	}

	refreshToken := uuid.NewString()
	s.mu.Lock()
	s.refresh[refreshToken] = acct.ID
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name: refreshCookie, Value: refreshToken,
		HttpOnly: true, Path: "/", SameSite: http.SameSiteLaxMode,
		MaxAge: int((30 * 24 * time.Hour).Seconds()),
	})
	reply(w, map[string]string{"accessToken": access})
}

// authed verifies the bearer token and returns its account, or nil.
func (s *Server) authed(r *http.Request) *account {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil
	}
	sub, _ := claims["sub"].(string)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[sub]
}

// requireAuth rejects unauthenticated mutations.
func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) *account {
	acct := s.authed(r)
	if acct == nil {
		fail(w, http.StatusUnauthorized, "sign in required")
	}
	return acct
}

// --- leagues ---

type leaguePayload struct {
	Name        string `json:"name"`
	Abbrev      string `json:"abbrev"`
	Sport       string `json:"sport"`
	Description string `json:"description"`
}

func (s *Server) handleListLeagues(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]*league, 0, len(s.order))
	for _, id := range s.order {
		if lg, ok := s.leagues[id]; ok {
			out = append(out, lg)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateLeague(w http.ResponseWriter, r *http.Request) {
	acct := s.requireAuth(w, r)
	if acct == nil {
		return
	}
	var p leaguePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "league name is required")
		return
	}
	now := time.Now().UTC()
	lg := &league{
		ID: uuid.NewString(), Name: p.Name, Abbrev: p.Abbrev, Sport: p.Sport,
		Description: p.Description, OwnerID: acct.ID, CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	s.leagues[lg.ID] = lg
	s.order = append(s.order, lg.ID)
	s.mu.Unlock()
	reply(w, lg)
}

func (s *Server) handleGetLeague(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	lg := s.leagues[r.PathValue("id")]
	s.mu.Unlock()
	if lg == nil {
		fail(w, http.StatusNotFound, "league not found")
		return
	}
	reply(w, lg)
}

func (s *Server) handleUpdateLeague(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p leaguePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "league name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lg := s.leagues[r.PathValue("id")]
	if lg == nil {
		fail(w, http.StatusNotFound, "league not found")
		return
	}
	lg.Name, lg.Abbrev, lg.Sport, lg.Description = p.Name, p.Abbrev, p.Sport, p.Description
	lg.UpdatedAt = time.Now().UTC()
	reply(w, lg)
}

func (s *Server) handleDeleteLeague(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	id := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leagues[id] == nil {
		fail(w, http.StatusNotFound, "league not found")
		return
	}
	delete(s.leagues, id)
	w.WriteHeader(http.StatusNoContent)
}

// --- conferences ---

type namePayload struct {
	Name string `json:"name"`
}

func (s *Server) handleListConferences(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("id")
	s.mu.Lock()
	out := []*conference{}
	for _, c := range s.conferences {
		if c.LeagueID == leagueID {
			out = append(out, c)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateConference(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p namePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "conference name is required")
		return
	}
	now := time.Now().UTC()
	c := &conference{ID: uuid.NewString(), LeagueID: r.PathValue("id"), Name: p.Name, CreatedAt: now, UpdatedAt: now}
	s.mu.Lock()
	s.conferences[c.ID] = c
	s.mu.Unlock()
	reply(w, c)
}

func (s *Server) handleGetConference(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c := s.conferences[r.PathValue("cid")]
	s.mu.Unlock()
	if c == nil || c.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "conference not found")
		return
	}
	reply(w, c)
}

func (s *Server) handleUpdateConference(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p namePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "conference name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.conferences[r.PathValue("cid")]
	if c == nil || c.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "conference not found")
		return
	}
	c.Name = p.Name
	c.UpdatedAt = time.Now().UTC()
	reply(w, c)
}

func (s *Server) handleDeleteConference(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.conferences[r.PathValue("cid")]
	if c == nil || c.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "conference not found")
		return
	}
	delete(s.conferences, c.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- divisions ---

type divisionPayload struct {
	Name         string `json:"name"`
	ConferenceID string `json:"conferenceId"`
}

func (s *Server) handleListDivisions(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("id")
	s.mu.Lock()
	out := []*division{}
	for _, d := range s.divisions {
		if d.LeagueID == leagueID {
			out = append(out, d)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateDivision(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p divisionPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "division name is required")
		return
	}
	now := time.Now().UTC()
	d := &division{ID: uuid.NewString(), LeagueID: r.PathValue("id"), ConferenceID: p.ConferenceID, Name: p.Name, CreatedAt: now, UpdatedAt: now}
	s.mu.Lock()
	s.divisions[d.ID] = d
	s.mu.Unlock()
	reply(w, d)
}

func (s *Server) handleGetDivision(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := s.divisions[r.PathValue("did")]
	s.mu.Unlock()
	if d == nil || d.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "division not found")
		return
	}
	reply(w, d)
}

func (s *Server) handleUpdateDivision(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p divisionPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "division name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.divisions[r.PathValue("did")]
	if d == nil || d.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "division not found")
		return
	}
	d.Name, d.ConferenceID = p.Name, p.ConferenceID
	d.UpdatedAt = time.Now().UTC()
	reply(w, d)
}

func (s *Server) handleDeleteDivision(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.divisions[r.PathValue("did")]
	if d == nil || d.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "division not found")
		return
	}
	delete(s.divisions, d.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- teams ---

type teamPayload struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	Abbrev     string `json:"abbrev"`
	LogoURL    string `json:"logoUrl"`
	DivisionID string `json:"divisionId"`
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("id")
	s.mu.Lock()
	out := []*team{}
	for _, t := range s.teams {
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	acct := s.requireAuth(w, r)
	if acct == nil {
		return
	}
	var p teamPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "team name is required")
		return
	}
	now := time.Now().UTC()
	t := &team{
		ID: uuid.NewString(), LeagueID: r.PathValue("id"), DivisionID: p.DivisionID,
		Name: p.Name, City: p.City, Abbrev: p.Abbrev, LogoURL: p.LogoURL,
		OwnerID: acct.ID, CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	s.teams[t.ID] = t
	s.mu.Unlock()
	reply(w, t)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.teams[r.PathValue("tid")]
	s.mu.Unlock()
	if t == nil || t.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "team not found")
		return
	}
	reply(w, t)
}

func (s *Server) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p teamPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "team name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.teams[r.PathValue("tid")]
	if t == nil || t.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "team not found")
		return
	}
	t.Name, t.City, t.Abbrev, t.LogoURL, t.DivisionID = p.Name, p.City, p.Abbrev, p.LogoURL, p.DivisionID
	t.UpdatedAt = time.Now().UTC()
	reply(w, t)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.teams[r.PathValue("tid")]
	if t == nil || t.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "team not found")
		return
	}
	delete(s.teams, t.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- players ---

type playerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Number    int    `json:"number"`
	Position  string `json:"position"`
	HeightCm  int    `json:"heightCm"`
	WeightKg  int    `json:"weightKg"`
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("id")
	s.mu.Lock()
	out := []*player{}
	for _, p := range s.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p playerPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.FirstName == "" || p.LastName == "" {
		fail(w, http.StatusBadRequest, "player name is required")
		return
	}
	now := time.Now().UTC()
	pl := &player{
		ID: uuid.NewString(), TeamID: r.PathValue("id"),
		FirstName: p.FirstName, LastName: p.LastName, Number: p.Number,
		Position: p.Position, HeightCm: p.HeightCm, WeightKg: p.WeightKg,
		CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	s.players[pl.ID] = pl
	s.mu.Unlock()
	reply(w, pl)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	pl := s.players[r.PathValue("pid")]
	s.mu.Unlock()
	if pl == nil || pl.TeamID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "player not found")
		return
	}
	reply(w, pl)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p playerPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.FirstName == "" || p.LastName == "" {
		fail(w, http.StatusBadRequest, "player name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pl := s.players[r.PathValue("pid")]
	if pl == nil || pl.TeamID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "player not found")
		return
	}
	pl.FirstName, pl.LastName, pl.Number = p.FirstName, p.LastName, p.Number
	pl.Position, pl.HeightCm, pl.WeightKg = p.Position, p.HeightCm, p.WeightKg
	pl.UpdatedAt = time.Now().UTC()
	reply(w, pl)
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pl := s.players[r.PathValue("pid")]
	if pl == nil || pl.TeamID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "player not found")
		return
	}
	delete(s.players, pl.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- seasons ---

type seasonPayload struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Current   bool      `json:"current"`
}

func (s *Server) handleListSeasons(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("id")
	s.mu.Lock()
	out := []*season{}
	for _, sn := range s.seasons {
		if sn.LeagueID == leagueID {
			out = append(out, sn)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p seasonPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "season name is required")
		return
	}
	now := time.Now().UTC()
	sn := &season{
		ID: uuid.NewString(), LeagueID: r.PathValue("id"), Name: p.Name,
		StartDate: p.StartDate, EndDate: p.EndDate, Current: p.Current,
		CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	if sn.Current {
		s.demoteCurrentLocked(sn.LeagueID)
	}
	s.seasons[sn.ID] = sn
	s.mu.Unlock()
	reply(w, sn)
}

func (s *Server) handleGetSeason(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sn := s.seasons[r.PathValue("sid")]
	s.mu.Unlock()
	if sn == nil || sn.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "season not found")
		return
	}
	reply(w, sn)
}

func (s *Server) handleUpdateSeason(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p seasonPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "season name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sn := s.seasons[r.PathValue("sid")]
	if sn == nil || sn.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "season not found")
		return
	}
	if p.Current && !sn.Current {
		s.demoteCurrentLocked(sn.LeagueID)
	}
	sn.Name, sn.StartDate, sn.EndDate, sn.Current = p.Name, p.StartDate, p.EndDate, p.Current
	sn.UpdatedAt = time.Now().UTC()
	reply(w, sn)
}

// demoteCurrentLocked clears the current flag on every season of the league.
// At most one season per league is current.
func (s *Server) demoteCurrentLocked(leagueID string) {
	for _, sn := range s.seasons {
		if sn.LeagueID == leagueID && sn.Current {
			sn.Current = false
			sn.UpdatedAt = time.Now().UTC()
		}
	}
}

func (s *Server) handleDeleteSeason(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sn := s.seasons[r.PathValue("sid")]
	if sn == nil || sn.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "season not found")
		return
	}
	delete(s.seasons, sn.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- games ---

type gamePayload struct {
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	VenueID     string    `json:"venueId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	seasonID := r.PathValue("id")
	s.mu.Lock()
	out := []*game{}
	for _, g := range s.games {
		if g.SeasonID == seasonID {
			out = append(out, g)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p gamePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		fail(w, http.StatusBadRequest, "malformed body")
		return
	}
	if p.HomeTeamID == "" || p.AwayTeamID == "" || p.HomeTeamID == p.AwayTeamID {
		fail(w, http.StatusBadRequest, "home and away teams must be set and differ")
		return
	}
	now := time.Now().UTC()
	status := p.Status
	if status == "" {
		status = "scheduled"
	}
	g := &game{
		ID: uuid.NewString(), SeasonID: r.PathValue("id"),
		HomeTeamID: p.HomeTeamID, AwayTeamID: p.AwayTeamID, VenueID: p.VenueID,
		ScheduledAt: p.ScheduledAt, Status: status, CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	s.games[g.ID] = g
	s.mu.Unlock()
	reply(w, g)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.games[r.PathValue("gid")]
	s.mu.Unlock()
	if g == nil || g.SeasonID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "game not found")
		return
	}
	reply(w, g)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p gamePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		fail(w, http.StatusBadRequest, "malformed body")
		return
	}
	if p.HomeTeamID != "" && p.HomeTeamID == p.AwayTeamID {
		fail(w, http.StatusBadRequest, "home and away teams must differ")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.games[r.PathValue("gid")]
	if g == nil || g.SeasonID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "game not found")
		return
	}
	g.HomeTeamID, g.AwayTeamID, g.VenueID, g.ScheduledAt = p.HomeTeamID, p.AwayTeamID, p.VenueID, p.ScheduledAt
	if p.Status != "" {
		g.Status = p.Status
	}
	g.UpdatedAt = time.Now().UTC()
	reply(w, g)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.games[r.PathValue("gid")]
	if g == nil || g.SeasonID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "game not found")
		return
	}
	delete(s.games, g.ID)
	w.WriteHeader(http.StatusNoContent)
}

type resultPayload struct {
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}

func (s *Server) handleSaveResult(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p resultPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.HomeScore < 0 || p.AwayScore < 0 {
		fail(w, http.StatusBadRequest, "scores must be non-negative")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.games[r.PathValue("id")]
	if g == nil {
		fail(w, http.StatusNotFound, "game not found")
		return
	}
	g.HomeScore, g.AwayScore, g.Status = p.HomeScore, p.AwayScore, "final"
	g.UpdatedAt = time.Now().UTC()
	reply(w, g)
}

// --- venues ---

type venuePayload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("id")
	s.mu.Lock()
	out := []*venue{}
	for _, v := range s.venues {
		if v.LeagueID == leagueID {
			out = append(out, v)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p venuePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "venue name is required")
		return
	}
	now := time.Now().UTC()
	v := &venue{
		ID: uuid.NewString(), LeagueID: r.PathValue("id"), Name: p.Name,
		Address: p.Address, City: p.City, Capacity: p.Capacity,
		CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	s.venues[v.ID] = v
	s.mu.Unlock()
	reply(w, v)
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v := s.venues[r.PathValue("vid")]
	s.mu.Unlock()
	if v == nil || v.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "venue not found")
		return
	}
	reply(w, v)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p venuePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		fail(w, http.StatusBadRequest, "venue name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.venues[r.PathValue("vid")]
	if v == nil || v.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "venue not found")
		return
	}
	v.Name, v.Address, v.City, v.Capacity = p.Name, p.Address, p.City, p.Capacity
	v.UpdatedAt = time.Now().UTC()
	reply(w, v)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.venues[r.PathValue("vid")]
	if v == nil || v.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "venue not found")
		return
	}
	delete(s.venues, v.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- news ---

type newsPayload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("id")
	s.mu.Lock()
	out := []*newsPost{}
	for _, n := range s.news {
		if n.LeagueID == leagueID {
			out = append(out, n)
		}
	}
	s.mu.Unlock()
	reply(w, out)
}

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	acct := s.requireAuth(w, r)
	if acct == nil {
		return
	}
	var p newsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Title == "" {
		fail(w, http.StatusBadRequest, "post title is required")
		return
	}
	now := time.Now().UTC()
	status := p.Status
	if status == "" {
		status = "draft"
	}
	n := &newsPost{
		ID: uuid.NewString(), LeagueID: r.PathValue("id"), Title: p.Title,
		Body: p.Body, Status: status, AuthorID: acct.ID, AuthorName: acct.Email,
		CreatedAt: now, UpdatedAt: now,
	}
	if status == "published" {
		n.PublishedAt = now
	}
	s.mu.Lock()
	s.news[n.ID] = n
	s.mu.Unlock()
	reply(w, n)
}

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := s.news[r.PathValue("nid")]
	s.mu.Unlock()
	if n == nil || n.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "post not found")
		return
	}
	reply(w, n)
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var p newsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Title == "" {
		fail(w, http.StatusBadRequest, "post title is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.news[r.PathValue("nid")]
	if n == nil || n.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "post not found")
		return
	}
	// First transition to published stamps PublishedAt.
	if p.Status == "published" && n.Status != "published" {
		n.PublishedAt = time.Now().UTC()
	}
	n.Title, n.Body = p.Title, p.Body
	if p.Status != "" {
		n.Status = p.Status
	}
	n.UpdatedAt = time.Now().UTC()
	reply(w, n)
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.news[r.PathValue("nid")]
	if n == nil || n.LeagueID != r.PathValue("id") {
		fail(w, http.StatusNotFound, "post not found")
		return
	}
	delete(s.news, n.ID)
	w.WriteHeader(http.StatusNoContent)
}

// --- plumbing ---

func reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: %v", err)
	}
}

func fail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
