package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"leaguedesk/internal/adapters/api"
	"leaguedesk/internal/adapters/http/middleware"
	"leaguedesk/internal/session"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// templatesDir is relative to the process working directory (the repo root
// in production). Tests run from this package directory and point it at the
// local templates folder.
var templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// renderTemplate renders a page inside layout.html. Session-derived fields
// (identity, overlay, drawer, flashes, open dialogs) are injected into every
// render so the layout can show them.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	renderTemplateStatus(w, r, templateName, data, http.StatusOK)
}

func renderTemplateStatus(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any, status int) {
	st, ok := middleware.SessionFromContext(r.Context())

	identity := session.Identity{}
	overlay := session.AuthOverlay{Tab: session.TabLogin}
	drawerOpen := false
	var flashes []session.Flash
	dialogOpen := func(kind, entityID string) bool { return false }
	if ok {
		identity = st.Identity()
		overlay = st.Overlay()
		drawerOpen = st.DrawerOpen()
		flashes = st.TakeFlashes()
		dialogOpen = func(kind, entityID string) bool {
			return st.Dialogs.IsOpen(session.DialogTarget{Kind: session.DialogKind(kind), EntityID: entityID})
		}
	}

	funcMap := template.FuncMap{
		"isLoggedIn":   func() bool { return identity.UserID != "" },
		"currentEmail": func() string { return identity.Email },
		"currentUser":  func() string { return identity.UserID },
		"csrfToken":    func() string { return csrf.Token(r) },
		"dialogOpen":   dialogOpen,
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"dict": func(pairs ...any) map[string]any {
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					continue
				}
				m[key] = pairs[i+1]
			}
			return m
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2 Jan 2006")
		},
		"formatDateTime": func(t time.Time) string {
			if t.IsZero() {
				return "TBD"
			}
			return t.Format("Mon 2 Jan 2006, 3:04 PM")
		},
		"paginationQuery": func(page int, search string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if search != "" {
				q += "&q=" + search
			}
			if perPage > 0 {
				q += fmt.Sprintf("&per_page=%d", perPage)
			}
			return template.URL(q)
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Identity"] = identity
	data["Overlay"] = overlay
	data["DrawerOpen"] = drawerOpen
	data["Flashes"] = flashes

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("render_failed", "template", templateName, "error", err)
	}
}

// renderNotFound shows the not-found page with a 404 status.
func renderNotFound(w http.ResponseWriter, r *http.Request) {
	renderTemplateStatus(w, r, "not_found.html", map[string]any{
		"Path": r.URL.Path,
	}, http.StatusNotFound)
}

// writeJSON encodes result for non-HTML clients.
func writeJSON(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// failPage maps an upstream read error to the right page: 404s render the
// not-found fallback, anything else is an internal error.
func failPage(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, api.ErrNotFound) {
		renderNotFound(w, r)
		return
	}
	internalError(w, err)
}

// failForm maps a mutation error to a flash on the session and redirects
// back. Validation errors and server rejections read the same to the user:
// the form's change did not stick, and here is why.
func failForm(w http.ResponseWriter, r *http.Request, st *session.State, err error, backTo string) {
	if errors.Is(err, api.ErrNotFound) {
		renderNotFound(w, r)
		return
	}
	st.AddFlash("error", err.Error())
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// parseForm rejects malformed bodies before any field access.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return false
	}
	return true
}

// sessionOrError extracts the session state; the middleware always sets it,
// so a miss is a programming error.
func sessionOrError(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	st, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		internalError(w, errors.New("no session in context"))
		return nil, false
	}
	return st, true
}
