package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/redisboard/redisboard/internal/dashboard"
	"github.com/redisboard/redisboard/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"formatTTL":    dashboard.FormatTTL,
	"formatTiming": dashboard.FormatTiming,
}).ParseFS(templateFS, "templates/*.html"))

type dashboardPage struct {
	Username string
	Entries  []dashboard.Entry
	Timings  dashboard.Timings
}

// Dashboard renders the key/value listing. It runs behind the
// session gate; the loader itself degrades on store trouble, so the
// page renders in all cases.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	entries, timings := h.loader.Load(r.Context())

	h.renderPage(w, r, "dashboard.html", dashboardPage{
		Username: username,
		Entries:  entries,
		Timings:  timings,
	})
}

// LoginPage renders the credential form.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "login.html", nil)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "template render failed",
			slog.String("template", name), slog.Any("error", err))
	}
}
