package web

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"

	"mspro-labs/vitrin/internal/cards"
	"mspro-labs/vitrin/internal/config"
	"mspro-labs/vitrin/internal/models"
	"mspro-labs/vitrin/internal/ui"
)

// Recommender is the slice of the recommendation client the server needs.
// Tests install fakes here.
type Recommender interface {
	Recommend(ctx context.Context, prompt string) (*models.Recommendation, error)
}

// Server renders the two-page UI: a home page with the wish form and a
// results page with the product card grid. It owns the single view state
// of this single-user demo.
type Server struct {
	cfg       *config.UIConfig
	rec       Recommender
	view      *ui.View
	projector *cards.Projector
	logger    *log.Logger

	homeTmpl    *template.Template
	resultsTmpl *template.Template
	mux         *http.ServeMux
}

// NewServer builds the handler tree and pre-parses the templates.
func NewServer(cfg *config.UIConfig, rec Recommender) (*Server, error) {
	// Pre-build templates SEPARATELY to avoid block collisions:
	// base (shared layout) + one page template each.
	base, err := template.New("base.html").ParseFS(Assets, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}

	homeTmpl, _ := base.Clone()
	homeTmpl, err = homeTmpl.ParseFS(Assets, "templates/home.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse home template: %w", err)
	}

	resultsTmpl, _ := base.Clone()
	resultsTmpl, err = resultsTmpl.ParseFS(Assets, "templates/results.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse results template: %w", err)
	}

	s := &Server{
		cfg:         cfg,
		rec:         rec,
		view:        &ui.View{},
		projector:   cards.NewProjector(cfg.Locale, cfg.PlaceholderImage),
		logger:      log.New(os.Stdout, "web: ", log.LstdFlags),
		homeTmpl:    homeTmpl,
		resultsTmpl: resultsTmpl,
	}

	staticFS, err := fs.Sub(Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux = mux

	return s, nil
}

// Handler exposes the route tree for an http.Server (and for tests).
func (s *Server) Handler() http.Handler {
	return s.mux
}

// pageData is what the templates see. Cards are already projected:
// formatted price, star fills, placeholder image.
type pageData struct {
	Title   string
	Query   string
	Loading bool
	Summary string
	Cards   []cards.View
}

func (s *Server) pageData(snap ui.Snapshot) pageData {
	return pageData{
		Title:   s.cfg.Title,
		Query:   snap.Query,
		Loading: snap.Loading(),
		Summary: snap.Summary,
		Cards:   s.projector.Project(snap.Cards),
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if err := s.homeTmpl.ExecuteTemplate(w, "base.html", s.pageData(s.view.Snapshot())); err != nil {
		s.logger.Printf("Template error: %v", err)
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	gen, query, ok := s.view.Submit(r.URL.Query().Get("q"))
	if !ok {
		// Whitespace-only wishes never reach the network layer.
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	rec, err := s.rec.Recommend(r.Context(), query)
	if err != nil {
		s.logger.Printf("Recommendation failed for %q: %v", query, err)
		s.view.Fail(gen)
	} else {
		s.view.Complete(gen, rec.Cards, rec.Summary)
	}

	// Render whatever is current; a superseding submission may have won.
	if err := s.resultsTmpl.ExecuteTemplate(w, "base.html", s.pageData(s.view.Snapshot())); err != nil {
		s.logger.Printf("Template error: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
