// Package server exposes the computed requirement maps and the progress
// tracker over a small JSON API, plus a websocket feed that tells connected
// clients when the maps have been recomputed.
package server

import (
	"net/http"

	"github.com/mklnz/stashkeep/internal/utils"
	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/progress"
	"github.com/mklnz/stashkeep/pkg/requirements"
)

type Server struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	Reqs     *requirements.Store
	Username string
	Password string

	hub *Hub
}

func New(cat *catalog.Catalog, prog *progress.Store, reqs *requirements.Store, user, pass string) *Server {
	return &Server{
		Catalog:  cat,
		Progress: prog,
		Reqs:     reqs,
		Username: user,
		Password: pass,
		hub:      NewHub(),
	}
}

func (s *Server) Start(addr string) error {
	go s.hub.Run()

	// The store pushes no deltas; the websocket message just tells clients
	// to re-read whichever endpoint they care about.
	s.Reqs.Subscribe(func() {
		s.hub.Broadcast(Message{Type: "requirements_updated"})
	})

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/needed", s.basicAuth(s.handleNeeded))
	mux.HandleFunc("GET /api/needed/{item}", s.basicAuth(s.handleNeededItem))
	mux.HandleFunc("GET /api/totals", s.basicAuth(s.handleTotals))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))
	mux.HandleFunc("GET /api/progress", s.basicAuth(s.handleProgress))
	mux.HandleFunc("POST /api/progress/quest", s.basicAuth(s.handleQuestProgress))
	mux.HandleFunc("POST /api/progress/hideout", s.basicAuth(s.handleHideoutProgress))
	mux.HandleFunc("POST /api/progress/project", s.basicAuth(s.handleProjectProgress))
	mux.HandleFunc("GET /ws", s.basicAuth(s.handleWS))

	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
