package api

import (
	"net/http"

	"github.com/baxromumarov/draft-board/internal/observability"
)

type sourceResponse struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Selector string `json:"selector"`
}

// handleRankings scrapes every source on each call; nothing is cached.
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := s.rankings.Rankings(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Failed to build rankings: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rankings)
}

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	sites := s.rankings.Sites()
	items := make([]sourceResponse, 0, len(sites))
	for _, site := range sites {
		items = append(items, sourceResponse{
			Name:     site.Name,
			URL:      site.URL,
			Selector: site.Selector,
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, observability.Snapshot())
}
