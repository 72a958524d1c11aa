package server

import (
	"encoding/json"
	"net/http"
	"sort"
)

// NeededItem is one row of the needed/totals responses.
type NeededItem struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Remaining int    `json:"remaining"`
}

// RequirementsResponse wraps the rows with the value-requirement notice so
// clients can tell users the maps are not the whole story.
type RequirementsResponse struct {
	HasValueRequirements bool         `json:"hasValueRequirements"`
	Items                []NeededItem `json:"items"`
}

func (s *Server) requirementRows(onlyRemaining bool) []NeededItem {
	totals := s.Reqs.Totals()
	completed := s.Reqs.Completed()
	remaining := s.Reqs.Remaining()

	source := totals
	if onlyRemaining {
		source = remaining
	}

	rows := make([]NeededItem, 0, len(source))
	for id := range source {
		rows = append(rows, NeededItem{
			ItemID:    id,
			Name:      s.Catalog.ItemName(id),
			Total:     totals[id],
			Completed: completed[id],
			Remaining: remaining[id],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Remaining == rows[j].Remaining {
			return rows[i].ItemID < rows[j].ItemID
		}
		return rows[i].Remaining > rows[j].Remaining
	})
	return rows
}

func (s *Server) handleNeeded(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(RequirementsResponse{
		HasValueRequirements: s.Reqs.HasValueRequirements(),
		Items:                s.requirementRows(true),
	})
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(RequirementsResponse{
		HasValueRequirements: s.Reqs.HasValueRequirements(),
		Items:                s.requirementRows(false),
	})
}

func (s *Server) handleNeededItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("item")
	totals := s.Reqs.Totals()
	completed := s.Reqs.Completed()

	json.NewEncoder(w).Encode(NeededItem{
		ItemID:    itemID,
		Name:      s.Catalog.ItemName(itemID),
		Total:     totals[itemID],
		Completed: completed[itemID],
		Remaining: s.Reqs.QuantityNeeded(itemID),
	})
}

// Stats summarizes completion per progression system.
type Stats struct {
	Quests         SystemStats `json:"quests"`
	HideoutLevels  SystemStats `json:"hideoutLevels"`
	ProjectPhases  SystemStats `json:"projectPhases"`
	ItemsRemaining int         `json:"itemsRemaining"`
}

type SystemStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Progress.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var stats Stats
	for _, q := range s.Catalog.Quests {
		stats.Quests.Total++
		if snap.QuestCompleted(q.ID) {
			stats.Quests.Completed++
		}
	}
	for _, m := range s.Catalog.Modules {
		for _, lvl := range m.Levels {
			stats.HideoutLevels.Total++
			if snap.HideoutCompleted(m.ID, lvl.Level) {
				stats.HideoutLevels.Completed++
			}
		}
	}
	for _, p := range s.Catalog.Projects {
		for _, ph := range p.Phases {
			stats.ProjectPhases.Total++
			if snap.ProjectCompleted(p.ID, ph.Phase) {
				stats.ProjectPhases.Completed++
			}
		}
	}
	stats.ItemsRemaining = len(s.Reqs.Remaining())

	json.NewEncoder(w).Encode(stats)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Progress.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(snap)
}

type questProgressRequest struct {
	QuestID   string `json:"questId"`
	Completed bool   `json:"completed"`
}

func (s *Server) handleQuestProgress(w http.ResponseWriter, r *http.Request) {
	var req questProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.QuestID == "" {
		http.Error(w, "questId is required", http.StatusBadRequest)
		return
	}
	if err := s.Progress.SetQuestCompleted(r.Context(), req.QuestID, req.Completed); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.recompute(w, r)
}

type hideoutProgressRequest struct {
	ModuleID  string `json:"moduleId"`
	Level     int    `json:"level"`
	Completed bool   `json:"completed"`
}

func (s *Server) handleHideoutProgress(w http.ResponseWriter, r *http.Request) {
	var req hideoutProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ModuleID == "" || req.Level < 1 {
		http.Error(w, "moduleId and a 1-based level are required", http.StatusBadRequest)
		return
	}
	if err := s.Progress.SetHideoutCompleted(r.Context(), req.ModuleID, req.Level, req.Completed); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.recompute(w, r)
}

type projectProgressRequest struct {
	ProjectID string `json:"projectId"`
	Phase     int    `json:"phase"`
	Completed bool   `json:"completed"`
}

func (s *Server) handleProjectProgress(w http.ResponseWriter, r *http.Request) {
	var req projectProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProjectID == "" || req.Phase < 1 {
		http.Error(w, "projectId and a 1-based phase are required", http.StatusBadRequest)
		return
	}
	if err := s.Progress.SetProjectCompleted(r.Context(), req.ProjectID, req.Phase, req.Completed); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.recompute(w, r)
}

// recompute refreshes the derived store from a fresh progress snapshot and
// answers with the updated remaining map.
func (s *Server) recompute(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Progress.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.Reqs.Recompute(s.Catalog, snap)

	json.NewEncoder(w).Encode(RequirementsResponse{
		HasValueRequirements: s.Reqs.HasValueRequirements(),
		Items:                s.requirementRows(true),
	})
}
