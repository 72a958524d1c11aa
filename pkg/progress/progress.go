// Package progress tracks which quests, hideout levels and project phases the
// user has completed. Completion state is persisted in a local SQLite
// database; the rest of the application only ever sees immutable Snapshot
// values read from it.
package progress

import "time"

// SchemaVersion is bumped whenever the persisted layout changes.
const SchemaVersion = 1

// QuestProgress is the completion record for a single quest.
type QuestProgress struct {
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt,omitempty"`
}

// HideoutProgress is the completion record for one level of one module,
// stored under HideoutKey(ModuleID, Level).
type HideoutProgress struct {
	ModuleID    string    `json:"moduleId"`
	Level       int       `json:"level"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt,omitempty"`
}

// ProjectProgress is the completion record for one phase of one project,
// stored under ProjectKey(ProjectID, Phase).
type ProjectProgress struct {
	ProjectID   string    `json:"projectId"`
	Phase       int       `json:"phase"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt,omitempty"`
}

// Snapshot is a point-in-time view of all completion state. Snapshots are
// never mutated after creation; callers that change progress read a fresh one.
type Snapshot struct {
	Version  int                        `json:"version"`
	Quests   map[string]QuestProgress   `json:"quests"`
	Hideout  map[string]HideoutProgress `json:"hideout"`
	Projects map[string]ProjectProgress `json:"projects"`
}

// NewSnapshot returns an empty snapshot at the current schema version.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:  SchemaVersion,
		Quests:   map[string]QuestProgress{},
		Hideout:  map[string]HideoutProgress{},
		Projects: map[string]ProjectProgress{},
	}
}

// QuestCompleted reports whether the given quest is marked completed.
func (s *Snapshot) QuestCompleted(questID string) bool {
	if s == nil {
		return false
	}
	return s.Quests[questID].Completed
}

// HideoutCompleted reports whether the given module level is marked completed.
func (s *Snapshot) HideoutCompleted(moduleID string, level int) bool {
	if s == nil {
		return false
	}
	return s.Hideout[HideoutKey(moduleID, level)].Completed
}

// ProjectCompleted reports whether the given project phase is marked completed.
func (s *Snapshot) ProjectCompleted(projectID string, phase int) bool {
	if s == nil {
		return false
	}
	return s.Projects[ProjectKey(projectID, phase)].Completed
}
