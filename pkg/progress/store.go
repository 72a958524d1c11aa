package progress

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists completion state in SQLite.
type Store struct {
	sql *sql.DB
}

// Open opens (and if needed creates) the progress database at path.
func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS quest_progress (
  quest_id     TEXT PRIMARY KEY,
  completed    INTEGER NOT NULL CHECK (completed IN (0,1)),
  completed_at DATETIME
);
CREATE TABLE IF NOT EXISTS hideout_progress (
  key          TEXT PRIMARY KEY,
  module_id    TEXT NOT NULL,
  level        INTEGER NOT NULL,
  completed    INTEGER NOT NULL CHECK (completed IN (0,1)),
  completed_at DATETIME
);
CREATE TABLE IF NOT EXISTS project_progress (
  key          TEXT PRIMARY KEY,
  project_id   TEXT NOT NULL,
  phase        INTEGER NOT NULL,
  completed    INTEGER NOT NULL CHECK (completed IN (0,1)),
  completed_at DATETIME
);
	`); err != nil {
		return nil, err
	}
	return &Store{sql: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

// SetQuestCompleted marks a quest completed or not completed.
func (s *Store) SetQuestCompleted(ctx context.Context, questID string, completed bool) error {
	_, err := s.sql.ExecContext(ctx, `
INSERT INTO quest_progress(quest_id, completed, completed_at)
VALUES(?, ?, ?)
ON CONFLICT(quest_id) DO UPDATE SET completed = excluded.completed, completed_at = excluded.completed_at`,
		questID, boolToInt(completed), completedAt(completed))
	return err
}

// SetHideoutCompleted marks one level of one module completed or not. Levels
// are tracked independently; completing level 3 says nothing about level 1.
func (s *Store) SetHideoutCompleted(ctx context.Context, moduleID string, level int, completed bool) error {
	_, err := s.sql.ExecContext(ctx, `
INSERT INTO hideout_progress(key, module_id, level, completed, completed_at)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET completed = excluded.completed, completed_at = excluded.completed_at`,
		HideoutKey(moduleID, level), moduleID, level, boolToInt(completed), completedAt(completed))
	return err
}

// SetProjectCompleted marks one phase of one project completed or not.
func (s *Store) SetProjectCompleted(ctx context.Context, projectID string, phase int, completed bool) error {
	_, err := s.sql.ExecContext(ctx, `
INSERT INTO project_progress(key, project_id, phase, completed, completed_at)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET completed = excluded.completed, completed_at = excluded.completed_at`,
		ProjectKey(projectID, phase), projectID, phase, boolToInt(completed), completedAt(completed))
	return err
}

// Reset deletes all completion records.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.sql.ExecContext(ctx, `
DELETE FROM quest_progress;
DELETE FROM hideout_progress;
DELETE FROM project_progress;`)
	return err
}

// Snapshot reads the full completion state as an immutable value.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := NewSnapshot()

	rows, err := s.sql.QueryContext(ctx, "SELECT quest_id, completed, completed_at FROM quest_progress")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			id        string
			completed int
			at        sql.NullString
		)
		if err := rows.Scan(&id, &completed, &at); err != nil {
			rows.Close()
			return nil, err
		}
		snap.Quests[id] = QuestProgress{Completed: completed == 1, CompletedAt: parseTimestamp(at)}
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	rows, err = s.sql.QueryContext(ctx, "SELECT key, module_id, level, completed, completed_at FROM hideout_progress")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			key, moduleID    string
			level, completed int
			at               sql.NullString
		)
		if err := rows.Scan(&key, &moduleID, &level, &completed, &at); err != nil {
			rows.Close()
			return nil, err
		}
		snap.Hideout[key] = HideoutProgress{ModuleID: moduleID, Level: level, Completed: completed == 1, CompletedAt: parseTimestamp(at)}
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	rows, err = s.sql.QueryContext(ctx, "SELECT key, project_id, phase, completed, completed_at FROM project_progress")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			key, projectID   string
			phase, completed int
			at               sql.NullString
		)
		if err := rows.Scan(&key, &projectID, &phase, &completed, &at); err != nil {
			rows.Close()
			return nil, err
		}
		snap.Projects[key] = ProjectProgress{ProjectID: projectID, Phase: phase, Completed: completed == 1, CompletedAt: parseTimestamp(at)}
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	return snap, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func completedAt(completed bool) interface{} {
	if completed {
		return time.Now().UTC().Format("2006-01-02 15:04:05")
	}
	return nil
}

// parseTimestamp handles both the sqlite CURRENT_TIMESTAMP format and RFC3339.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02 15:04:05", ns.String); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ns.String); err == nil {
		return t
	}
	return time.Time{}
}
