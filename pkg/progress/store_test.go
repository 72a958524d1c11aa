package progress

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "progress.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreQuestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.SetQuestCompleted(ctx, "q1", true); err != nil {
		t.Fatalf("set: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !snap.QuestCompleted("q1") {
		t.Fatal("q1 should be completed")
	}
	if snap.Quests["q1"].CompletedAt.IsZero() {
		t.Fatal("completed_at not recorded")
	}
	if snap.QuestCompleted("q2") {
		t.Fatal("q2 should not be completed")
	}
}

func TestStoreQuestUndo(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.SetQuestCompleted(ctx, "q1", true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetQuestCompleted(ctx, "q1", false); err != nil {
		t.Fatalf("unset: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.QuestCompleted("q1") {
		t.Fatal("q1 should be incomplete after undo")
	}
	if !snap.Quests["q1"].CompletedAt.IsZero() {
		t.Fatal("completed_at should be cleared on undo")
	}
}

func TestStoreHideoutAndProjectKeys(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.SetHideoutCompleted(ctx, "scrappy", 2, true); err != nil {
		t.Fatalf("set hideout: %v", err)
	}
	if err := store.SetProjectCompleted(ctx, "expedition", 1, true); err != nil {
		t.Fatalf("set project: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	// Rows must land under the shared composite keys.
	h, ok := snap.Hideout["scrappy-2"]
	if !ok || !h.Completed || h.ModuleID != "scrappy" || h.Level != 2 {
		t.Fatalf("unexpected hideout record: %+v (ok=%v)", h, ok)
	}
	p, ok := snap.Projects["expedition-1"]
	if !ok || !p.Completed || p.ProjectID != "expedition" || p.Phase != 1 {
		t.Fatalf("unexpected project record: %+v (ok=%v)", p, ok)
	}

	if !snap.HideoutCompleted("scrappy", 2) || snap.HideoutCompleted("scrappy", 1) {
		t.Fatal("hideout levels must be tracked independently")
	}
	if !snap.ProjectCompleted("expedition", 1) {
		t.Fatal("project phase not completed")
	}
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.SetQuestCompleted(ctx, "q1", true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Quests)+len(snap.Hideout)+len(snap.Projects) != 0 {
		t.Fatalf("expected empty snapshot after reset, got %+v", snap)
	}
}
