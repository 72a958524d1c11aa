package requirements

import (
	"testing"

	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/progress"
)

func TestCompletedRequirementsQuests(t *testing.T) {
	quests := []catalog.Quest{
		quest("q1", re("metal-parts", 10), re("spring", 5)),
		quest("q2", re("metal-parts", 20)),
	}

	got := CompletedRequirements(snapWithQuests("q1"), quests, nil, nil)
	want := ItemRequirements{"metal-parts": 10, "spring": 5}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompletedRequirementsIncompleteQuestContributesNothing(t *testing.T) {
	quests := []catalog.Quest{quest("q1", re("metal-parts", 10))}

	snap := progress.NewSnapshot()
	snap.Quests["q1"] = progress.QuestProgress{Completed: false}

	if got := CompletedRequirements(snap, quests, nil, nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestCompletedRequirementsHideoutLevelsIndependent(t *testing.T) {
	modules := []catalog.HideoutModule{
		mod("scrappy",
			lvl(1, re("dog-collar", 1)),
			lvl(2, re("lemon", 3)),
			lvl(3, re("metal-parts", 50)),
		),
	}

	snap := progress.NewSnapshot()
	snap.Hideout[progress.HideoutKey("scrappy", 1)] = progress.HideoutProgress{ModuleID: "scrappy", Level: 1, Completed: true}
	snap.Hideout[progress.HideoutKey("scrappy", 2)] = progress.HideoutProgress{ModuleID: "scrappy", Level: 2, Completed: true}

	got := CompletedRequirements(snap, nil, modules, nil)
	want := ItemRequirements{"dog-collar": 1, "lemon": 3}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, ok := got["metal-parts"]; ok {
		t.Fatal("level 3 is not completed, metal-parts must be absent")
	}
}

// Marking level 3 complete while level 1 is not is allowed; the calculator
// reflects the snapshot as-is without inferring lower levels.
func TestCompletedRequirementsNoLevelOrderingInference(t *testing.T) {
	modules := []catalog.HideoutModule{
		mod("scrappy",
			lvl(1, re("dog-collar", 1)),
			lvl(3, re("metal-parts", 50)),
		),
	}

	snap := progress.NewSnapshot()
	snap.Hideout[progress.HideoutKey("scrappy", 3)] = progress.HideoutProgress{ModuleID: "scrappy", Level: 3, Completed: true}

	got := CompletedRequirements(snap, nil, modules, nil)
	want := ItemRequirements{"metal-parts": 50}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompletedRequirementsProjectPhases(t *testing.T) {
	projects := []catalog.Project{
		proj("expedition",
			phase(1, re("fuel-cell", 4)),
			phase(2, re("fuel-cell", 6), re("wire", 2)),
		),
	}

	snap := progress.NewSnapshot()
	snap.Projects[progress.ProjectKey("expedition", 2)] = progress.ProjectProgress{ProjectID: "expedition", Phase: 2, Completed: true}

	got := CompletedRequirements(snap, nil, nil, projects)
	want := ItemRequirements{"fuel-cell": 6, "wire": 2}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompletedRequirementsUnknownProgressEntries(t *testing.T) {
	quests := []catalog.Quest{quest("q1", re("metal-parts", 10))}

	snap := snapWithQuests("q1", "ghost-quest")
	snap.Hideout[progress.HideoutKey("ghost-module", 1)] = progress.HideoutProgress{ModuleID: "ghost-module", Level: 1, Completed: true}

	got := CompletedRequirements(snap, quests, nil, nil)
	want := ItemRequirements{"metal-parts": 10}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompletedRequirementsNilSnapshot(t *testing.T) {
	quests := []catalog.Quest{quest("q1", re("metal-parts", 10))}
	if got := CompletedRequirements(nil, quests, nil, nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

// The calculator must address level completion with exactly the key the
// progress store produces.
func TestCompositeKeyAgreement(t *testing.T) {
	if got := progress.HideoutKey("scrappy", 2); got != "scrappy-2" {
		t.Fatalf("HideoutKey = %q, want %q", got, "scrappy-2")
	}
	if got := progress.ProjectKey("expedition", 3); got != "expedition-3" {
		t.Fatalf("ProjectKey = %q, want %q", got, "expedition-3")
	}

	modules := []catalog.HideoutModule{mod("scrappy", lvl(2, re("lemon", 3)))}
	snap := progress.NewSnapshot()
	snap.Hideout["scrappy-2"] = progress.HideoutProgress{ModuleID: "scrappy", Level: 2, Completed: true}

	got := CompletedRequirements(snap, nil, modules, nil)
	if got["lemon"] != 3 {
		t.Fatalf("calculator did not match the stored composite key: %v", got)
	}
}
