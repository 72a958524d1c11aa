package requirements

import (
	"testing"

	"github.com/mklnz/stashkeep/pkg/catalog"
)

func TestQuestRequirementsSumsAcrossQuests(t *testing.T) {
	got := QuestRequirements([]catalog.Quest{
		quest("q1", re("metal-parts", 10), re("spring", 5)),
		quest("q2", re("metal-parts", 20)),
		quest("q3"), // no item requirements
	})

	want := ItemRequirements{"metal-parts": 30, "spring": 5}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuestRequirementsEmptyInput(t *testing.T) {
	if got := QuestRequirements(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestQuestRequirementsSkipsMalformedEntries(t *testing.T) {
	got := QuestRequirements([]catalog.Quest{
		quest("q1", re("", 10), re("lemon", 0), re("lemon", -3), re("lemon", 2)),
	})

	want := ItemRequirements{"lemon": 2}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuestExtractionIsAdditive(t *testing.T) {
	a := []catalog.Quest{quest("q1", re("metal-parts", 10), re("spring", 5))}
	b := []catalog.Quest{quest("q2", re("metal-parts", 20)), quest("q3", re("wire", 7))}

	merged := Merge(QuestRequirements(a), QuestRequirements(b))
	whole := QuestRequirements(append(append([]catalog.Quest{}, a...), b...))

	if !equalReqs(merged, whole) {
		t.Fatalf("merge of parts %v != extraction of union %v", merged, whole)
	}
}

func TestHideoutRequirementsSumEveryLevel(t *testing.T) {
	got := HideoutRequirements([]catalog.HideoutModule{
		mod("scrappy",
			lvl(1, re("dog-collar", 1)),
			lvl(2, re("lemon", 3)),
			lvl(3, re("metal-parts", 50)),
		),
		mod("workbench",
			lvl(1, re("metal-parts", 10)),
		),
	})

	want := ItemRequirements{"dog-collar": 1, "lemon": 3, "metal-parts": 60}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestProjectRequirementsSkipValuePhases(t *testing.T) {
	got := ProjectRequirements([]catalog.Project{
		proj("expedition",
			phase(1, re("fuel-cell", 4)),
			valuePhase(2, map[string]int{"Combat Items": 250000}),
		),
	})

	want := ItemRequirements{"fuel-cell": 4}
	if !equalReqs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHasValueRequirements(t *testing.T) {
	withValue := []catalog.Project{
		proj("expedition", phase(1, re("fuel-cell", 4)), valuePhase(2, map[string]int{"Combat Items": 250000})),
	}
	withoutValue := []catalog.Project{
		proj("expedition", phase(1, re("fuel-cell", 4))),
	}

	if !HasValueRequirements(withValue) {
		t.Fatal("expected value requirements to be detected")
	}
	if HasValueRequirements(withoutValue) {
		t.Fatal("expected no value requirements")
	}
}

func TestCalculateItemRequirementsIsSumOfThreeSources(t *testing.T) {
	quests := []catalog.Quest{quest("q1", re("metal-parts", 10))}
	modules := []catalog.HideoutModule{mod("scrappy", lvl(1, re("metal-parts", 5), re("lemon", 3)))}
	projects := []catalog.Project{proj("expedition", phase(1, re("metal-parts", 2)))}

	total := CalculateItemRequirements(quests, modules, projects)

	qp := QuestRequirements(quests)
	hp := HideoutRequirements(modules)
	pp := ProjectRequirements(projects)

	for _, id := range []string{"metal-parts", "lemon"} {
		if total[id] != qp[id]+hp[id]+pp[id] {
			t.Fatalf("total[%s] = %d, want %d", id, total[id], qp[id]+hp[id]+pp[id])
		}
	}
	if total["metal-parts"] != 17 || total["lemon"] != 3 {
		t.Fatalf("unexpected totals: %v", total)
	}
}

func TestMergeIsCommutative(t *testing.T) {
	a := ItemRequirements{"metal-parts": 10, "spring": 5}
	b := ItemRequirements{"metal-parts": 20, "wire": 1}

	if !equalReqs(Merge(a, b), Merge(b, a)) {
		t.Fatal("merge order changed the result")
	}
}
