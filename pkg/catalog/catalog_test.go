package catalog

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cat := &Catalog{
		Source: "test",
		Items:  []Item{{ID: "metal-parts", Name: "Metal Parts", Value: 120, Weight: 0.5}},
		Quests: []Quest{{ID: "q1", Name: "Supply Run", RequiredItems: []RequirementEntry{{ItemID: "metal-parts", Quantity: 10}}}},
		Modules: []HideoutModule{{ID: "scrappy", Name: "Scrappy", Levels: []HideoutLevel{
			{Level: 1, RequiredItems: []RequirementEntry{{ItemID: "dog-collar", Quantity: 1}}},
		}}},
		Projects: []Project{{ID: "expedition", Name: "Expedition", Phases: []ProjectPhase{
			{Phase: 1, ValueRequirements: map[string]int{"Combat Items": 250000}},
		}}},
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := cat.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Items) != 1 || len(got.Quests) != 1 || len(got.Modules) != 1 || len(got.Projects) != 1 {
		t.Fatalf("unexpected catalog after round trip: %+v", got)
	}
	if got.Quests[0].RequiredItems[0].Quantity != 10 {
		t.Fatalf("quest requirements lost: %+v", got.Quests[0])
	}
	if got.Projects[0].Phases[0].ValueRequirements["Combat Items"] != 250000 {
		t.Fatalf("value requirements lost: %+v", got.Projects[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestItemName(t *testing.T) {
	cat := &Catalog{Items: []Item{{ID: "metal-parts", Name: "Metal Parts"}}}
	if got := cat.ItemName("metal-parts"); got != "Metal Parts" {
		t.Fatalf("got %q", got)
	}
	if got := cat.ItemName("unknown-item"); got != "unknown-item" {
		t.Fatalf("fallback got %q", got)
	}
}
