package match

import "testing"

var items = []Candidate{
	{ID: "metal-parts", Name: "Metal Parts"},
	{ID: "spring", Name: "Spring"},
	{ID: "dog-collar", Name: "Dog Collar"},
	{ID: "fuel-cell", Name: "Fuel Cell"},
}

func TestResolveExactID(t *testing.T) {
	got, ok := Resolve("metal-parts", items)
	if !ok || got.ID != "metal-parts" || got.Distance != 0 {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
}

func TestResolveExactNameCaseInsensitive(t *testing.T) {
	got, ok := Resolve("Metal Parts", items)
	if !ok || got.ID != "metal-parts" || got.Distance != 0 {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
}

func TestResolveFuzzy(t *testing.T) {
	got, ok := Resolve("metl parts", items)
	if !ok || got.ID != "metal-parts" {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
	if got.Distance == 0 {
		t.Fatal("expected a fuzzy match, not exact")
	}
}

func TestResolveNoMatch(t *testing.T) {
	if got, ok := Resolve("completely different", items); ok {
		t.Fatalf("unexpected match: %+v", got)
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	if _, ok := Resolve("   ", items); ok {
		t.Fatal("empty query should not resolve")
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions("sprig", items, 3)
	if len(got) == 0 || got[0].ID != "spring" {
		t.Fatalf("got %+v", got)
	}
}
