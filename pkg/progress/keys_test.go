package progress

import "testing"

func TestCompositeKeys(t *testing.T) {
	if got := HideoutKey("scrappy", 2); got != "scrappy-2" {
		t.Fatalf("HideoutKey = %q, want scrappy-2", got)
	}
	if got := ProjectKey("last-exit", 10); got != "last-exit-10" {
		t.Fatalf("ProjectKey = %q, want last-exit-10", got)
	}
}
