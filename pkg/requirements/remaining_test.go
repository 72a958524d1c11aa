package requirements

import "testing"

func TestRemainingRequirements(t *testing.T) {
	cases := []struct {
		name      string
		total     ItemRequirements
		completed ItemRequirements
		want      ItemRequirements
	}{
		{
			name:      "partial completion",
			total:     ItemRequirements{"metal-parts": 130, "spring": 5},
			completed: ItemRequirements{"metal-parts": 30, "spring": 5},
			want:      ItemRequirements{"metal-parts": 100},
		},
		{
			name:      "exactly met is omitted not zero",
			total:     ItemRequirements{"a": 50},
			completed: ItemRequirements{"a": 50},
			want:      ItemRequirements{},
		},
		{
			name:      "over-completion clamps",
			total:     ItemRequirements{"a": 50},
			completed: ItemRequirements{"a": 70},
			want:      ItemRequirements{},
		},
		{
			name:      "nothing completed passes through",
			total:     ItemRequirements{"a": 100},
			completed: ItemRequirements{},
			want:      ItemRequirements{"a": 100},
		},
		{
			name:      "completed-only keys never leak",
			total:     ItemRequirements{},
			completed: ItemRequirements{"a": 50},
			want:      ItemRequirements{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemainingRequirements(tc.total, tc.completed)
			if !equalReqs(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for id, qty := range got {
				if qty <= 0 {
					t.Fatalf("non-positive entry leaked: %s=%d", id, qty)
				}
			}
		})
	}
}
