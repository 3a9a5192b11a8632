package spell

import "testing"

func TestRenderStroke(t *testing.T) {
	testCases := []struct {
		name   string
		stroke Stroke
		want   string
	}{
		{"full chord strips final marker", Stroke{"T", "IA", "-N", ""}, "TIAN"},
		{"vowel before final strips marker", Stroke{"", "A", "-N", ""}, "AN"},
		{"final-only keeps marker", Stroke{"", "", "-N", ""}, "-N"},
		{"final with suffix only keeps marker", Stroke{"", "", "-N", "S"}, "-NS"},
		{"unmarked final untouched", Stroke{"T", "", "N", ""}, "TN"},
		{"variant separator substituted", Stroke{"Z|ZH", "A", "", ""}, "Z∙ZHA"},
		{"empty chord placeholder", Stroke{"", "", "", ""}, "∅"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderStroke(tc.stroke); got != tc.want {
				t.Errorf("RenderStroke(%v) = %q, want %q", tc.stroke, got, tc.want)
			}
		})
	}
}

func TestRenderSpelling(t *testing.T) {
	sp := Spelling{
		{Output: "tia", Stroke: Stroke{"T", "IA", "", ""}},
		{Output: "n", Stroke: Stroke{"", "", "-N", ""}},
	}
	if got := Render(sp); got != "TIA -N" {
		t.Errorf("Render = %q", got)
	}

	if got := Render(Spelling{}); got != "" {
		t.Errorf("empty spelling renders %q", got)
	}
}
