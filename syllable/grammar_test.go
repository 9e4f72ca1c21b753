package syllable

import "testing"

func TestIsValidInitial(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"zh", true},
		{"ch", true},
		{"sh", true},
		{"b", true},
		{"y", true},
		{"w", true},
		{"ng", false},
		{"v", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsValidInitial(tc.input); got != tc.want {
			t.Errorf("IsValidInitial(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidFinal(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"ong", true},
		{"iang", true},
		{"üe", true},
		{"er", true},
		{"ng", false},
		{"x", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsValidFinal(tc.input); got != tc.want {
			t.Errorf("IsValidFinal(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidCombination(t *testing.T) {
	tests := []struct {
		initial string
		final   string
		want    bool
	}{
		{"g", "ong", true},
		{"zh", "uang", true},
		{"j", "uan", true}, // surface spelling of jüan
		{"n", "üe", true},
		{"", "an", true}, // standalone vowel-initial final
		{"", "er", true},
		{"b", "ou", false}, // bou is not a Mandarin syllable
		{"g", "o", false},  // go is not a Mandarin syllable
		{"", "ong", false}, // standalone ong is written weng
		{"f", "ai", false},
		{"ng", "a", false},
	}

	for _, tc := range tests {
		if got := IsValidCombination(tc.initial, tc.final); got != tc.want {
			t.Errorf("IsValidCombination(%q, %q) = %v, want %v",
				tc.initial, tc.final, got, tc.want)
		}
	}
}

func TestLongestInitialPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"zhang", "zh"}, // digraph beats single-letter z
		{"chi", "ch"},
		{"shuo", "sh"},
		{"za", "z"},
		{"ngai", "n"}, // ng is not an initial; n matches alone
		{"ang", ""},   // vowel-initial
		{"", ""},
	}

	for _, tc := range tests {
		if got := LongestInitialPrefix(tc.input); got != tc.want {
			t.Errorf("LongestInitialPrefix(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestLongestFinalPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"anguo", "ang"},
		{"ongle", "ong"},
		{"iaozhu", "iao"},
		{"o", "o"},
		{"üeding", "üe"},
		{"xia", ""}, // consonant start
		{"", ""},
	}

	for _, tc := range tests {
		if got := LongestFinalPrefix(tc.input); got != tc.want {
			t.Errorf("LongestFinalPrefix(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFinalCandidatesOrder(t *testing.T) {
	// Candidates come longest first so the coda-bearing reading is tried
	// before its stripped variants.
	got := finalCandidates("g", []rune("angong"))
	want := []string{"ang", "an", "a"}
	if len(got) != len(want) {
		t.Fatalf("finalCandidates(g, angong) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
