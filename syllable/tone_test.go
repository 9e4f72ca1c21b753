package syllable

import "testing"

func TestApplyTone(t *testing.T) {
	tests := []struct {
		name string
		base string
		tone Tone
		want string
	}{
		{"a takes the mark", "ma", Tone1, "mā"},
		{"o before e", "lou", Tone2, "lóu"},
		{"a beats o", "hao", Tone3, "hǎo"},
		{"e when no a or o", "xie", Tone4, "xiè"},
		{"iu marks the u", "liu", Tone4, "liù"},
		{"ui marks the i", "gui", Tone4, "guì"},
		{"lone u", "qu", Tone4, "qù"},
		{"lone i", "yi", Tone2, "yí"},
		{"ü last in priority", "lü", Tone3, "lǚ"},
		{"uppercase vowel", "An", Tone1, "Ān"},
		{"neutral unchanged", "ma", ToneNeutral, "ma"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyTone(tc.base, tc.tone); got != tc.want {
				t.Errorf("ApplyTone(%q, %v) = %q, want %q", tc.base, tc.tone, got, tc.want)
			}
		})
	}
}

func TestStripTone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		plain string
		tone  Tone
		ok    bool
	}{
		{"macron", "mā", "ma", Tone1, true},
		{"acute", "lóu", "lou", Tone2, true},
		{"caron", "hǎo", "hao", Tone3, true},
		{"grave", "dà", "da", Tone4, true},
		{"breve accepted as third tone", "mă", "ma", Tone3, true},
		{"no mark is neutral", "ma", "ma", ToneNeutral, true},
		{"diaeresis is spelling, not tone", "lü", "lü", ToneNeutral, true},
		{"toned ü keeps the diaeresis", "lǚ", "lü", Tone3, true},
		{"two marks malformed", "ǎ̀", "a", ToneNeutral, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plain, tone, ok := StripTone(tc.input)
			if plain != tc.plain || tone != tc.tone || ok != tc.ok {
				t.Errorf("StripTone(%q) = (%q, %v, %v), want (%q, %v, %v)",
					tc.input, plain, tone, ok, tc.plain, tc.tone, tc.ok)
			}
		})
	}
}

func TestToneRoundTrip(t *testing.T) {
	bases := []string{"ma", "lou", "hao", "xie", "liu", "gui", "qu", "lü", "zhuang", "er"}
	tones := []Tone{ToneNeutral, Tone1, Tone2, Tone3, Tone4}

	for _, base := range bases {
		for _, tone := range tones {
			marked := ApplyTone(base, tone)
			plain, got, ok := StripTone(marked)
			if !ok {
				t.Errorf("StripTone(ApplyTone(%q, %v)) not ok", base, tone)
				continue
			}
			if plain != base || got != tone {
				t.Errorf("round trip %q/%v: got %q/%v", base, tone, plain, got)
			}
			if again := ApplyTone(plain, got); again != marked {
				t.Errorf("ApplyTone(StripTone(%q)) = %q, want %q", marked, again, marked)
			}
		}
	}
}

func TestToneFromDigit(t *testing.T) {
	tests := []struct {
		digit int
		tone  Tone
		ok    bool
	}{
		{1, Tone1, true},
		{2, Tone2, true},
		{3, Tone3, true},
		{4, Tone4, true},
		{5, ToneNeutral, true},
		{0, ToneNeutral, true},
		{6, ToneNeutral, false},
		{9, ToneNeutral, false},
	}

	for _, tc := range tests {
		tone, ok := ToneFromDigit(tc.digit)
		if tone != tc.tone || ok != tc.ok {
			t.Errorf("ToneFromDigit(%d) = (%v, %v), want (%v, %v)",
				tc.digit, tone, ok, tc.tone, tc.ok)
		}
	}
}

func TestToneDigit(t *testing.T) {
	if got := Tone3.Digit(); got != 3 {
		t.Errorf("Tone3.Digit() = %d, want 3", got)
	}
	if got := ToneNeutral.Digit(); got != 5 {
		t.Errorf("ToneNeutral.Digit() = %d, want 5", got)
	}
}
