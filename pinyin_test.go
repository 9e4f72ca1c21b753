package pinyin

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		resolved bool
	}{
		{"concatenated diacritics", "dàlóu", "dà lóu", true},
		{"nasal coda kept by first syllable", "gōnglù", "gōng lù", true},
		{"n coda before t initial", "bàntiān", "bàn tiān", true},
		{"ng coda, segmentable remainder", "kēngbǎo", "kēng bǎo", true},
		{"numeral tones, space preserved", "ma1 ma1", "mā mā", true},
		{"already canonical", "mā mā", "mā mā", true},
		{"numeral per syllable", "ni3hao3", "nǐ hǎo", true},
		{"multiple tokens", "dàlóu gōnglù", "dà lóu gōng lù", true},
		{"whitespace collapsed and trimmed", "  mā \t mā  ", "mā mā", true},
		{"punctuation in place", "dàlóu, gōnglù!", "dà lóu, gōng lù!", true},
		{"apostrophe separates syllables", "xi'an", "xi'an", true},
		{"standalone number passes through", "123", "123", true},
		{"malformed numeral flagged", "ma6", "ma", false},
		{"unrecognized run flagged", "gōnglù xyz", "gōng lù xyz", false},
		{"empty input", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got.Text != tc.want {
				t.Errorf("Normalize(%q).Text = %q, want %q", tc.input, got.Text, tc.want)
			}
			if got.FullyResolved != tc.resolved {
				t.Errorf("Normalize(%q).FullyResolved = %v, want %v",
					tc.input, got.FullyResolved, tc.resolved)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"dàlóu",
		"gōnglù",
		"bàntiān",
		"kēngbǎo",
		"ma1 ma1",
		"nǐhǎo",
		"zhuangao",
		"kengx!",
		"xi'an",
		"Dàlóu, hǎo ma5",
		"  spaced   out  ",
	}

	for _, input := range inputs {
		once := Normalize(input).Text
		twice := Normalize(once).Text
		if once != twice {
			t.Errorf("Normalize not idempotent on %q: %q -> %q", input, once, twice)
		}
	}
}

// stripNotation removes spaces, tone diacritics, and tone numerals, leaving
// only base letters and punctuation.
func stripNotation(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.IsSpace(r):
		case r >= '0' && r <= '9':
		case unicode.Is(unicode.Mn, r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestNormalize_PreservesCharacters(t *testing.T) {
	inputs := []string{
		"dàlóu",
		"gōnglù gōnglù",
		"ma1ma1",
		"zhuangao",
		"kengx",
		"bàntiānkēngbǎo",
		"Dàlóu",
	}

	for _, input := range inputs {
		got := Normalize(input).Text
		if stripNotation(got) != stripNotation(input) {
			t.Errorf("Normalize(%q) invented or dropped letters: %q", input, got)
		}
	}
}

func TestNormalize_NumericTones(t *testing.T) {
	n := New(WithNumericTones())

	tests := []struct {
		input string
		want  string
	}{
		{"dàlóu", "da4 lou2"},
		{"ma1 ma1", "ma1 ma1"},
		{"nǐhǎo", "ni3 hao3"},
		{"ma", "ma"}, // neutral stays unmarked
	}

	for _, tc := range tests {
		if got := n.Normalize(tc.input).Text; got != tc.want {
			t.Errorf("numeric Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	// Numeric output is idempotent too.
	once := n.Normalize("dàlóu gōnglù").Text
	if twice := n.Normalize(once).Text; twice != once {
		t.Errorf("numeric output not idempotent: %q -> %q", once, twice)
	}
}

func TestNormalize_FlaggedSpans(t *testing.T) {
	got := Normalize("gōnglù xyz")
	if got.FullyResolved {
		t.Fatal("expected unresolved result")
	}
	if len(got.Flagged) != 1 {
		t.Fatalf("expected 1 flagged span, got %d", len(got.Flagged))
	}
	span := got.Flagged[0]
	if "gōnglù xyz"[span.Start:span.End] != "xyz" {
		t.Errorf("flagged span = %+v, does not cover the unresolved run", span)
	}
}

func TestNormalize_WithLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	n := New(WithLogger(logger))

	got := n.Normalize("dàlóu")
	if got.Text != "dà lóu" {
		t.Errorf("Normalize with logger = %q, want %q", got.Text, "dà lóu")
	}
}

func TestSplitSegments(t *testing.T) {
	segs := splitSegments("ma1, ma")
	kinds := []int{segWord, segPunct, segSpace, segWord}
	if len(segs) != len(kinds) {
		t.Fatalf("expected %d segments, got %d: %+v", len(kinds), len(segs), segs)
	}
	for i, k := range kinds {
		if segs[i].kind != k {
			t.Errorf("segment %d kind = %d, want %d", i, segs[i].kind, k)
		}
	}
	if segs[0].text != "ma1" {
		t.Errorf("digit did not join its word run: %q", segs[0].text)
	}
}
