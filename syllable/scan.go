package syllable

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Syllable is one recognized syllable of a token. Surface preserves the
// original letter case with tone marks stripped; Raw syllables carry an
// unrecognized run verbatim and have no grammar decomposition.
type Syllable struct {
	Initial string
	Final   string
	Tone    Tone
	Surface string
	Raw     bool
}

// Text renders the syllable in canonical diacritic form.
func (s Syllable) Text() string {
	if s.Raw {
		return s.Surface
	}
	return ApplyTone(s.Surface, s.Tone)
}

// TextNumeric renders the syllable with a trailing tone digit. The neutral
// tone stays unmarked so that numeric output is idempotent.
func (s Syllable) TextNumeric() string {
	if s.Raw || s.Tone == ToneNeutral {
		return s.Surface
	}
	return s.Surface + strconv.Itoa(s.Tone.Digit())
}

// Result is the outcome of segmenting one token. FullyResolved is false
// when any part of the token passed through unrecognized, a tone was
// malformed, or a nasal-coda ambiguity had more than one valid reading.
type Result struct {
	Syllables     []Syllable
	FullyResolved bool
}

// digitMark records a tone numeral found inside the token. pos is the
// number of letters consumed before the digit, i.e. the letter boundary
// the digit should close.
type digitMark struct {
	pos  int
	tone Tone
	bad  bool
	lit  rune
}

// tokenScan is the decomposed form of one token: base letters with case
// preserved, their lowercase counterparts for grammar matching, and the
// tone notation found along the way.
type tokenScan struct {
	surface []rune
	lower   []rune
	tones   map[int]Tone
	digits  []digitMark
	flagged bool
}

// scanToken splits a token into base letters and tone notation. Combining
// diacritics are resolved against the preceding letter: the diaeresis
// recomposes into ü, tone marks are recorded by letter index, and a second
// tone mark on the same letter is malformed (neutral, flagged). The ASCII
// convention v for ü is accepted.
func scanToken(token string) *tokenScan {
	sc := &tokenScan{tones: make(map[int]Tone)}

	for _, r := range norm.NFD.String(token) {
		switch {
		case unicode.Is(unicode.Mn, r):
			i := len(sc.surface) - 1
			if i < 0 {
				sc.flagged = true
				continue
			}
			if r == markDiaeresis {
				switch sc.lower[i] {
				case 'u':
					if sc.surface[i] == 'U' {
						sc.surface[i] = 'Ü'
					} else {
						sc.surface[i] = 'ü'
					}
					sc.lower[i] = 'ü'
				case 'ü':
					// already composed, ignore
				default:
					sc.flagged = true
				}
				continue
			}
			if t, isTone := toneForMark(r); isTone {
				if _, dup := sc.tones[i]; dup {
					sc.tones[i] = ToneNeutral
					sc.flagged = true
				} else {
					sc.tones[i] = t
				}
				continue
			}
			sc.flagged = true
		case r >= '0' && r <= '9':
			t, ok := ToneFromDigit(int(r - '0'))
			sc.digits = append(sc.digits, digitMark{pos: len(sc.surface), tone: t, bad: !ok, lit: r})
			if !ok {
				sc.flagged = true
			}
		default:
			if lr := unicode.ToLower(r); lr == 'v' {
				if r == 'V' {
					sc.surface = append(sc.surface, 'Ü')
				} else {
					sc.surface = append(sc.surface, 'ü')
				}
				sc.lower = append(sc.lower, 'ü')
			} else {
				sc.surface = append(sc.surface, r)
				sc.lower = append(sc.lower, lr)
			}
		}
	}
	return sc
}

// rawSlice reconstructs the token text from letter index from onward,
// reapplying tone marks and digits at their recorded positions. Used for
// best-effort passthrough of unrecognized runs.
func (sc *tokenScan) rawSlice(from int) string {
	var b strings.Builder
	for i := from; i < len(sc.surface); i++ {
		b.WriteRune(sc.surface[i])
		if t, exists := sc.tones[i]; exists && t != ToneNeutral {
			b.WriteRune(markForTone(t))
		}
		for _, d := range sc.digits {
			if d.pos == i+1 && d.pos > from {
				b.WriteRune(d.lit)
			}
		}
	}
	return norm.NFC.String(b.String())
}

// segmenter runs the scanner state machine over one token's lowercase
// letters. Results per start position are memoized so that the nasal-coda
// lookahead does not rescan shared suffixes.
type segmenter struct {
	lower []rune
	memo  map[int]segOutcome
}

type segOutcome struct {
	spans     [][2]int
	ambiguous bool
	ok        bool
}

// from splits lower[start:] into grammar-valid spans: longest valid initial,
// then the longest final forming a valid combination, descending to shorter
// finals when the remainder does not segment. The descent realizes the
// nasal-coda tie-break: the coda-bearing reading is tried before the reading
// that gives the trailing nasal back to the remainder. When two readings
// that differ only by a trailing nasal both segment fully, the longer wins
// but the outcome is marked ambiguous.
func (sg *segmenter) from(start int) segOutcome {
	if start == len(sg.lower) {
		return segOutcome{ok: true}
	}
	if out, seen := sg.memo[start]; seen {
		return out
	}

	initial := longestInitialAt(sg.lower, start)
	rest := start + utf8.RuneCountInString(initial)
	cands := finalCandidates(initial, sg.lower[rest:])

	var out segOutcome
	var chosenFinal string
	for _, fin := range cands {
		end := rest + utf8.RuneCountInString(fin)
		tail := sg.from(end)
		if !tail.ok {
			continue
		}
		if !out.ok {
			out.ok = true
			out.ambiguous = tail.ambiguous
			chosenFinal = fin
			out.spans = make([][2]int, 0, len(tail.spans)+1)
			out.spans = append(out.spans, [2]int{start, end})
			out.spans = append(out.spans, tail.spans...)
			continue
		}
		if isNasalStrip(chosenFinal, fin) {
			out.ambiguous = true
		}
	}

	sg.memo[start] = out
	return out
}

// bestEffort consumes greedy longest initial+final pairs until no valid
// pair exists; rawFrom is the letter index where recognition stopped.
func bestEffort(lower []rune) (spans [][2]int, rawFrom int) {
	pos := 0
	for pos < len(lower) {
		initial := longestInitialAt(lower, pos)
		rest := pos + utf8.RuneCountInString(initial)
		cands := finalCandidates(initial, lower[rest:])
		if len(cands) == 0 {
			return spans, pos
		}
		end := rest + utf8.RuneCountInString(cands[0])
		spans = append(spans, [2]int{pos, end})
		pos = end
	}
	return spans, pos
}

// isNasalStrip reports whether short is long with a trailing nasal run
// removed, e.g. uang/uan, uang/ua, an/a. Only such pairs count as genuine
// coda ambiguity; unrelated alternative splits do not.
func isNasalStrip(long, short string) bool {
	if len(short) >= len(long) || !strings.HasPrefix(long, short) {
		return false
	}
	return strings.Trim(long[len(short):], "ng") == ""
}

func longestInitialAt(r []rune, at int) string {
	end := at + 2
	if end > len(r) {
		end = len(r)
	}
	return LongestInitialPrefix(string(r[at:end]))
}

// Segment scans one token (a run of letters with optional embedded tone
// marks or digits) into syllables. It never fails: anything that cannot be
// segmented passes through verbatim with FullyResolved=false.
func Segment(token string) Result {
	if token == "" {
		return Result{FullyResolved: true}
	}

	sc := scanToken(token)
	if len(sc.surface) == 0 {
		return Result{
			Syllables:     []Syllable{{Surface: token, Raw: true}},
			FullyResolved: false,
		}
	}

	sg := &segmenter{lower: sc.lower, memo: make(map[int]segOutcome)}
	out := sg.from(0)

	spans := out.spans
	rawFrom := len(sc.lower)
	resolved := out.ok && !out.ambiguous && !sc.flagged
	if !out.ok {
		spans, rawFrom = bestEffort(sc.lower)
		resolved = false
	}

	syllables := make([]Syllable, 0, len(spans)+1)
	for _, sp := range spans {
		syl, clean := sc.buildSyllable(sp[0], sp[1])
		if !clean {
			resolved = false
		}
		syllables = append(syllables, syl)
	}

	// Reattach tone numerals to the syllable whose end matches the digit's
	// position. A digit that lands mid-syllable, or on a syllable that
	// already carries a tone, is malformed: neutral, flagged, dropped.
	for _, d := range sc.digits {
		if d.bad || d.pos > rawFrom {
			continue
		}
		attached := false
		for i, sp := range spans {
			if sp[1] != d.pos {
				continue
			}
			attached = true
			if syllables[i].Tone != ToneNeutral {
				resolved = false
			} else {
				syllables[i].Tone = d.tone
			}
			break
		}
		if !attached {
			resolved = false
		}
	}

	if rawFrom < len(sc.lower) {
		syllables = append(syllables, Syllable{
			Surface: sc.rawSlice(rawFrom),
			Raw:     true,
		})
	}

	return Result{Syllables: syllables, FullyResolved: resolved}
}

// buildSyllable assembles the syllable covering lower[start:end]. clean is
// false when the span carries more than one tone-marked vowel.
func (sc *tokenScan) buildSyllable(start, end int) (Syllable, bool) {
	initial := longestInitialAt(sc.lower, start)
	final := string(sc.lower[start+utf8.RuneCountInString(initial) : end])

	tone := ToneNeutral
	clean := true
	for i := start; i < end; i++ {
		t, exists := sc.tones[i]
		if !exists || t == ToneNeutral {
			continue
		}
		if tone != ToneNeutral {
			tone = ToneNeutral
			clean = false
			break
		}
		tone = t
	}

	return Syllable{
		Initial: initial,
		Final:   final,
		Tone:    tone,
		Surface: string(sc.surface[start:end]),
	}, clean
}
