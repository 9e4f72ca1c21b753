package syllable

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tone is one of the five canonical Mandarin tones.
type Tone int

const (
	ToneNeutral Tone = iota // unmarked (the "fifth" tone)
	Tone1                   // high level, macron
	Tone2                   // rising, acute accent
	Tone3                   // low dipping, caron
	Tone4                   // falling, grave accent
)

// Combining marks used by pinyin. The diaeresis is part of the letter ü and
// must never be interpreted as a tone.
const (
	markGrave     = '\u0300'
	markAcute     = '\u0301'
	markMacron    = '\u0304'
	markBreve     = '\u0306'
	markDiaeresis = '\u0308'
	markCaron     = '\u030C'
)

// toneForMark maps a combining diacritic to its tone. The breve is accepted
// as a third-tone mark because it is a common substitute for the caron in
// hand-typed input.
func toneForMark(r rune) (Tone, bool) {
	switch r {
	case markMacron:
		return Tone1, true
	case markAcute:
		return Tone2, true
	case markCaron, markBreve:
		return Tone3, true
	case markGrave:
		return Tone4, true
	}
	return ToneNeutral, false
}

// markForTone returns the combining diacritic for t, or 0 for neutral.
func markForTone(t Tone) rune {
	switch t {
	case Tone1:
		return markMacron
	case Tone2:
		return markAcute
	case Tone3:
		return markCaron
	case Tone4:
		return markGrave
	}
	return 0
}

// ToneFromDigit maps a trailing numeral to a Tone. Digits 1-4 map directly;
// 5 and 0 both denote the neutral tone. Anything else is malformed and
// reported via ok=false.
func ToneFromDigit(d int) (Tone, bool) {
	switch d {
	case 1, 2, 3, 4:
		return Tone(d), true
	case 0, 5:
		return ToneNeutral, true
	}
	return ToneNeutral, false
}

// Digit returns the conventional numeral for t: 1-4, or 5 for neutral.
func (t Tone) Digit() int {
	if t == ToneNeutral {
		return 5
	}
	return int(t)
}

func (t Tone) String() string {
	if t == ToneNeutral {
		return "neutral"
	}
	return "tone" + strconv.Itoa(int(t))
}

// ApplyTone places the diacritic for t on the priority vowel of base and
// returns the composed form. The placement rule is a > o > e, then the
// second vowel of the iu/ui diphthongs, then i, u, ü. Neutral tone or a
// base without vowels returns base unchanged. The result carries exactly
// one tone mark unless t is neutral.
func ApplyTone(base string, t Tone) string {
	mark := markForTone(t)
	if mark == 0 {
		return base
	}
	idx := markIndex(base)
	if idx < 0 {
		return base
	}

	var b strings.Builder
	for i, r := range []rune(base) {
		b.WriteRune(r)
		if i == idx {
			b.WriteRune(mark)
		}
	}
	return norm.NFC.String(b.String())
}

// markIndex returns the rune index of the vowel that carries the tone mark,
// or -1 when base has no vowel.
func markIndex(base string) int {
	runes := []rune(base)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	for _, v := range [...]rune{'a', 'o', 'e'} {
		for i, r := range lower {
			if r == v {
				return i
			}
		}
	}

	// iu and ui mark the second vowel.
	for i := 0; i+1 < len(lower); i++ {
		if (lower[i] == 'i' && lower[i+1] == 'u') || (lower[i] == 'u' && lower[i+1] == 'i') {
			return i + 1
		}
	}

	for _, v := range [...]rune{'i', 'u', 'ü'} {
		for i, r := range lower {
			if r == v {
				return i
			}
		}
	}
	return -1
}

// StripTone removes the tone diacritic from s, returning the plain syllable
// and the tone it carried. A syllable without a tone mark is neutral. More
// than one tone mark is malformed: the result is neutral with ok=false.
// The ü diaeresis survives stripping; it is spelling, not tone.
func StripTone(s string) (plain string, t Tone, ok bool) {
	var b strings.Builder
	marks := 0
	t = ToneNeutral

	for _, r := range norm.NFD.String(s) {
		if tone, isTone := toneForMark(r); isTone {
			marks++
			t = tone
			continue
		}
		b.WriteRune(r)
	}

	if marks > 1 {
		return norm.NFC.String(b.String()), ToneNeutral, false
	}
	return norm.NFC.String(b.String()), t, true
}
