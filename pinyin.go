package pinyin

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/jamesainslie/go-pinyin/syllable"
)

// Span marks a byte range of the raw input that did not normalize cleanly.
type Span struct {
	Start int
	End   int
}

// Result is the outcome of normalizing one string. FullyResolved is false
// when any span passed through unrecognized or carried a malformed tone;
// the text itself is always usable.
type Result struct {
	Text          string
	FullyResolved bool
	Flagged       []Span
}

// Normalizer canonicalizes pinyin strings. It is safe for concurrent use.
type Normalizer struct {
	numericTones bool
	logger       *slog.Logger
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Normalizer{
		numericTones: cfg.numericTones,
		logger:       cfg.logger,
	}
}

var defaultNormalizer = New()

// Normalize canonicalizes raw with default options: diacritic tones,
// default logger. Idempotent: normalizing the output returns it unchanged.
func Normalize(raw string) Result {
	return defaultNormalizer.Normalize(raw)
}

// Normalize canonicalizes raw. Word runs are segmented into syllables and
// joined with single spaces, whitespace runs collapse to one space, and
// punctuation is preserved in place. Leading and trailing whitespace is
// trimmed; nothing internal is dropped.
func (n *Normalizer) Normalize(raw string) Result {
	segs := splitSegments(raw)

	for len(segs) > 0 && segs[0].kind == segSpace {
		segs = segs[1:]
	}
	for len(segs) > 0 && segs[len(segs)-1].kind == segSpace {
		segs = segs[:len(segs)-1]
	}

	res := Result{FullyResolved: true}
	var b strings.Builder

	for _, seg := range segs {
		switch seg.kind {
		case segSpace:
			b.WriteByte(' ')
		case segPunct:
			b.WriteString(seg.text)
		case segWord:
			r := syllable.Segment(seg.text)
			if !r.FullyResolved {
				res.FullyResolved = false
				res.Flagged = append(res.Flagged, Span{Start: seg.start, End: seg.end})
				n.logger.Debug("unresolved pinyin span",
					"text", seg.text, "start", seg.start, "end", seg.end)
			}
			for i, syl := range r.Syllables {
				if i > 0 {
					b.WriteByte(' ')
				}
				if n.numericTones {
					b.WriteString(syl.TextNumeric())
				} else {
					b.WriteString(syl.Text())
				}
			}
		}
	}

	res.Text = b.String()
	return res
}

const (
	segWord = iota
	segSpace
	segPunct
)

// segment is one run of the raw input: a word (letters with optional
// embedded tone digits and combining marks), whitespace, or punctuation.
type segment struct {
	kind  int
	text  string
	start int
	end   int
}

// splitSegments partitions raw into runs. Digits join a word run only when
// they follow a letter; a standalone number is punctuation and passes
// through untouched.
func splitSegments(raw string) []segment {
	var segs []segment
	cur := -1
	start := 0

	for i, r := range raw {
		var kind int
		switch {
		case unicode.IsSpace(r):
			kind = segSpace
		case unicode.IsLetter(r) || unicode.Is(unicode.Mn, r):
			kind = segWord
		case r >= '0' && r <= '9' && cur == segWord:
			kind = segWord
		default:
			kind = segPunct
		}

		if cur == -1 {
			cur, start = kind, i
			continue
		}
		if kind != cur {
			segs = append(segs, segment{kind: cur, text: raw[start:i], start: start, end: i})
			cur, start = kind, i
		}
	}
	if cur != -1 {
		segs = append(segs, segment{kind: cur, text: raw[start:], start: start, end: len(raw)})
	}
	return segs
}
