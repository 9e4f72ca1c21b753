package bench

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	pinyin "github.com/jamesainslie/go-pinyin"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // boundary match tolerance, in letters
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration: exact boundary
// matching, precision and recall weighted equally.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Boundaries returns the syllable boundary positions of text: for each
// space, the count of letters preceding it. Tone diacritics and tone
// digits are ignored so that diacritic and numeral notations compare
// equal.
func Boundaries(text string) []int {
	stripped, _, _ := transform.String(stripMarks, text)

	var bounds []int
	count := 0
	for _, r := range stripped {
		switch {
		case unicode.IsSpace(r):
			if len(bounds) == 0 || bounds[len(bounds)-1] != count {
				bounds = append(bounds, count)
			}
		case unicode.IsDigit(r):
			// tone digit, not a letter
		default:
			count++
		}
	}
	return bounds
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Compute(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// Compute derives ratio metrics from raw counts.
func Compute(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// EvaluateCase normalizes c.Raw and scores its syllable boundaries against
// c.Want. exact reports whether the output matched the canonical form
// character for character.
func EvaluateCase(n *pinyin.Normalizer, c Case, cfg Config) (m Metrics, exact bool) {
	got := n.Normalize(c.Raw).Text
	m = Evaluate(Boundaries(got), Boundaries(c.Want), cfg)
	return m, got == c.Want
}
