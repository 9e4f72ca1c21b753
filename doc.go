// Package pinyin canonicalizes Hanyu Pinyin romanizations.
//
// Input arrives inconsistently formatted: syllables concatenated without
// boundaries, tones written as diacritics or as trailing numerals 1-5, or
// both mixed in one string. Normalize produces the canonical form, one
// space between syllables and tones as diacritics on the correct vowel:
//
//	res := pinyin.Normalize("dàlóu gōnglù")
//	fmt.Println(res.Text) // "dà lóu gōng lù"
//
//	res = pinyin.Normalize("ni3hao3")
//	fmt.Println(res.Text) // "nǐ hǎo"
//
// Normalization is total: it never fails. Substrings that do not decompose
// into valid Mandarin syllables pass through unchanged, and the result's
// FullyResolved flag is cleared so callers can surface a warning without
// losing data.
//
// The letter v is read as ü, the usual keyboard substitute ("lv3" means
// lǚ). This is the one case where output letters differ from input.
//
// # Thread Safety
//
// The syllable grammar is built once at package init and never mutated.
// A Normalizer holds no per-call state, so any number of goroutines may
// share one.
package pinyin
