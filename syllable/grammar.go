package syllable

import (
	"sort"
	"strings"
)

// initialsByLength lists every valid initial, longest first, so that prefix
// matching prefers the digraphs zh/ch/sh over their single-letter substrings.
// The orthographic onsets y and w are included because segmentation operates
// on written pinyin, where standalone i/u/ü syllables are spelled yi/wu/yu.
var initialsByLength = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f",
	"d", "t", "n", "l",
	"g", "k", "h",
	"j", "q", "x",
	"r", "z", "c", "s",
	"y", "w",
}

// combinations maps each initial (the empty string stands for vowel-initial
// syllables) to the finals it may precede. Finals are surface spellings:
// ü after j/q/x/y is written as plain u, so jue/quan/xun appear here as
// ue/uan/un, while nü/lüe keep the diaeresis.
var combinations = map[string]string{
	"":   "a o e er ai ei ao ou an en ang eng",
	"b":  "a o ai ei ao an en ang eng i ie iao ian in ing u",
	"p":  "a o ai ei ao ou an en ang eng i ie iao ian in ing u",
	"m":  "a o e ai ei ao ou an en ang eng i ie iao iu ian in ing u",
	"f":  "a o ei ou an en ang eng u",
	"d":  "a e ai ei ao ou an en ang eng ong i ia ie iao iu ian ing u uo ui uan un",
	"t":  "a e ai ao ou an ang eng ong i ie iao ian ing u uo ui uan un",
	"n":  "a e ai ei ao ou an en ang eng ong i ie iao iu ian in iang ing u uo uan ü üe",
	"l":  "a o e ai ei ao ou an ang eng ong i ia ie iao iu ian in iang ing u uo uan un ü üe",
	"g":  "a e ai ei ao ou an en ang eng ong u ua uo uai ui uan un uang",
	"k":  "a e ai ao ou an en ang eng ong u ua uo uai ui uan un uang",
	"h":  "a e ai ei ao ou an en ang eng ong u ua uo uai ui uan un uang",
	"j":  "i ia ie iao iu ian in iang ing iong u ue uan un",
	"q":  "i ia ie iao iu ian in iang ing iong u ue uan un",
	"x":  "i ia ie iao iu ian in iang ing iong u ue uan un",
	"zh": "a e i ai ei ao ou an en ang eng ong u ua uo uai ui uan un uang",
	"ch": "a e i ai ao ou an en ang eng ong u ua uo uai ui uan un uang",
	"sh": "a e i ai ei ao ou an en ang eng u ua uo uai ui uan un uang",
	"r":  "e i ao ou an en ang eng ong u ua uo ui uan un",
	"z":  "a e i ai ei ao ou an en ang eng ong u uo ui uan un",
	"c":  "a e i ai ao ou an en ang eng ong u uo ui uan un",
	"s":  "a e i ai ao ou an en ang eng ong u uo ui uan un",
	"y":  "a o e i u ao ou an in ang ing ong ue uan un",
	"w":  "a o ai ei an en ang eng u",
}

var (
	initialSet     map[string]bool
	finalSet       map[string]bool
	combinationSet map[string]map[string]bool
	finalsByLength []string
)

func init() {
	initialSet = make(map[string]bool, len(initialsByLength))
	for _, ini := range initialsByLength {
		initialSet[ini] = true
	}

	finalSet = make(map[string]bool)
	combinationSet = make(map[string]map[string]bool, len(combinations))
	for ini, list := range combinations {
		finals := strings.Fields(list)
		set := make(map[string]bool, len(finals))
		for _, fin := range finals {
			set[fin] = true
			finalSet[fin] = true
		}
		combinationSet[ini] = set
	}

	finalsByLength = make([]string, 0, len(finalSet))
	for fin := range finalSet {
		finalsByLength = append(finalsByLength, fin)
	}
	sort.Slice(finalsByLength, func(i, j int) bool {
		a, b := finalsByLength[i], finalsByLength[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
}

// IsValidInitial reports whether s is a valid Mandarin initial.
func IsValidInitial(s string) bool {
	return initialSet[s]
}

// IsValidFinal reports whether s is a valid final in surface spelling.
func IsValidFinal(s string) bool {
	return finalSet[s]
}

// IsValidCombination reports whether the initial+final pair forms a valid
// syllable. An empty initial checks the standalone (vowel-initial) finals.
func IsValidCombination(initial, final string) bool {
	set, ok := combinationSet[initial]
	if !ok {
		return false
	}
	return set[final]
}

// LongestInitialPrefix returns the longest valid initial at the start of s,
// or "" when s does not begin with one.
func LongestInitialPrefix(s string) string {
	for _, ini := range initialsByLength {
		if strings.HasPrefix(s, ini) {
			return ini
		}
	}
	return ""
}

// LongestFinalPrefix returns the longest valid final at the start of s,
// or "" when s does not begin with one. The match ignores which initial
// precedes it; use IsValidCombination to check the pair.
func LongestFinalPrefix(s string) string {
	for _, fin := range finalsByLength {
		if strings.HasPrefix(s, fin) {
			return fin
		}
	}
	return ""
}

// finalCandidates returns every final that begins rest (a rune slice) and
// forms a valid combination with initial, longest first. The scanner walks
// this list when resolving nasal-coda ambiguity: the coda-bearing reading
// is tried before its stripped variants.
func finalCandidates(initial string, rest []rune) []string {
	var cands []string
	for _, fin := range finalsByLength {
		if !combinationSet[initial][fin] {
			continue
		}
		if hasRunePrefix(rest, fin) {
			cands = append(cands, fin)
		}
	}
	return cands
}

func hasRunePrefix(r []rune, prefix string) bool {
	p := []rune(prefix)
	if len(p) > len(r) {
		return false
	}
	for i, pr := range p {
		if r[i] != pr {
			return false
		}
	}
	return true
}
