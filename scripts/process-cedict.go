//go:build ignore

// Process a CC-CEDICT dictionary dump into corpus format.
// Usage: go run ./scripts/process-cedict.go [-in cedict_ts.u8] [-out testdata/corpus/cedict.tsv] [-limit N]
//
// Each dictionary entry looks like:
//
//	大樓 大楼 [da4 lou2] /building/
//
// The bracketed field is the gold syllable segmentation in numeral
// notation. The script emits one case per entry: the raw side is the
// numeral reading with spaces removed, the canonical side is the
// diacritic rendering of the gold segmentation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	pinyin "github.com/jamesainslie/go-pinyin"
)

func main() {
	inPath := flag.String("in", "cedict_ts.u8", "Path to CC-CEDICT dump")
	outPath := flag.String("out", "testdata/corpus/cedict.tsv", "Output corpus file")
	limit := flag.Int("limit", 2000, "Maximum number of cases (0 for all)")
	flag.Parse()

	in, err := os.Open(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	n := pinyin.New()
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: https://www.mdbg.net/chinese/dictionary?page=cc-cedict\n")
	fmt.Fprintf(w, "# Title: CC-CEDICT multi-syllable readings\n")
	fmt.Fprintf(w, "\n")

	scanner := bufio.NewScanner(in)
	count := 0
	skipped := 0

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		gold, ok := readingOf(line)
		if !ok {
			continue
		}

		// Single-syllable entries make trivial cases; skip them.
		if !strings.Contains(gold, " ") {
			continue
		}

		res := n.Normalize(gold)
		if !res.FullyResolved {
			// Erhua, non-syllabic tokens, and other readings the
			// grammar table does not cover.
			skipped++
			continue
		}

		raw := strings.ReplaceAll(gold, " ", "")
		fmt.Fprintf(w, "%s\t%s\n", raw, res.Text)
		count++
		if *limit > 0 && count >= *limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d cases to %s (%d entries skipped)\n", count, *outPath, skipped)
}

// readingOf extracts the bracketed numeral reading from a dictionary line.
func readingOf(line string) (string, bool) {
	start := strings.Index(line, "[")
	if start == -1 {
		return "", false
	}
	end := strings.Index(line[start:], "]")
	if end == -1 {
		return "", false
	}
	reading := strings.ToLower(strings.TrimSpace(line[start+1 : start+end]))
	if reading == "" {
		return "", false
	}
	return reading, true
}
