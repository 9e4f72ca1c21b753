// Package bench provides evaluation utilities for pinyin normalization.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from leading comment lines.
// Returns the header, remaining text after the header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := text[bodyStart:]
	body = strings.TrimSpace(body)

	return h, body, nil
}

// Case is one evaluation pair: a raw romanization and its canonical form.
type Case struct {
	Raw  string
	Want string
}

// ParseCases splits body into raw<TAB>canonical pairs, one per line.
// Blank lines and comment lines are skipped.
func ParseCases(body string) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(strings.NewReader(body))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		raw, want, found := strings.Cut(line, "\t")
		if !found || strings.TrimSpace(want) == "" {
			return nil, fmt.Errorf("line %d: expected raw<TAB>canonical, got %q", lineNum, line)
		}
		cases = append(cases, Case{Raw: raw, Want: strings.TrimSpace(want)})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan cases: %w", err)
	}
	return cases, nil
}

// Corpus represents a loaded evaluation file.
type Corpus struct {
	ID     string // filename without extension
	Source string
	Title  string
	Cases  []Case
}

// LoadFile loads and parses a corpus file.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	cases, err := ParseCases(body)
	if err != nil {
		return nil, fmt.Errorf("parse cases: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Corpus{
		ID:     id,
		Source: header.Source,
		Title:  header.Title,
		Cases:  cases,
	}, nil
}

// LoadCorpus loads all .tsv corpus files from a directory.
func LoadCorpus(dir string) ([]*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var corpora []*Corpus
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".tsv" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		corpus, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		corpora = append(corpora, corpus)
	}

	return corpora, nil
}
