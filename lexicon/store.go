// Package lexicon provides a CSV-backed word-to-pinyin store.
//
// Rows are word,pinyin pairs. Pinyin written through Put is canonicalized
// first, so the file always holds normalized readings. Saves are atomic
// (write to a temp file, then rename) and reads watch the file's
// modification time: an external edit invalidates the in-memory state and
// the suggestion cache on the next lookup.
package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	pinyin "github.com/jamesainslie/go-pinyin"
)

// suggestionCacheSize bounds the per-word suggestion cache.
const suggestionCacheSize = 4096

// Entry is one reading of a word.
type Entry struct {
	Word   string
	Pinyin string
}

// Store is a CSV-backed lexicon. It is safe for concurrent use.
type Store struct {
	path string
	norm *pinyin.Normalizer

	mu      sync.RWMutex
	entries map[string][]Entry
	modTime time.Time
	cache   *lru.Cache[string, []string]
}

// Option configures a Store.
type Option func(*Store)

// WithNormalizer sets the normalizer used by Put and Suggestions
// (default: a diacritic-tone normalizer with default options).
func WithNormalizer(n *pinyin.Normalizer) Option {
	return func(s *Store) {
		if n != nil {
			s.norm = n
		}
	}
}

// Open loads the lexicon at path.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path: path,
		norm: pinyin.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.New[string, []string](suggestionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating suggestion cache: %w", err)
	}
	s.cache = cache

	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// reload replaces the in-memory entries from the file and drops the
// suggestion cache. Callers hold the write lock, except Open.
func (s *Store) reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return fmt.Errorf("opening lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat lexicon: %w", err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("reading lexicon: %w", err)
	}

	entries := make(map[string][]Entry, len(records))
	for i, rec := range records {
		if len(rec) < 2 || rec[0] == "" {
			return fmt.Errorf("%w: line %d", ErrMalformedRow, i+1)
		}
		entries[rec[0]] = append(entries[rec[0]], Entry{Word: rec[0], Pinyin: rec[1]})
	}

	s.entries = entries
	s.modTime = info.ModTime()
	s.cache.Purge()
	return nil
}

// ensureFresh reloads the file when its modification time has moved past
// the one observed at the last load.
func (s *Store) ensureFresh() error {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return fmt.Errorf("stat lexicon: %w", err)
	}

	s.mu.RLock()
	fresh := info.ModTime().Equal(s.modTime)
	s.mu.RUnlock()
	if fresh {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if info.ModTime().Equal(s.modTime) {
		return nil
	}
	return s.reload()
}

// Lookup returns the stored readings for word, reloading first if the file
// changed on disk.
func (s *Store) Lookup(word string) ([]Entry, error) {
	if err := s.ensureFresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.entries[word]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Suggestions returns the canonical readings for word, each piped through
// the normalizer. Results are cached per word; the cache drops whenever the
// file is reloaded.
func (s *Store) Suggestions(word string) ([]string, error) {
	if err := s.ensureFresh(); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(word); ok {
		return cached, nil
	}

	s.mu.RLock()
	entries := s.entries[word]
	s.mu.RUnlock()

	suggestions := make([]string, 0, len(entries))
	for _, e := range entries {
		suggestions = append(suggestions, s.norm.Normalize(e.Pinyin).Text)
	}
	s.cache.Add(word, suggestions)
	return suggestions, nil
}

// Put canonicalizes raw pinyin, records it as a reading of word, and saves.
// A reading the word already has is not duplicated.
func (s *Store) Put(word, rawPinyin string) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrMalformedRow)
	}
	canonical := s.norm.Normalize(rawPinyin).Text

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries[word] {
		if e.Pinyin == canonical {
			return nil
		}
	}
	s.entries[word] = append(s.entries[word], Entry{Word: word, Pinyin: canonical})
	s.cache.Remove(word)

	return s.saveLocked()
}

// Save writes the lexicon to disk atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked writes all rows to a temp file in the lexicon's directory and
// renames it over the original, then adopts the new modification time so
// the write does not look like an external change.
func (s *Store) saveLocked() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".lexicon-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	words := make([]string, 0, len(s.entries))
	for word := range s.entries {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		for _, e := range s.entries[word] {
			if err := w.Write([]string{e.Word, e.Pinyin}); err != nil {
				_ = tmp.Close()
				_ = os.Remove(tmpName)
				return fmt.Errorf("writing row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("flushing rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing lexicon: %w", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat lexicon: %w", err)
	}
	s.modTime = info.ModTime()
	return nil
}

// Len returns the number of distinct words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close releases the in-memory state. The store holds no open file handle
// between operations, so Close never fails; it exists so callers can treat
// the store like other closable resources.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.cache.Purge()
	return nil
}
