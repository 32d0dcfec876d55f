package dict

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Conventional index paths in the working directory.
const (
	DefaultTriePath    = "xwords-trie.bin"
	DefaultBigramsPath = "xwords-bigrams.bin"
)

// LoadError is returned when a dictionary or serialized index cannot be
// opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ReadWordlist parses a dictionary from r: a JSON object whose keys are the
// words (values are ignored). Words are uppercased; anything shorter than two
// letters or containing a non-letter is dropped. The result is sorted.
func ReadWordlist(r io.Reader) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	words := make([]string, 0, len(raw))
	for w := range raw {
		w = strings.ToUpper(w)
		if len(w) < 2 || !allLetters(w) {
			continue
		}
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}

func allLetters(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// LoadWordlist reads a JSON dictionary file.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	words, err := ReadWordlist(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return words, nil
}

// BuildIndexes constructs both indexes from a word list.
func BuildIndexes(words []string) (*Trie, *BigramTable) {
	return BuildTrie(words), BuildBigrams(words)
}

// SaveDefault writes both indexes to their conventional paths.
func SaveDefault(t *Trie, b *BigramTable) error {
	if err := saveFile(DefaultTriePath, t.Encode); err != nil {
		return err
	}
	return saveFile(DefaultBigramsPath, b.Encode)
}

func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := encode(f); err != nil {
		f.Close()
		return &LoadError{Path: path, Err: err}
	}
	return f.Close()
}

// LoadDefault reads both indexes from their conventional paths, failing with
// a LoadError if either file is missing or malformed.
func LoadDefault() (*Trie, *BigramTable, error) {
	trie, err := loadTrieFile(DefaultTriePath)
	if err != nil {
		return nil, nil, err
	}
	bigrams, err := loadBigramsFile(DefaultBigramsPath)
	if err != nil {
		return nil, nil, err
	}
	return trie, bigrams, nil
}

func loadTrieFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	t, err := DecodeTrie(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

func loadBigramsFile(path string) (*BigramTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	b, err := DecodeBigrams(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return b, nil
}
