package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ReadBrodaWordlist parses a dictionary in Peter Broda's format: one
// WORD;SCORE pair per line. Scores gate inclusion — words below minScore are
// dropped — and are otherwise discarded; the fill engine treats all surviving
// words alike. The same normalization as ReadWordlist applies.
func ReadBrodaWordlist(r io.Reader, minScore int) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed line %d: expected WORD;SCORE, got %q", lineNum, line)
		}

		text := strings.ToUpper(strings.TrimSpace(parts[0]))
		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed line %d: invalid score %q: %w", lineNum, parts[1], err)
		}

		if score < minScore || len(text) < 2 || !allLetters(text) {
			continue
		}
		words = append(words, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(words)
	return words, nil
}

// LoadBrodaWordlist reads a Broda-format dictionary file.
func LoadBrodaWordlist(path string, minScore int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	words, err := ReadBrodaWordlist(f, minScore)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return words, nil
}
