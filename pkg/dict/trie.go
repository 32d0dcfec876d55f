// Package dict provides the dictionary indexes the fill engine searches
// against: a letter trie answering wildcard pattern queries and a bigram
// frequency table, both with compact binary forms on disk.
package dict

import "github.com/crossfill/xwords/pkg/grid"

// Pattern is a fixed-length character sequence over 'A'..'Z' plus the space
// wildcard. grid.SlotView satisfies it; tests can use BytePattern.
type Pattern interface {
	Len() int
	At(i int) byte
}

// BytePattern adapts a byte slice to the Pattern interface.
type BytePattern []byte

func (p BytePattern) Len() int      { return len(p) }
func (p BytePattern) At(i int) byte { return p[i] }

const alphabet = 26

// node is one trie node. Children are indexed by letter; terminal marks the
// end of a dictionary word.
type node struct {
	terminal bool
	children [alphabet]*node
}

func (n *node) child(c byte) *node {
	if c < 'A' || c > 'Z' {
		return nil
	}
	return n.children[c-'A']
}

// Trie is a prefix tree over the uppercase word list. It is read-only after
// construction and safe to share across goroutines.
type Trie struct {
	root node
	size int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie { return &Trie{} }

// BuildTrie constructs a trie from words. Words must already be normalized to
// uppercase A-Z; the trie is case-sensitive.
func BuildTrie(words []string) *Trie {
	t := NewTrie()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds one word, creating missing children and marking the final node
// terminal.
func (t *Trie) Insert(word string) {
	n := &t.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'A'
		if n.children[c] == nil {
			n.children[c] = &node{}
		}
		n = n.children[c]
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Len returns the number of words in the trie.
func (t *Trie) Len() int { return t.size }

// Words returns every dictionary word of the pattern's length matching it
// position-wise, with space matching any letter. The order is stable: always
// ascending by letter at each position.
func (t *Trie) Words(pattern Pattern) []string {
	var out []string
	prefix := make([]byte, 0, pattern.Len())
	t.root.words(pattern, 0, prefix, &out)
	return out
}

func (n *node) words(pattern Pattern, depth int, prefix []byte, out *[]string) {
	if depth == pattern.Len() {
		if n.terminal {
			*out = append(*out, string(prefix))
		}
		return
	}
	c := pattern.At(depth)
	if c == grid.Empty {
		for i, child := range n.children {
			if child == nil {
				continue
			}
			child.words(pattern, depth+1, append(prefix, 'A'+byte(i)), out)
		}
		return
	}
	if child := n.child(c); child != nil {
		child.words(pattern, depth+1, append(prefix, c), out)
	}
}

// IsFillable reports whether at least one dictionary word of the pattern's
// length matches it. A pattern with no spaces reports its terminal flag.
func (t *Trie) IsFillable(pattern Pattern) bool {
	return t.root.fillable(pattern, 0)
}

func (n *node) fillable(pattern Pattern, depth int) bool {
	if depth == pattern.Len() {
		return n.terminal
	}
	c := pattern.At(depth)
	if c == grid.Empty {
		for _, child := range n.children {
			if child != nil && child.fillable(pattern, depth+1) {
				return true
			}
		}
		return false
	}
	child := n.child(c)
	return child != nil && child.fillable(pattern, depth+1)
}
