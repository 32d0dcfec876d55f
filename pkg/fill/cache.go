package fill

import (
	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/grid"
)

// The per-search caches key on a hash of a slot view's characters rather
// than on the grid: many grids reach the same slot state through different
// paths, and those all hit the same entry.

// CachedWords memoizes trie word lookups by slot-view hash.
type CachedWords struct {
	entries map[uint64][]string
	hits    uint64
	misses  uint64
}

// NewCachedWords returns an empty words cache.
func NewCachedWords() *CachedWords {
	return &CachedWords{entries: make(map[uint64][]string)}
}

// Words returns the dictionary words matching v, consulting the trie on miss.
func (c *CachedWords) Words(v grid.SlotView, trie *dict.Trie) []string {
	key := v.Hash()
	if words, ok := c.entries[key]; ok {
		c.hits++
		return words
	}
	c.misses++
	words := trie.Words(v)
	c.entries[key] = words
	return words
}

// Stats returns the hit and miss counts since the last reset.
func (c *CachedWords) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

// Reset clears the cache between independent searches.
func (c *CachedWords) Reset() {
	c.entries = make(map[uint64][]string)
	c.hits, c.misses = 0, 0
}

// CachedFillable memoizes viability checks by slot-view hash.
type CachedFillable struct {
	entries map[uint64]bool
}

// NewCachedFillable returns an empty viability cache.
func NewCachedFillable() *CachedFillable {
	return &CachedFillable{entries: make(map[uint64]bool)}
}

// Fillable reports whether at least one dictionary word matches v, consulting
// the trie on miss.
func (c *CachedFillable) Fillable(v grid.SlotView, trie *dict.Trie) bool {
	key := v.Hash()
	if ok, cached := c.entries[key]; cached {
		return ok
	}
	ok := trie.IsFillable(v)
	c.entries[key] = ok
	return ok
}

// Reset clears the cache between independent searches.
func (c *CachedFillable) Reset() {
	c.entries = make(map[uint64]bool)
}
