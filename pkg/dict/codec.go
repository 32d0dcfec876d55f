package dict

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// On-disk formats. Both files open with a four-byte magic and a version byte;
// integers are little-endian. The trie is laid out preorder: each node is a
// flags byte (bit 0 = terminal) and a child count, followed by one labeled
// child record per child. The bigram table is the full 26x26 count matrix.
const (
	trieMagic    = "XWTR"
	bigramMagic  = "XWBG"
	codecVersion = 1
)

// Encode writes the trie's binary form to w.
func (t *Trie) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(trieMagic); err != nil {
		return err
	}
	if err := bw.WriteByte(codecVersion); err != nil {
		return err
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(t.size))
	if _, err := bw.Write(count[:]); err != nil {
		return err
	}
	if err := encodeNode(bw, &t.root); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeNode(bw *bufio.Writer, n *node) error {
	var flags byte
	if n.terminal {
		flags |= 1
	}
	childCount := byte(0)
	for _, child := range n.children {
		if child != nil {
			childCount++
		}
	}
	if err := bw.WriteByte(flags); err != nil {
		return err
	}
	if err := bw.WriteByte(childCount); err != nil {
		return err
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		if err := bw.WriteByte('A' + byte(i)); err != nil {
			return err
		}
		if err := encodeNode(bw, child); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTrie reads a trie previously written by Encode.
func DecodeTrie(r io.Reader) (*Trie, error) {
	br := bufio.NewReader(r)
	if err := readHeader(br, trieMagic); err != nil {
		return nil, err
	}
	var count [4]byte
	if _, err := io.ReadFull(br, count[:]); err != nil {
		return nil, fmt.Errorf("trie header: %w", err)
	}
	t := NewTrie()
	if err := decodeNode(br, &t.root); err != nil {
		return nil, err
	}
	t.size = int(binary.LittleEndian.Uint32(count[:]))
	return t, nil
}

func decodeNode(br *bufio.Reader, n *node) error {
	flags, err := br.ReadByte()
	if err != nil {
		return fmt.Errorf("trie node: %w", err)
	}
	n.terminal = flags&1 != 0
	childCount, err := br.ReadByte()
	if err != nil {
		return fmt.Errorf("trie node: %w", err)
	}
	if childCount > alphabet {
		return fmt.Errorf("trie node: impossible child count %d", childCount)
	}
	for i := byte(0); i < childCount; i++ {
		letter, err := br.ReadByte()
		if err != nil {
			return fmt.Errorf("trie child: %w", err)
		}
		if letter < 'A' || letter > 'Z' {
			return fmt.Errorf("trie child: invalid letter %#x", letter)
		}
		child := &node{}
		n.children[letter-'A'] = child
		if err := decodeNode(br, child); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the bigram table's binary form to w.
func (b *BigramTable) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(bigramMagic); err != nil {
		return err
	}
	if err := bw.WriteByte(codecVersion); err != nil {
		return err
	}
	var cell [8]byte
	for i := 0; i < alphabet; i++ {
		for j := 0; j < alphabet; j++ {
			binary.LittleEndian.PutUint64(cell[:], b.counts[i][j])
			if _, err := bw.Write(cell[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// DecodeBigrams reads a bigram table previously written by Encode.
func DecodeBigrams(r io.Reader) (*BigramTable, error) {
	br := bufio.NewReader(r)
	if err := readHeader(br, bigramMagic); err != nil {
		return nil, err
	}
	b := &BigramTable{}
	var cell [8]byte
	for i := 0; i < alphabet; i++ {
		for j := 0; j < alphabet; j++ {
			if _, err := io.ReadFull(br, cell[:]); err != nil {
				return nil, fmt.Errorf("bigram table: %w", err)
			}
			b.counts[i][j] = binary.LittleEndian.Uint64(cell[:])
		}
	}
	return b, nil
}

func readHeader(br *bufio.Reader, magic string) error {
	var header [5]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if string(header[:4]) != magic {
		return fmt.Errorf("header: bad magic %q", header[:4])
	}
	if header[4] != codecVersion {
		return fmt.Errorf("header: unsupported version %d", header[4])
	}
	return nil
}
