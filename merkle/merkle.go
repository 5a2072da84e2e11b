package merkle

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"iter"
)

// Domain separation prefixes per RFC 6962 §2.1: a leaf digest can never be
// replayed as an interior node digest.
const (
	// LeafSeed is prepended to payloads before hashing them into a leaf.
	LeafSeed byte = 0x00
	// NodeSeed is prepended to child digests before hashing an interior node.
	NodeSeed byte = 0x01
)

// IndexError reports a leaf index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("leaf index %d out of range with %d leaves", e.Index, e.Len)
}

// Tree is an ordered, mutable Merkle hash tree.
//
// The tree stores one digest per ingested payload and computes its root on
// demand by pairwise bottom-up reduction, so the root is always a pure
// function of the ordered leaf sequence and the hash algorithm; nothing is
// cached between Digest calls. Leaves can be appended, inserted, replaced
// and removed like a regular sequence, each mutation hashing the new
// payload with the LeafSeed prefix before storing it.
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	algo   Algorithm
	leaves [][]byte
}

// New builds a tree on the named hash algorithm and ingests the given
// payloads as its initial leaves, in order. The name must resolve through
// LookupAlgorithm.
func New(algorithm string, payloads ...[]byte) (*Tree, error) {
	algo, err := LookupAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return NewWith(algo, payloads...), nil
}

// NewWith builds a tree on a caller-supplied algorithm descriptor.
func NewWith(algo Algorithm, payloads ...[]byte) *Tree {
	t := &Tree{algo: algo}
	t.Append(payloads...)
	return t
}

// Name returns the canonical name of the underlying hash algorithm.
func (t *Tree) Name() string { return t.algo.Name() }

// BlockSize returns the block size of the underlying hash in bytes.
func (t *Tree) BlockSize() int { return t.algo.BlockSize() }

// DigestSize returns the digest size of the underlying hash in bytes.
func (t *Tree) DigestSize() int { return t.algo.DigestSize() }

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.leaves) }

func (t *Tree) digestLeaf(payload []byte) []byte {
	h := t.algo.New()
	h.Write([]byte{LeafSeed})
	h.Write(payload)
	return h.Sum(nil)
}

func (t *Tree) check(i int) error {
	if i < 0 || i >= len(t.leaves) {
		return &IndexError{Index: i, Len: len(t.leaves)}
	}
	return nil
}

// Append hashes the payloads and adds them as leaves on the right side of
// the tree, in order.
func (t *Tree) Append(payloads ...[]byte) {
	for _, p := range payloads {
		t.leaves = append(t.leaves, t.digestLeaf(p))
	}
}

// Insert hashes the payload and inserts its leaf at index i, shifting
// later leaves right. i == Len() appends.
func (t *Tree) Insert(i int, payload []byte) error {
	if i < 0 || i > len(t.leaves) {
		return &IndexError{Index: i, Len: len(t.leaves)}
	}
	t.leaves = append(t.leaves, nil)
	copy(t.leaves[i+1:], t.leaves[i:])
	t.leaves[i] = t.digestLeaf(payload)
	return nil
}

// SetLeaf replaces the leaf at index i with the digest of payload.
func (t *Tree) SetLeaf(i int, payload []byte) error {
	if err := t.check(i); err != nil {
		return err
	}
	t.leaves[i] = t.digestLeaf(payload)
	return nil
}

// Remove deletes the leaf at index i and returns its digest.
func (t *Tree) Remove(i int) ([]byte, error) {
	if err := t.check(i); err != nil {
		return nil, err
	}
	digest := t.leaves[i]
	t.leaves = append(t.leaves[:i], t.leaves[i+1:]...)
	return digest, nil
}

// Pop removes and returns the rightmost leaf digest.
func (t *Tree) Pop() ([]byte, error) {
	return t.Remove(len(t.leaves) - 1)
}

// Clear removes all leaves.
func (t *Tree) Clear() {
	t.leaves = nil
}

// Leaf returns a copy of the stored digest of the leaf at index i. This is
// an O(1) lookup, the tree is not reduced.
func (t *Tree) Leaf(i int) ([]byte, error) {
	if err := t.check(i); err != nil {
		return nil, err
	}
	return bytes.Clone(t.leaves[i]), nil
}

// Leaves iterates over copies of the leaf digests in order.
func (t *Tree) Leaves() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, leaf := range t.leaves {
			if !yield(bytes.Clone(leaf)) {
				return
			}
		}
	}
}

// Digest computes the root digest of the tree.
//
// Consecutive digests are paired and hashed into parents as
// H(NodeSeed || left || right) until one digest remains. A level with an
// odd count rehashes its trailing node alone as H(NodeSeed || left)
// rather than promoting it unchanged; implementations that promote the
// odd node produce different roots and do not interoperate. An empty tree
// digests to the hash of no input, a single leaf to that leaf's digest.
func (t *Tree) Digest() []byte {
	if len(t.leaves) == 0 {
		return t.algo.New().Sum(nil)
	}

	level := t.leaves
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			h := t.algo.New()
			h.Write([]byte{NodeSeed})
			h.Write(level[i])
			if i+1 < len(level) {
				h.Write(level[i+1])
			}
			next = append(next, h.Sum(nil))
		}
		level = next
	}

	return bytes.Clone(level[0])
}

// HexDigest returns the root digest as a hexadecimal string.
func (t *Tree) HexDigest() string {
	return hex.EncodeToString(t.Digest())
}

// HexLeaf returns the digest of the leaf at index i as a hexadecimal
// string.
func (t *Tree) HexLeaf(i int) (string, error) {
	digest, err := t.Leaf(i)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

// Copy returns an independent tree sharing the algorithm descriptor.
// Mutating either tree afterwards never affects the other.
func (t *Tree) Copy() *Tree {
	leaves := make([][]byte, len(t.leaves))
	for i, leaf := range t.leaves {
		leaves[i] = bytes.Clone(leaf)
	}
	return &Tree{algo: t.algo, leaves: leaves}
}
