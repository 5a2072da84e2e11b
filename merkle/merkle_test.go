package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256Leaf computes the expected leaf digest by hand.
func sha256Leaf(payload []byte) []byte {
	h := sha256.New()
	h.Write([]byte{LeafSeed})
	h.Write(payload)
	return h.Sum(nil)
}

// sha256Node computes the expected interior node digest by hand. Pass one
// child for an odd trailing node.
func sha256Node(children ...[]byte) []byte {
	h := sha256.New()
	h.Write([]byte{NodeSeed})
	for _, c := range children {
		h.Write(c)
	}
	return h.Sum(nil)
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := New("whirlpool-9000")
	require.Error(t, err)

	var unknown ErrUnknownAlgorithm
	assert.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "whirlpool-9000")
}

func TestNew_IngestsInitialPayloads(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"), []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())

	leaf, err := tree.Leaf(0)
	require.NoError(t, err)
	assert.Equal(t, sha256Leaf([]byte("a")), leaf)
}

func TestTree_EmptyRootIsDigestOfNothing(t *testing.T) {
	tree, err := New("sha256")
	require.NoError(t, err)

	empty := sha256.Sum256(nil)
	assert.Equal(t, empty[:], tree.Digest())
}

func TestTree_SingleLeafRootIsLeafDigest(t *testing.T) {
	tree, err := New("sha256", []byte("only"))
	require.NoError(t, err)
	assert.Equal(t, sha256Leaf([]byte("only")), tree.Digest())
}

func TestTree_TwoLeafRoot(t *testing.T) {
	tree, err := New("sha256", []byte("left"), []byte("right"))
	require.NoError(t, err)

	want := sha256Node(sha256Leaf([]byte("left")), sha256Leaf([]byte("right")))
	assert.Equal(t, want, tree.Digest())
}

func TestTree_OddTrailingNodeIsRehashedNotPromoted(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"), []byte("c"))
	require.NoError(t, err)

	// Level 1: pair(a, b) and a rehashed lone c; level 2 pairs those.
	la, lb, lc := sha256Leaf([]byte("a")), sha256Leaf([]byte("b")), sha256Leaf([]byte("c"))
	want := sha256Node(sha256Node(la, lb), sha256Node(lc))
	assert.Equal(t, want, tree.Digest())

	// Sanity: promoting c unchanged would give a different root.
	promoted := sha256Node(sha256Node(la, lb), lc)
	assert.NotEqual(t, promoted, tree.Digest())
}

func TestTree_FiveLeafRoot(t *testing.T) {
	payloads := [][]byte{[]byte("p0"), []byte("p1"), []byte("p2"), []byte("p3"), []byte("p4")}
	tree, err := New("sha256", payloads...)
	require.NoError(t, err)

	leaves := make([][]byte, len(payloads))
	for i, p := range payloads {
		leaves[i] = sha256Leaf(p)
	}
	l1 := [][]byte{
		sha256Node(leaves[0], leaves[1]),
		sha256Node(leaves[2], leaves[3]),
		sha256Node(leaves[4]),
	}
	l2 := [][]byte{sha256Node(l1[0], l1[1]), sha256Node(l1[2])}
	want := sha256Node(l2[0], l2[1])

	assert.Equal(t, want, tree.Digest())
}

func TestTree_DeterministicAcrossInstances(t *testing.T) {
	payloads := [][]byte{[]byte("x"), []byte("y"), []byte("z"), []byte("w")}

	a, err := New("sha256", payloads...)
	require.NoError(t, err)
	b, err := New("sha256", payloads...)
	require.NoError(t, err)

	assert.Equal(t, a.Digest(), b.Digest())
}

func TestTree_SetLeafChangesRoot(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"), []byte("c"), []byte("d"))
	require.NoError(t, err)

	before := tree.Digest()
	require.NoError(t, tree.SetLeaf(2, []byte("C")))
	assert.NotEqual(t, before, tree.Digest())

	// Restoring the payload restores the root.
	require.NoError(t, tree.SetLeaf(2, []byte("c")))
	assert.Equal(t, before, tree.Digest())
}

func TestTree_AppendChangesRoot(t *testing.T) {
	payloads := [][]byte{[]byte("a"), []byte("b"), []byte("c")}

	short, err := New("sha256", payloads...)
	require.NoError(t, err)
	long, err := New("sha256", append(payloads, []byte("extra"))...)
	require.NoError(t, err)

	assert.NotEqual(t, short.Digest(), long.Digest())
}

func TestTree_InsertRemovePop(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("c"))
	require.NoError(t, err)

	require.NoError(t, tree.Insert(1, []byte("b")))
	assert.Equal(t, 3, tree.Len())

	want, err := New("sha256", []byte("a"), []byte("b"), []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, want.Digest(), tree.Digest())

	removed, err := tree.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, sha256Leaf([]byte("b")), removed)

	popped, err := tree.Pop()
	require.NoError(t, err)
	assert.Equal(t, sha256Leaf([]byte("c")), popped)

	assert.Equal(t, 1, tree.Len())
}

func TestTree_InsertAtEndAppends(t *testing.T) {
	tree, err := New("sha256", []byte("a"))
	require.NoError(t, err)
	require.NoError(t, tree.Insert(1, []byte("b")))

	want, err := New("sha256", []byte("a"), []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, want.Digest(), tree.Digest())
}

func TestTree_IndexOutOfRange(t *testing.T) {
	tree, err := New("sha256", []byte("a"))
	require.NoError(t, err)

	var idxErr *IndexError

	_, err = tree.Leaf(1)
	assert.ErrorAs(t, err, &idxErr)
	_, err = tree.Leaf(-1)
	assert.ErrorAs(t, err, &idxErr)

	assert.ErrorAs(t, tree.SetLeaf(1, []byte("x")), &idxErr)
	assert.ErrorAs(t, tree.Insert(2, []byte("x")), &idxErr)
	assert.ErrorAs(t, tree.Insert(-1, []byte("x")), &idxErr)

	_, err = tree.Remove(1)
	assert.ErrorAs(t, err, &idxErr)

	tree.Clear()
	_, err = tree.Pop()
	assert.ErrorAs(t, err, &idxErr)
}

func TestTree_ClearResetsToEmptyRoot(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"))
	require.NoError(t, err)

	empty, err := New("sha256")
	require.NoError(t, err)

	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, empty.Digest(), tree.Digest())
}

func TestTree_HexRoundTrip(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"), []byte("c"))
	require.NoError(t, err)

	assert.Equal(t, hex.EncodeToString(tree.Digest()), tree.HexDigest())

	leaf, err := tree.Leaf(1)
	require.NoError(t, err)
	hexLeaf, err := tree.HexLeaf(1)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(leaf), hexLeaf)
}

func TestTree_CopyIsIndependent(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"))
	require.NoError(t, err)
	before := tree.Digest()

	clone := tree.Copy()
	clone.Append([]byte("c"))
	require.NoError(t, clone.SetLeaf(0, []byte("A")))

	assert.Equal(t, before, tree.Digest(), "mutating the copy must not touch the original")
	assert.NotEqual(t, before, clone.Digest())
	assert.Equal(t, tree.Name(), clone.Name())
}

func TestTree_LeafReturnsCopy(t *testing.T) {
	tree, err := New("sha256", []byte("a"))
	require.NoError(t, err)

	leaf, err := tree.Leaf(0)
	require.NoError(t, err)
	leaf[0] ^= 0xFF

	fresh, err := tree.Leaf(0)
	require.NoError(t, err)
	assert.Equal(t, sha256Leaf([]byte("a")), fresh, "external mutation must not alias the stored leaf")
}

func TestTree_LeavesIteration(t *testing.T) {
	payloads := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	tree, err := New("sha256", payloads...)
	require.NoError(t, err)

	var got [][]byte
	for leaf := range tree.Leaves() {
		got = append(got, leaf)
	}

	require.Len(t, got, len(payloads))
	for i, p := range payloads {
		assert.Equal(t, sha256Leaf(p), got[i], "leaf %d", i)
	}
}

func TestTree_DigestRecomputedEveryCall(t *testing.T) {
	tree, err := New("sha256", []byte("a"), []byte("b"))
	require.NoError(t, err)

	first := tree.Digest()
	first[0] ^= 0xFF // corrupting the returned slice must not poison the tree
	assert.NotEqual(t, first, tree.Digest())
}

func TestTree_AllRegisteredAlgorithms(t *testing.T) {
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			tree, err := New(name, []byte("payload-1"), []byte("payload-2"), []byte("payload-3"))
			require.NoError(t, err)

			root := tree.Digest()
			assert.Len(t, root, tree.DigestSize())
			assert.Equal(t, fmt.Sprintf("%x", root), tree.HexDigest())
		})
	}
}
