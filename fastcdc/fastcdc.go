package fastcdc

import "iter"

// Chunk size sentinels. ChunkLo is the smallest chunk the cut-point search
// will produce, ChunkMd the normalization pivot the size distribution is
// pulled toward, ChunkHi the hard upper bound on any chunk.
const (
	ChunkLo = 1 << 11 // 2KB minimum
	ChunkMd = 1 << 13 // 8KB average
	ChunkHi = 1 << 16 // 64KB maximum
)

// Cut-point masks. MaskLo (15 bits set) is tested below the average size
// where cuts should be easy to find, MaskHi (11 bits set) above it where
// they should be rare. MaskMd (13 bits set) is the unbiased middle value
// published with the table; it is kept for callers implementing their own
// normalization levels.
const (
	MaskLo = 0x0003590703530000
	MaskMd = 0x0000D90303530000
	MaskHi = 0x0000D90003530000
)

// Chunk is a contiguous byte range of the input. Start and End are the
// half-open [Start, End) offsets within the full stream, Data the payload.
type Chunk struct {
	Start int
	End   int
	Data  []byte
}

// Ghash advances the rolling gear hash h by one byte. The seed is XORed
// into the table lookup; a zero seed leaves the table untouched. Chaining
// Ghash from h=0 over a byte sequence reproduces the chunker's internal
// rolling state exactly.
func Ghash(h uint64, b byte, table *Table, seed uint64) uint64 {
	if table == nil {
		table = &DefaultTable
	}
	return (h << 1) + (table[b] ^ seed)
}

// Find returns the offset of the next cut point in data.
//
// Inputs no longer than ChunkLo are returned whole. Past that, the rolling
// hash starts at offset ChunkLo and the cut condition switches from MaskLo
// to the stricter MaskHi at ChunkMd, biasing chunk sizes toward the average
// instead of the exponential tail a single mask would give. When no mask
// matches, the cut is forced at ChunkHi or at the end of data, whichever
// comes first.
func Find(data []byte, table *Table, seed uint64) int {
	if table == nil {
		table = &DefaultTable
	}

	size := len(data)
	if size <= ChunkLo {
		return size
	}

	sentinelMd, sentinelHi := ChunkMd, size
	if size >= ChunkHi {
		sentinelHi = ChunkHi
	} else if size <= ChunkMd {
		sentinelMd = size
	}

	var h uint64
	idx := ChunkLo
	for ; idx < sentinelMd; idx++ {
		h = (h << 1) + (table[data[idx]] ^ seed)
		if h&MaskLo == 0 {
			return idx
		}
	}
	for ; idx < sentinelHi; idx++ {
		h = (h << 1) + (table[data[idx]] ^ seed)
		if h&MaskHi == 0 {
			return idx
		}
	}

	return idx
}

// Split partitions data into content-defined chunks. The sequence is lazy
// and single-pass; chunk Data fields are subslices of data, not copies.
// Chunks are contiguous, non-overlapping and cover all of data. An empty
// input yields a single zero-length chunk.
func Split(data []byte, table *Table, seed uint64) iter.Seq[Chunk] {
	if table == nil {
		table = &DefaultTable
	}

	return func(yield func(Chunk) bool) {
		size := len(data)
		start, end := 0, 0
		cut := ChunkHi

		for cut != end {
			window := cut
			if window > size {
				window = size
			}
			end = start + Find(data[start:window], table, seed)

			if !yield(Chunk{Start: start, End: end, Data: data[start:end]}) {
				return
			}

			start = end
			cut = end + ChunkHi
			if cut > size {
				cut = size
			}
		}
	}
}
