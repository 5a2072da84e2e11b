package fastcdc

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowReader hands out at most size bytes per Read call, simulating a
// stream with a fixed read granularity.
type slowReader struct {
	data []byte
	size int
}

func (r *slowReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.size
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

// failReader yields some data and then a permanent error.
type failReader struct {
	data []byte
	err  error
}

func (r *failReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func collectStream(t *testing.T, c *Chunker) []Chunk {
	t.Helper()
	var chunks []Chunk
	for {
		chunk, err := c.Next()
		if errors.Is(err, io.EOF) {
			return chunks
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
}

func TestChunker_MatchesSplitAtAnyReadGranularity(t *testing.T) {
	data := randomData(t, 1<<20)
	want := collectSplit(data, nil, 0)

	for _, readSize := range []int{1, 17, 4096, 70000} {
		c := NewChunker(&slowReader{data: data, size: readSize}, nil, 0)
		got := collectStream(t, c)

		require.Len(t, got, len(want), "read size %d", readSize)
		for i := range want {
			assert.Equal(t, want[i].Start, got[i].Start, "read size %d chunk %d", readSize, i)
			assert.Equal(t, want[i].End, got[i].End, "read size %d chunk %d", readSize, i)
			assert.Equal(t, want[i].Data, got[i].Data, "read size %d chunk %d", readSize, i)
		}
	}
}

func TestChunker_MatchesSplitWithSeed(t *testing.T) {
	const seed = 0xFEEDFACE

	data := randomData(t, 1<<19)
	want := collectSplit(data, nil, seed)

	c := NewChunker(&slowReader{data: data, size: 777}, nil, seed)
	got := collectStream(t, c)
	assert.Equal(t, want, got)
}

func TestChunker_ReconstructsStream(t *testing.T) {
	data := randomData(t, 1<<20)
	c := NewChunker(bytes.NewReader(data), nil, 0)

	var rebuilt []byte
	for _, chunk := range collectStream(t, c) {
		rebuilt = append(rebuilt, chunk.Data...)
	}
	assert.Equal(t, data, rebuilt)
}

func TestChunker_EmptyStreamYieldsNothing(t *testing.T) {
	c := NewChunker(bytes.NewReader(nil), nil, 0)
	_, err := c.Next()
	assert.ErrorIs(t, err, io.EOF)

	// EOF is sticky.
	_, err = c.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunker_ShortStreamIsSingleChunk(t *testing.T) {
	data := randomData(t, 1000)
	c := NewChunker(bytes.NewReader(data), nil, 0)

	chunks := collectStream(t, c)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, 1000, chunks[0].End)
	assert.Equal(t, data, chunks[0].Data)
}

func TestChunker_PropagatesReadErrors(t *testing.T) {
	readErr := errors.New("disk on fire")
	data := randomData(t, 3*ChunkHi)

	c := NewChunker(&failReader{data: data, err: readErr}, nil, 0)
	for {
		_, err := c.Next()
		if err != nil {
			assert.ErrorIs(t, err, readErr)
			break
		}
	}

	// The error is sticky as well.
	_, err := c.Next()
	assert.ErrorIs(t, err, readErr)
}

func TestChunker_ChunkDataIsOwned(t *testing.T) {
	data := randomData(t, 3*ChunkHi)
	c := NewChunker(bytes.NewReader(data), nil, 0)

	first, err := c.Next()
	require.NoError(t, err)
	snapshot := bytes.Clone(first.Data)

	// Drain the rest; buffers are reused internally along the way.
	collectStream(t, c)
	assert.Equal(t, snapshot, first.Data)
}
