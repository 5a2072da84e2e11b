package fastcdc

import (
	"bytes"
	"errors"
	"io"
)

// Chunker splits a byte stream into content-defined chunks without loading
// it into memory. Boundaries are identical to running Split over the whole
// stream content at once, no matter how the underlying reader fragments its
// reads.
//
// A Chunker is a single-pass, lazy producer: abandoning it early just
// leaves bytes unread in the source. It is not safe for concurrent use.
type Chunker struct {
	r     io.Reader
	table *Table
	seed  uint64

	buf    []byte  // scratch for a single read, ChunkHi bytes
	remain []byte  // trailing bytes with no confirmed boundary yet
	queue  []Chunk // resolved chunks not yet handed out
	offset int     // stream offset of remain[0]
	done   bool
	err    error
}

// NewChunker returns a Chunker reading from r. A nil table selects
// DefaultTable; a zero seed leaves the table untouched.
func NewChunker(r io.Reader, table *Table, seed uint64) *Chunker {
	if table == nil {
		table = &DefaultTable
	}
	return &Chunker{
		r:     r,
		table: table,
		seed:  seed,
		buf:   make([]byte, ChunkHi),
	}
}

// Next returns the next chunk of the stream. Chunk offsets are absolute
// stream positions and Data is an owned copy. After the final chunk, Next
// returns io.EOF; any other error comes unchanged from the underlying
// reader.
func (c *Chunker) Next() (Chunk, error) {
	for len(c.queue) == 0 {
		if c.err != nil {
			return Chunk{}, c.err
		}
		if c.done {
			return Chunk{}, io.EOF
		}
		c.fill()
	}

	next := c.queue[0]
	c.queue = c.queue[1:]
	return next, nil
}

// fill reads one buffer from the stream and resolves as many boundaries as
// the new data allows.
//
// Everything read so far past the last confirmed boundary is kept in
// c.remain. After appending fresh bytes, Split is run over the combined
// buffer and every chunk except the final one is queued: the final chunk
// may end where it does only because the buffer ran out, not because a real
// cut was found, so it is carried over until more data arrives or the
// stream ends. Since reads bring in up to ChunkHi bytes, any chunk that is
// not the final one had a full maximum-size lookahead window and its
// boundary can never move.
func (c *Chunker) fill() {
	n, err := c.r.Read(c.buf)
	if n > 0 {
		working := make([]byte, 0, len(c.remain)+n)
		working = append(working, c.remain...)
		working = append(working, c.buf[:n]...)

		var pending []Chunk
		for chunk := range Split(working, c.table, c.seed) {
			pending = append(pending, chunk)
		}

		last := pending[len(pending)-1]
		for _, chunk := range pending[:len(pending)-1] {
			c.queue = append(c.queue, Chunk{
				Start: c.offset + chunk.Start,
				End:   c.offset + chunk.End,
				Data:  bytes.Clone(chunk.Data),
			})
		}

		c.remain = bytes.Clone(working[last.Start:])
		c.offset += last.Start
	}

	if err == nil {
		return
	}
	if !errors.Is(err, io.EOF) {
		c.err = err
		return
	}

	// End of stream: the carried bytes cannot grow anymore, chop them up
	// for good. An empty carry means an empty stream and nothing to yield.
	if len(c.remain) > 0 {
		for chunk := range Split(c.remain, c.table, c.seed) {
			c.queue = append(c.queue, Chunk{
				Start: c.offset + chunk.Start,
				End:   c.offset + chunk.End,
				Data:  bytes.Clone(chunk.Data),
			})
		}
		c.remain = nil
	}
	c.done = true
}
