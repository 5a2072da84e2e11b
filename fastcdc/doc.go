// Package fastcdc implements content-defined chunking with a gear rolling
// hash and FastCDC's normalized cut-point selection.
//
// A byte stream is split at boundaries chosen by its own content, so a
// local edit only moves nearby boundaries and everything else still
// deduplicates. Two masks of different density are applied below and above
// the 8KB average to keep chunk sizes between 2KB and 64KB and clustered
// around the average.
//
// Split chunks an in-memory buffer; Chunker does the same over an
// io.Reader with bounded memory while producing bit-identical boundaries.
// Find and Ghash expose the underlying cut-point search and rolling hash
// for callers composing their own loops.
package fastcdc
