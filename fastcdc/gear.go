package fastcdc

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// Table maps every possible byte value to a 64-bit hash contribution. It is
// never mutated after construction and can be shared freely across chunkers.
type Table [256]uint64

// GenerateTable draws a fresh gear table from crypto/rand. Streams chunked
// with a generated table are only comparable to streams chunked with the
// exact same table, so persist it if boundaries need to be reproducible.
func GenerateTable() (*Table, error) {
	var buf [8 * 256]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("generate gear table: %w", err)
	}

	var t Table
	for i := range t {
		t[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	return &t, nil
}

// MarshalJSON encodes the table as an array of 256 hexadecimal strings.
// Plain JSON numbers are avoided because values above 2^53 do not survive
// a float64 round trip.
func (t Table) MarshalJSON() ([]byte, error) {
	entries := make([]string, len(t))
	for i, v := range t {
		entries[i] = fmt.Sprintf("0x%016X", v)
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes an array of 256 hexadecimal strings. Inputs with
// any other entry count are rejected.
func (t *Table) UnmarshalJSON(data []byte) error {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if len(entries) != len(t) {
		return fmt.Errorf("gear table must have %d entries, got %d", len(t), len(entries))
	}

	var parsed Table
	for i, e := range entries {
		v, err := strconv.ParseUint(e, 0, 64)
		if err != nil {
			return fmt.Errorf("gear table entry %d: %w", i, err)
		}
		parsed[i] = v
	}

	*t = parsed
	return nil
}
