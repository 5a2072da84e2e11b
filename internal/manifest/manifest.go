package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChunkRef records one chunk of a chunking run: its half-open byte range
// within the source and the hex leaf digest of its payload.
type ChunkRef struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Digest string `json:"digest"`
}

// Manifest is the durable record of one chunking run: enough to locate
// every chunk payload by digest and to verify the whole source against a
// single Merkle root.
type Manifest struct {
	ID          string     `json:"id"`
	Source      string     `json:"source,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Size        int64      `json:"size"`
	Algorithm   string     `json:"algorithm"`
	Seed        string     `json:"seed,omitempty"` // hex, omitted when zero
	Compression string     `json:"compression,omitempty"`
	Root        string     `json:"root"` // hex Merkle root over the chunk sequence
	Chunks      []ChunkRef `json:"chunks"`
}

func New(source, algorithm string, seed uint64) *Manifest {
	m := &Manifest{
		ID:        uuid.NewString(),
		Source:    source,
		Algorithm: algorithm,
		CreatedAt: time.Now().UTC(),
	}
	if seed != 0 {
		m.Seed = fmt.Sprintf("0x%016X", seed)
	}
	return m
}

func (m *Manifest) Serialize() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func Deserialize(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
