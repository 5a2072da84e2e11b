package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_SerializeDeserialize(t *testing.T) {
	m := New("backup.tar", "sha256", 0xCAFE)
	m.Size = 123456
	m.Compression = "lz4"
	m.Root = "deadbeef"
	m.Chunks = []ChunkRef{
		{Start: 0, End: 4096, Digest: "aa"},
		{Start: 4096, End: 9000, Digest: "bb"},
	}

	data, err := m.Serialize()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	m2, err := Deserialize(data)
	require.NoError(t, err)

	assert.Equal(t, m.ID, m2.ID)
	assert.Equal(t, m.Source, m2.Source)
	assert.Equal(t, m.Algorithm, m2.Algorithm)
	assert.Equal(t, "0x000000000000CAFE", m2.Seed)
	assert.Equal(t, m.Compression, m2.Compression)
	assert.Equal(t, m.Root, m2.Root)
	assert.Equal(t, m.Size, m2.Size)
	assert.Equal(t, m.Chunks, m2.Chunks)
	assert.True(t, m.CreatedAt.Equal(m2.CreatedAt), "times should match")
}

func TestManifest_Deserialize_Invalid(t *testing.T) {
	_, err := Deserialize([]byte(`{invalid json`))
	assert.Error(t, err)
}

func TestNewManifest(t *testing.T) {
	m := New("dump.sql", "blake3", 0)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "dump.sql", m.Source)
	assert.Equal(t, "blake3", m.Algorithm)
	assert.Empty(t, m.Seed, "zero seed is omitted")
	assert.WithinDuration(t, time.Now().UTC(), m.CreatedAt, time.Second)
}
