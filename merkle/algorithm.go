package merkle

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Algorithm describes the hash function a tree is built on: a canonical
// name, a factory producing fresh hash states, and the metadata callers
// usually want without paying for a hash allocation.
type Algorithm struct {
	name       string
	factory    func() hash.Hash
	blockSize  int
	digestSize int
}

// NewAlgorithm builds a descriptor from any hash.Hash factory, for
// algorithms outside the built-in registry.
func NewAlgorithm(name string, factory func() hash.Hash) Algorithm {
	probe := factory()
	return Algorithm{
		name:       strings.ToLower(name),
		factory:    factory,
		blockSize:  probe.BlockSize(),
		digestSize: probe.Size(),
	}
}

// Name returns the canonical lowercase algorithm name.
func (a Algorithm) Name() string { return a.name }

// BlockSize returns the internal block size of the hash in bytes.
func (a Algorithm) BlockSize() int { return a.blockSize }

// DigestSize returns the size of a digest in bytes.
func (a Algorithm) DigestSize() int { return a.digestSize }

// New returns a fresh hash state.
func (a Algorithm) New() hash.Hash { return a.factory() }

// ErrUnknownAlgorithm reports a hash algorithm name that LookupAlgorithm
// could not resolve.
type ErrUnknownAlgorithm string

func (e ErrUnknownAlgorithm) Error() string {
	return "unknown hash algorithm: " + string(e)
}

var registry = map[string]func() hash.Hash{
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha224":   sha256.New224,
	"sha256":   sha256.New,
	"sha384":   sha512.New384,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
	"sha3-384": sha3.New384,
	"sha3-512": sha3.New512,
	"blake3":   func() hash.Hash { return blake3.New() },
}

// LookupAlgorithm resolves an algorithm by name. Matching is
// case-insensitive; unknown names fail with ErrUnknownAlgorithm.
func LookupAlgorithm(name string) (Algorithm, error) {
	canonical := strings.ToLower(name)
	factory, ok := registry[canonical]
	if !ok {
		return Algorithm{}, ErrUnknownAlgorithm(name)
	}
	return NewAlgorithm(canonical, factory), nil
}

// Algorithms lists the names in the built-in registry, unsorted.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
