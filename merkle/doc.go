// Package merkle implements an ordered, mutable Merkle hash tree.
//
// Every leaf is the hash of a payload prefixed with 0x00, every interior
// node the hash of its children prefixed with 0x01 (RFC 6962 domain
// separation). The leaf sequence supports append, insert, replace and
// remove, and the root digest is recomputed on demand from the current
// leaves, making the root a deterministic fingerprint of an ordered data
// sequence such as the chunks of a file.
package merkle
