package utils

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Transcript accumulates canonical encodings of domain parameters into a
// running hash state. Downstream provers absorb a descriptor's digest into
// their Fiat-Shamir channel to bind the evaluation domain to the proof.
//
// The state evolves as state = H(state || data) per absorption, so digests
// depend on both content and order. All encodings absorbed here are
// fixed-width, which keeps digests unambiguous without length prefixes.
type Transcript struct {
	state    []byte
	hashFunc string
}

// NewTranscript creates a transcript using the given hash function
// ("sha256" or "sha3"; empty defaults to sha3)
func NewTranscript(hashFunc string) *Transcript {
	if hashFunc == "" {
		hashFunc = "sha3"
	}
	return &Transcript{
		state:    []byte{0},
		hashFunc: hashFunc,
	}
}

// Absorb mixes data into the transcript state
func (t *Transcript) Absorb(data []byte) {
	t.state = t.hash(append(t.state, data...))
}

// AbsorbUint64 mixes a big-endian uint64 into the transcript state
func (t *Transcript) AbsorbUint64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	t.Absorb(buf[:])
}

// Digest returns the current 32-byte transcript state
func (t *Transcript) Digest() []byte {
	return append([]byte(nil), t.state...)
}

// hash computes the hash of the input using the configured hash function
func (t *Transcript) hash(data []byte) []byte {
	switch t.hashFunc {
	case "sha256":
		h := sha256.Sum256(data)
		return h[:]
	default:
		h := sha3.Sum256(data)
		return h[:]
	}
}
