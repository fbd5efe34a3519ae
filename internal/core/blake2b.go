package core

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2bStream is a streaming BLAKE2b hasher, used by H' to chain digests
// without re-deriving a fresh hash.Hash by hand at each step.
type Blake2bStream struct {
	hasher hash.Hash
}

func NewBlake2bStream(size int, key []byte) (*Blake2bStream, error) {
	h, err := blake2b.New(size, key)
	if err != nil {
		return nil, err
	}
	return &Blake2bStream{hasher: h}, nil
}

func (b *Blake2bStream) Write(data []byte) (int, error) { return b.hasher.Write(data) }
func (b *Blake2bStream) Sum() []byte                     { return b.hasher.Sum(nil) }
func (b *Blake2bStream) Reset()                          { b.hasher.Reset() }

// blake2bHash is the seam H0/H' actually call: hash the concatenation of
// chunks to outlen bytes, unkeyed.
func blake2bHash(outlen int, chunks ...[]byte) []byte {
	h, err := blake2b.New(outlen, nil)
	if err != nil {
		// Only outlen outside [1,64] triggers this, and every call site
		// (H0 and HPrime) stays within that range.
		panic("argon2: blake2b: " + err.Error())
	}
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func lenPrefixed(b []byte) []byte {
	return le32(uint32(len(b)))
}
