// Package kdf implements the multi-layer key derivation that turns raw
// entropy and two salts into a 96 byte secret.
//
// The construction is part of the compatibility contract for stored
// secrets. Changing iteration counts, hash functions or slice boundaries
// produces different output for identical inputs.
//
//	L1  = PBKDF2-HMAC-SHA512(entropy, salt1, N, 128)
//	L2  = PBKDF2-HMAC-SHA256(L1, salt2, N/2, 128)
//	A   = SHA3-512(L1 || L2)
//	B   = SHA3-512(A || salt1 || salt2)
//	out = A[:64] || B[:32]
package kdf

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/sha3"
)

const (
	// DefaultIterations is the layer one PBKDF2 work factor.
	DefaultIterations = 1_000_000

	// SaltSize is the size of each salt in bytes.
	SaltSize = 64

	// LayerSize is the output size of each PBKDF2 layer.
	LayerSize = 128

	// OutputSize is the size of the derived secret.
	OutputSize = 96
)

// Deriver derives a fixed size secret from entropy and two salts.
type Deriver interface {
	Derive(entropy, salt1, salt2 []byte) []byte
}

// Params tunes the derivation. Only tests should use anything other than
// DefaultParams.
type Params struct {
	// Iterations for layer one. Layer two runs half as many.
	Iterations int
}

// DefaultParams are the parameters every stored secret was derived with.
var DefaultParams = Params{Iterations: DefaultIterations}

// MultiLayer is the two layer PBKDF2 plus SHA3 derivation.
type MultiLayer struct {
	Params Params
}

// New returns a MultiLayer deriver with DefaultParams.
func New() *MultiLayer {
	return &MultiLayer{Params: DefaultParams}
}

// Derive runs the full pipeline and returns OutputSize bytes. It is
// deterministic and CPU bound; with DefaultParams it takes on the order of
// a second.
func (m *MultiLayer) Derive(entropy, salt1, salt2 []byte) []byte {
	iterations := m.Params.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	layer1 := pbkdf2.Key(entropy, salt1, iterations, LayerSize, sha512.New)
	defer zeroBytes(layer1)

	layer2 := pbkdf2.Key(layer1, salt2, iterations/2, LayerSize, sha256.New)
	defer zeroBytes(layer2)

	h := sha3.New512()
	h.Write(layer1)
	h.Write(layer2)
	hashA := h.Sum(nil)

	h = sha3.New512()
	h.Write(hashA)
	h.Write(salt1)
	h.Write(salt2)
	hashB := h.Sum(nil)

	out := make([]byte, 0, OutputSize)
	out = append(out, hashA[:64]...)
	out = append(out, hashB[:32]...)

	zeroBytes(hashA)
	zeroBytes(hashB)
	return out
}

// zeroBytes overwrites intermediate key material.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
