// Package generator produces application secrets by feeding collected
// entropy and two fresh salts through the key derivation pipeline.
package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/echosistema/ironmonger/internal/entropy"
	kerrors "github.com/echosistema/ironmonger/internal/errors"
	"github.com/echosistema/ironmonger/internal/kdf"
	"github.com/echosistema/ironmonger/internal/secret"
)

// Generator wires an entropy source, a deriver and a salt source.
type Generator struct {
	Collector entropy.Collector
	Deriver   kdf.Deriver
	Rand      io.Reader
}

// New returns a Generator backed by the operating system and the default
// derivation parameters.
func New() *Generator {
	return &Generator{
		Collector: entropy.NewSystem(),
		Deriver:   kdf.New(),
		Rand:      rand.Reader,
	}
}

// Generate collects entropy, draws two independent salts and derives a new
// secret. It does not touch persistent storage.
//
// Returns ErrNoHardwareIdentifier if no hardware address is available.
// Returns ErrRandomSource if the salt source fails.
func (g *Generator) Generate() (secret.AppSecret, error) {
	material, err := g.Collector.Collect()
	if err != nil {
		return secret.AppSecret{}, fmt.Errorf("collecting entropy: %w", err)
	}

	salt1, err := g.salt()
	if err != nil {
		return secret.AppSecret{}, err
	}
	salt2, err := g.salt()
	if err != nil {
		return secret.AppSecret{}, err
	}

	derived := g.Deriver.Derive(material, salt1, salt2)
	value := hex.EncodeToString(derived)

	zeroBytes(material)
	zeroBytes(salt1)
	zeroBytes(salt2)
	zeroBytes(derived)

	return secret.FromTrusted(value), nil
}

func (g *Generator) salt() ([]byte, error) {
	salt := make([]byte, kdf.SaltSize)
	if _, err := io.ReadFull(g.Rand, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w: %w", kerrors.ErrRandomSource, err)
	}
	return salt, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
