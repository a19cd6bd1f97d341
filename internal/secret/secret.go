// Package secret defines the AppSecret value produced by the generator and
// stored in configuration files.
package secret

import (
	"encoding/hex"

	kerrors "github.com/echosistema/ironmonger/internal/errors"
)

const (
	// Size is the length in bytes of a derived secret.
	Size = 96

	// Length is the length of a secret in hexadecimal characters.
	Length = Size * 2
)

// AppSecret is a 192 character hexadecimal application secret.
type AppSecret struct {
	value string
}

// New validates value and wraps it as an AppSecret. Use it for values read
// from files, flags or any other external source.
//
// Returns ErrInvalidFormat if value is not exactly Length hex characters.
// Both upper and lower case digits are accepted and kept as given.
func New(value string) (AppSecret, error) {
	if !isHexOfLength(value) {
		return AppSecret{}, kerrors.ErrInvalidFormat
	}
	return AppSecret{value: value}, nil
}

// FromTrusted wraps a value produced by the derivation pipeline without
// validating it.
func FromTrusted(value string) AppSecret {
	return AppSecret{value: value}
}

// Value returns the hexadecimal secret.
func (s AppSecret) Value() string { return s.value }

func (s AppSecret) String() string { return s.value }

// IsValid reports whether the secret has the expected shape.
func (s AppSecret) IsValid() bool { return isHexOfLength(s.value) }

// Bytes decodes the secret into its raw bytes.
func (s AppSecret) Bytes() ([]byte, error) {
	b, err := hex.DecodeString(s.value)
	if err != nil || len(b) != Size {
		return nil, kerrors.ErrInvalidFormat
	}
	return b, nil
}

func isHexOfLength(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
