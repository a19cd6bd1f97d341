package errors

import (
	"errors"
	"fmt"
)

// Entropy errors indicate the machine could not supply required input material.
var (
	// ErrNoHardwareIdentifier indicates no network interface with a hardware address was found.
	ErrNoHardwareIdentifier = errors.New("no MAC address found on this system")

	// ErrRandomSource indicates the cryptographically secure random source failed.
	ErrRandomSource = errors.New("failed to read from secure random source")
)

// Secret errors indicate a secret value is malformed or missing.
var (
	// ErrInvalidFormat indicates a secret is not a 192 character hexadecimal string.
	ErrInvalidFormat = errors.New("invalid secret format: expected 192 hexadecimal characters")

	// ErrSecretNotFound indicates the configuration file has no entry for the key.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrInvalidKeyName indicates the key name is empty or would corrupt a KEY=VALUE line.
	ErrInvalidKeyName = errors.New("invalid key name")
)

// File errors indicate issues reading or writing the target configuration file.
var (
	// ErrFileAccess indicates the configuration file could not be created, read or written.
	ErrFileAccess = errors.New("failed to access configuration file")
)

// FileError records a failed operation on the configuration file together
// with the underlying OS error.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrFileAccess, e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is reports FileError as matching ErrFileAccess so callers can test the
// category without unwrapping to the OS error.
func (e *FileError) Is(target error) bool {
	return target == ErrFileAccess
}
