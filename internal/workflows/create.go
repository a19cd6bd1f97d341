package workflows

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/echosistema/ironmonger/internal/envfile"
	kerrors "github.com/echosistema/ironmonger/internal/errors"
	"github.com/echosistema/ironmonger/internal/generator"
	"github.com/echosistema/ironmonger/internal/secret"
)

// SecretGenerator produces new secrets. *generator.Generator satisfies it.
type SecretGenerator interface {
	Generate() (secret.AppSecret, error)
}

// CreateSecretOptions configures the create workflow.
type CreateSecretOptions struct {
	// FilePath is the configuration file to update.
	FilePath string

	// KeyName is the entry to insert or replace.
	KeyName string

	// Generator defaults to generator.New().
	Generator SecretGenerator

	// Updater defaults to envfile.NewFileUpdater().
	Updater envfile.Updater
}

// CreateSecretResult contains the outcome of a create operation.
type CreateSecretResult struct {
	// Secret is the newly generated value.
	Secret secret.AppSecret

	FilePath string
	KeyName  string

	// FileCreated indicates the file did not exist before.
	FileCreated bool

	// Replaced indicates an existing entry for KeyName was overwritten.
	Replaced bool
}

// CreateSecret generates a new secret and stores it under KeyName in FilePath.
//
// The secret is generated before the file is touched, so a generation
// failure leaves the file as it was.
//
// Returns ErrInvalidKeyName if the key name cannot form a KEY=VALUE line.
// Returns ErrNoHardwareIdentifier if no network hardware address exists.
// Returns ErrFileAccess (as *FileError) on any file I/O failure.
func CreateSecret(ctx context.Context, opts CreateSecretOptions) (*CreateSecretResult, error) {
	if err := ValidateKeyName(opts.KeyName); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		opts.FilePath = envfile.DefaultPath
	}
	if opts.Generator == nil {
		opts.Generator = generator.New()
	}
	if opts.Updater == nil {
		opts.Updater = envfile.NewFileUpdater()
	}

	fileCreated, replaced, err := inspectTarget(opts.FilePath, opts.KeyName)
	if err != nil {
		return nil, err
	}

	value, err := opts.Generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating secret: %w", err)
	}

	if err := opts.Updater.Write(opts.FilePath, opts.KeyName, value); err != nil {
		return nil, fmt.Errorf("saving secret: %w", err)
	}

	return &CreateSecretResult{
		Secret:      value,
		FilePath:    opts.FilePath,
		KeyName:     opts.KeyName,
		FileCreated: fileCreated,
		Replaced:    replaced,
	}, nil
}

// inspectTarget reports whether the file is missing and whether it already
// holds an entry for key.
func inspectTarget(path, key string) (missing bool, hasKey bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return true, false, nil
	}

	lines, err := envfile.ReadLines(path)
	if err != nil {
		return false, false, err
	}
	prefix := key + "="
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return false, true, nil
		}
	}
	return false, false, nil
}

// ValidateKeyName rejects names that would not round-trip through a
// KEY=VALUE line.
func ValidateKeyName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: key name cannot be empty", kerrors.ErrInvalidKeyName)
	}
	if strings.ContainsAny(name, "=\r\n") {
		return fmt.Errorf("%w: %q must not contain '=' or line breaks", kerrors.ErrInvalidKeyName, name)
	}
	return nil
}
