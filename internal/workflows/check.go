package workflows

import (
	"context"
	"fmt"

	"github.com/echosistema/ironmonger/internal/envfile"
	kerrors "github.com/echosistema/ironmonger/internal/errors"
	"github.com/echosistema/ironmonger/internal/secret"
)

// CheckSecretOptions configures the check workflow.
type CheckSecretOptions struct {
	FilePath string
	KeyName  string
}

// CheckSecretResult contains a validated stored secret.
type CheckSecretResult struct {
	Secret   secret.AppSecret
	FilePath string
	KeyName  string
}

// CheckSecret reads KeyName from FilePath and validates the stored value.
//
// Returns ErrFileAccess if the file cannot be read.
// Returns ErrSecretNotFound if the file has no entry for KeyName.
// Returns ErrInvalidFormat if the stored value is not a 192 character hex string.
func CheckSecret(ctx context.Context, opts CheckSecretOptions) (*CheckSecretResult, error) {
	if err := ValidateKeyName(opts.KeyName); err != nil {
		return nil, err
	}
	if opts.FilePath == "" {
		opts.FilePath = envfile.DefaultPath
	}

	raw, ok, err := envfile.Lookup(opts.FilePath, opts.KeyName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", kerrors.ErrSecretNotFound, opts.KeyName, opts.FilePath)
	}

	value, err := secret.New(raw)
	if err != nil {
		return nil, fmt.Errorf("%s in %s: %w", opts.KeyName, opts.FilePath, err)
	}

	return &CheckSecretResult{
		Secret:   value,
		FilePath: opts.FilePath,
		KeyName:  opts.KeyName,
	}, nil
}
