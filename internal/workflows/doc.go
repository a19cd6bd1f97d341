// Package workflows provides high-level orchestration for Ironmonger commands.
//
// Workflows coordinate the generator and the configuration file updater to
// implement complete user-facing features, independent of CLI concerns like
// flag parsing, spinners, and output formatting.
//
// # Available Workflows
//
//   - CreateSecret: generates a new secret and upserts it into the target file
//   - CheckSecret: reads a stored secret back and validates its format
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package so the CLI
// layer can choose messages without string matching:
//
//	result, err := workflows.CreateSecret(ctx, opts)
//	if errors.Is(err, kerrors.ErrNoHardwareIdentifier) {
//	    // Explain that a network interface is required
//	}
//
// # Context Usage
//
// Workflow functions accept a context.Context as their first parameter for
// consistency with the CLI layer. Secret derivation is not cancellable; the
// context is not consulted once generation starts.
package workflows
