// Package errors provides typed error values for Ironmonger.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Entropy errors: the machine cannot provide input material (ErrNoHardwareIdentifier, ErrRandomSource)
//   - Secret errors: malformed or missing secret values (ErrInvalidFormat, ErrSecretNotFound, ErrInvalidKeyName)
//   - File errors: the configuration file cannot be accessed (ErrFileAccess, FileError)
//
// # Usage
//
// File operations return a *FileError that carries the OS error:
//
//	if err := updater.Write(path, key, value); err != nil {
//	    if errors.Is(err, kerrors.ErrFileAccess) {
//	        // Show the path and the underlying cause.
//	    }
//	    if errors.Is(err, fs.ErrPermission) {
//	        // The OS error is still reachable.
//	    }
//	}
//
// Nothing in Ironmonger retries on these errors. They propagate to the CLI
// layer, which prints them and exits with status 1.
package errors
