// Package logger provides leveled logging for Ironmonger CLI commands.
//
// The logger supports verbosity levels controlled by command-line flags.
// Output is formatted with colored prefixes from fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details and errors
//
// Warnings are always shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Writing %s", path)
//
// Never pass entropy, salts or secret values to the logger.
package logger
