// Package utils provides small helpers shared by the CLI layer.
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether an output stream is an interactive terminal
package utils
