// Package utils provides shared utility functions for slp commands.
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - RelPaths: makes paths relative to the site root for display
//
// # Terminal Utilities
//
//   - IsTerminal: reports whether stdout is a terminal, so spinners can be
//     skipped when output is piped
package utils
