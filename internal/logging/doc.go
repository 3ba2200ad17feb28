// Package logger provides leveled console logging for slp commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed with a colored level tag.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows info and debug messages
//
// Warnings and errors are always shown.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %d pages", count)
//
// The root command builds the logger in its PersistentPreRun and passes it
// to workflows. Never pass password values to the logger.
package logger
