// Package ui provides semantic text formatting for slp output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead.
//
//	ui.Code.Sprint("slp check")                           // Commands
//	ui.Path.Sprint("notes/index-protected.json")          // File paths
//	ui.Highlight.Sprint("notes")                          // Page titles
//	ui.Success.Sprint("✓")                                // Success indicators
//	ui.Error.Sprint("✗")                                  // Error indicators
//	ui.Info.Sprint("→")                                   // Hints
//
// Without colors, Code renders as `backticks`, Highlight as 'quotes' and
// Muted as (parentheses). Other formatters are left undecorated.
package ui
