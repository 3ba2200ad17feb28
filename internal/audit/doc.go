// Package audit records what slp changed, as JSON Lines.
//
// Each run gets a random run id. The workflow logs a "generate" entry
// listing the titles that received new passwords and an "encrypt" entry
// listing the artifacts written. Passwords are never recorded.
//
//	{"ts":"2026-10-18T09:12:44.031337Z","run":"7c9e...","op":"encrypt","files":["notes/index-protected.json"]}
//
// Logging is best-effort: a failure to write the log never fails the run.
// A Trail with an empty path is disabled.
package audit
