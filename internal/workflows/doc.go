// Package workflows provides high-level orchestration for slp commands.
//
// Workflows coordinate the configs, site, setup, secrets, encryptor and
// audit packages to implement complete user-facing features, independent
// of CLI concerns like flag parsing, spinners and output formatting.
//
// # Available Workflows
//
//   - Run: scan, validate, generate passwords and encrypt every protected page
//   - Status: list protected pages and whether their artifacts are current
//   - Verify: decrypt every artifact and compare it with its source page
//   - Exclude: add protected source pages to the site config's exclude list
//   - Init: write the default settings file
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Setup
// problems come back together as a *errors.SetupError:
//
//	result, err := workflows.Run(ctx, opts)
//	var setupErr *kerrors.SetupError
//	if errors.As(err, &setupErr) {
//	    // Show every collected problem
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Run passes it to each encryption request.
package workflows
