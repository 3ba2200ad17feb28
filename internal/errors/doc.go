// Package errors provides typed error values for slp.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: the page to encrypt is missing (ErrInputNotFound)
//   - Validation errors: empty password, bad option tag values (ErrValidation)
//   - Setup errors: aggregated configuration problems (ErrSetupInvalid, SetupError)
//   - Structural errors: YAML that is not a mapping (ErrStructural)
//   - Server errors: the encryption server is unreachable (ErrConnectivity)
//     or answered with a non-200 status (ErrRemote, RemoteError)
//   - Artifact errors: verification failures (ErrInvalidArtifact, ErrArtifactMismatch)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", errors.ErrInputNotFound, path)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Run(ctx, opts)
//	var setupErr *kerrors.SetupError
//	if errors.As(err, &setupErr) {
//	    // Show every collected problem
//	}
package errors
