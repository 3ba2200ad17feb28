package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Input errors indicate a file the workflow depends on is missing.
var (
	// ErrInputNotFound indicates the document to encrypt does not exist or is not a regular file.
	ErrInputNotFound = errors.New("input document not found")

	// ErrNoPagesFound indicates no page declares the protected layout.
	ErrNoPagesFound = errors.New("no protected pages found")
)

// Init errors indicate the site already has slp files in place.
var (
	// ErrAlreadyInitialized indicates the settings file already exists.
	ErrAlreadyInitialized = errors.New("settings file already exists")
)

// Validation errors indicate a value supplied by the user is unusable.
var (
	// ErrValidation indicates a value failed validation (empty password, bad option value).
	ErrValidation = errors.New("validation failed")

	// ErrSetupInvalid indicates setup validation collected one or more problems.
	ErrSetupInvalid = errors.New("encryption setup validation failed")

	// ErrStructural indicates a YAML document does not have the expected shape.
	ErrStructural = errors.New("unexpected document structure")
)

// Server errors indicate a failure talking to the encryption server.
var (
	// ErrConnectivity indicates the encryption server could not be reached.
	ErrConnectivity = errors.New("unable to reach the encryption server")

	// ErrRemote indicates the encryption server answered with a non-200 status.
	ErrRemote = errors.New("encryption server returned an error")
)

// Artifact errors indicate an encrypted artifact failed verification.
var (
	// ErrInvalidArtifact indicates the artifact is not a decodable envelope or fails authentication.
	ErrInvalidArtifact = errors.New("invalid encrypted artifact")

	// ErrArtifactMismatch indicates the artifact decrypts to something other than its source page.
	ErrArtifactMismatch = errors.New("encrypted artifact does not match its source")
)

// RemoteError carries the status code and body of a failed encryption request.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%v: failed with status code %d. Response: %s", ErrRemote, e.StatusCode, e.Body)
}

// Is reports whether target is ErrRemote.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// SetupError aggregates every problem found during setup validation.
type SetupError struct {
	Lines []string
}

func (e *SetupError) Error() string {
	var b strings.Builder
	b.WriteString(ErrSetupInvalid.Error())
	b.WriteString(":")
	for _, line := range e.Lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// Is reports whether target is ErrSetupInvalid.
func (e *SetupError) Is(target error) bool {
	return target == ErrSetupInvalid
}
