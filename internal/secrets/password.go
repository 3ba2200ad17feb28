package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

// DefaultPasswordBytes is the entropy of a generated password when no size is requested.
const DefaultPasswordBytes = 32

// GeneratePassword returns nbytes of crypto/rand output as unpadded URL-safe base64.
func GeneratePassword(nbytes int) (string, error) {
	if nbytes <= 0 {
		return "", fmt.Errorf("%w: password size must be positive, got %d", kerrors.ErrValidation, nbytes)
	}

	buf := make([]byte, nbytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
