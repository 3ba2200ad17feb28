package encryptor

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/pbkdf2"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

// KeySize is the AES-256 key length derived from the password.
const KeySize = 32

// Envelope is the artifact written by the encryption server. Document is
// the AES-GCM ciphertext with the authentication tag appended.
type Envelope struct {
	Document string `json:"document"`
	IV       string `json:"iv"`
	Salt     string `json:"salt"`
}

// ReadEnvelope decodes the artifact at path.
func ReadEnvelope(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidArtifact, path, err)
	}
	if env.Document == "" || env.IV == "" || env.Salt == "" {
		return nil, fmt.Errorf("%w: %s: document, iv and salt are required", kerrors.ErrInvalidArtifact, path)
	}
	return &env, nil
}

// DeriveKey stretches password with PBKDF2-SHA256.
func DeriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, KeySize, sha256.New)
}

// Decrypt opens the envelope with a key derived from password.
func (e *Envelope) Decrypt(password string, iterations int) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(e.Document)
	if err != nil {
		return nil, fmt.Errorf("%w: document: %v", kerrors.ErrInvalidArtifact, err)
	}
	iv, err := base64.StdEncoding.DecodeString(e.IV)
	if err != nil || len(iv) == 0 {
		return nil, fmt.Errorf("%w: iv is not valid base64", kerrors.ErrInvalidArtifact)
	}
	salt, err := base64.StdEncoding.DecodeString(e.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", kerrors.ErrInvalidArtifact, err)
	}

	key := DeriveKey(password, salt, iterations)
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, len(iv))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidArtifact, err)
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: wrong password or corrupted document", kerrors.ErrInvalidArtifact)
	}
	return plaintext, nil
}

// Verify decrypts the artifact with password and checks that it matches
// the source page byte for byte.
func Verify(artifact, source, password string, iterations int) error {
	if password == "" {
		return fmt.Errorf("%w: password is required for verification", kerrors.ErrValidation)
	}

	want, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("%w: %s", kerrors.ErrInputNotFound, source)
	}

	env, err := ReadEnvelope(artifact)
	if err != nil {
		return err
	}

	got, err := env.Decrypt(password, iterations)
	if err != nil {
		return fmt.Errorf("%s: %w", artifact, err)
	}

	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s", kerrors.ErrArtifactMismatch, artifact)
	}
	return nil
}
