// Package encryptor talks to the local encryption server and verifies the
// artifacts it produces.
//
// The server accepts a JSON body holding a password and a base64 document
// and answers with a JSON envelope ({document, iv, salt}). The client never
// interprets that envelope; it is written to disk verbatim.
package encryptor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/PolarWolf314/slp/internal/configs"
	kerrors "github.com/PolarWolf314/slp/internal/errors"
	logger "github.com/PolarWolf314/slp/internal/logging"
)

// Client posts documents to the encryption server.
type Client struct {
	// Endpoint defaults to configs.DefaultEndpoint.
	Endpoint string

	// HTTPClient defaults to a client with no timeout.
	HTTPClient *http.Client

	Logger logger.Logger
}

// NewClient returns a client for endpoint. A zero timeout means none.
func NewClient(endpoint string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     log,
	}
}

type encryptRequest struct {
	Password string `json:"password"`
	Document string `json:"document"`
}

func (c *Client) endpoint() string {
	if c.Endpoint == "" {
		return configs.DefaultEndpoint
	}
	return c.Endpoint
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{}
	}
	return c.HTTPClient
}

// Encrypt sends the file at src with password to the encryption server and
// writes the raw response body to dst.
//
// Returns ErrInputNotFound if src is not a regular file.
// Returns ErrValidation if password is empty.
// Returns ErrConnectivity if the server cannot be reached.
// Returns a *RemoteError (ErrRemote) if the server answers with a non-200 status.
func (c *Client) Encrypt(ctx context.Context, src, dst, password string) error {
	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: input document %s does not exist", kerrors.ErrInputNotFound, src)
	}

	if password == "" {
		return fmt.Errorf("%w: password is required for encryption", kerrors.ErrValidation)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	body, err := json.Marshal(encryptRequest{
		Password: password,
		Document: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return fmt.Errorf("failed to encode encryption request: %w", err)
	}
	// The body holds the password in clear; wipe it once the request is out.
	defer clear(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build encryption request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.Logger.Debugf("Posting %s (%d bytes) to %s", src, len(data), c.endpoint())
	resp, err := c.httpClient().Do(req)
	clear(body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.Logger.Debugf("Encryption request failed: %v", err)
		return fmt.Errorf("%w at %s. Please make sure the encryption server is running",
			kerrors.ErrConnectivity, c.endpoint())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read encryption server response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &kerrors.RemoteError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := os.WriteFile(dst, respBody, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	c.Logger.Infof("Encryption completed successfully. Output saved to %s", dst)
	return nil
}
