package encryptor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger "github.com/PolarWolf314/slp/internal/logging"
)

func testLogger() logger.Logger {
	return logger.Logger{Out: io.Discard, Err: io.Discard}
}

func newHTTPServer(t *testing.T, handler http.Handler) string {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts.URL
}
