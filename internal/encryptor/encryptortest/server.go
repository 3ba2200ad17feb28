// Package encryptortest provides an in-process stand-in for the encryption
// server, for use in tests.
package encryptortest

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// Iterations is a PBKDF2 cost low enough to keep tests fast.
const Iterations = 1000

// Request is one request received by the server.
type Request struct {
	ContentType string
	Password    string
	Document    []byte
}

// Server answers POST /encrypt the way the real encryption server does.
type Server struct {
	*httptest.Server

	iterations int

	mu       sync.Mutex
	requests []Request
	status   int
	body     string
}

// NewServer starts a server deriving keys with the given PBKDF2 iterations.
// It is closed automatically when the test ends.
func NewServer(t interface{ Cleanup(func()) }, iterations int) *Server {
	s := &Server{iterations: iterations}
	mux := http.NewServeMux()
	mux.HandleFunc("/encrypt", s.handleEncrypt)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// Endpoint returns the URL of the encrypt route.
func (s *Server) Endpoint() string {
	return s.URL + "/encrypt"
}

// Fail makes every following request answer with status and body.
func (s *Server) Fail(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

type envelope struct {
	Document string `json:"document"`
	IV       string `json:"iv"`
	Salt     string `json:"salt"`
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Password string `json:"password"`
		Document string `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, err)
		return
	}
	document, err := base64.StdEncoding.DecodeString(body.Document)
	if err != nil {
		writeFailure(w, err)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		ContentType: r.Header.Get("Content-Type"),
		Password:    body.Password,
		Document:    document,
	})
	status, failBody := s.status, s.body
	s.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(failBody))
		return
	}

	artifact, err := Seal(document, body.Password, s.iterations)
	if err != nil {
		writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(artifact)
}

func writeFailure(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Encryption failed", "details": err.Error()})
}

// Seal encrypts document with a fresh salt and IV using the server's scheme:
// PBKDF2-SHA256 to a 32 byte key, AES-256-GCM, tag appended to ciphertext.
// It returns the JSON envelope.
func Seal(document []byte, password string, iterations int) ([]byte, error) {
	salt := make([]byte, 16)
	iv := make([]byte, 12)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{
		Document: base64.StdEncoding.EncodeToString(gcm.Seal(nil, iv, document, nil)),
		IV:       base64.StdEncoding.EncodeToString(iv),
		Salt:     base64.StdEncoding.EncodeToString(salt),
	})
}
