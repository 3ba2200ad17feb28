package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`  // RFC3339 with microseconds, UTC.
	RunID     string `json:"run"` // Shared by every entry of one run.
	Operation string `json:"op"`

	Titles []string `json:"titles,omitempty"` // For generate.
	Files  []string `json:"files,omitempty"`  // For encrypt.
	DryRun bool     `json:"dry_run,omitempty"`
}

// Trail appends entries for one run to a log file.
type Trail struct {
	path  string
	runID string
	now   func() time.Time
}

// NewTrail returns a trail writing to path. An empty path disables logging.
func NewTrail(path string) *Trail {
	return &Trail{path: path, runID: uuid.NewString(), now: time.Now}
}

// RunID returns the id stamped on every entry of this trail.
func (t *Trail) RunID() string {
	return t.runID
}

// Path returns the log file, or "" when disabled.
func (t *Trail) Path() string {
	return t.path
}

// Log appends an entry. Failures are ignored.
func (t *Trail) Log(entry Entry) {
	if t == nil || t.path == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = t.now().UTC().Format(timestampLayout)
	}
	entry.RunID = t.runID

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return
	}

	// #nosec G306 -- the log holds titles and paths only.
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the log at path.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}
