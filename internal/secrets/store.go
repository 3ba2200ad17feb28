package secrets

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

// Entry is one title and its raw value, in file order.
type Entry struct {
	Title string
	Value string
}

// Store is a loaded secrets file.
type Store struct {
	path  string
	doc   *yaml.Node
	root  *yaml.Node
	dirty bool
}

// Load reads and parses the secrets file at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse builds a Store from YAML data. path is where Save writes.
func Parse(path string, data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", kerrors.ErrValidation, path, err)
	}

	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: failed to parse as a mapping: %s", kerrors.ErrStructural, path)
	}

	root := doc.Content[0]
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %s line %d: keys must be page titles", kerrors.ErrStructural, path, key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %s line %d: value for %q must be a string", kerrors.ErrStructural, path, value.Line, key.Value)
		}
		if seen[key.Value] {
			return nil, fmt.Errorf("%w: %s line %d: duplicate title %q", kerrors.ErrStructural, path, key.Line, key.Value)
		}
		seen[key.Value] = true
	}

	return &Store{path: path, doc: &doc, root: root}, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Entries returns every title and raw value in file order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.root.Content)/2)
	for i := 0; i+1 < len(s.root.Content); i += 2 {
		entries = append(entries, Entry{Title: s.root.Content[i].Value, Value: scalarValue(s.root.Content[i+1])})
	}
	return entries
}

// Titles returns every title in file order.
func (s *Store) Titles() []string {
	titles := make([]string, 0, len(s.root.Content)/2)
	for i := 0; i+1 < len(s.root.Content); i += 2 {
		titles = append(titles, s.root.Content[i].Value)
	}
	return titles
}

// Get returns the raw value for title. Null values are returned as "".
func (s *Store) Get(title string) (string, bool) {
	node := s.lookup(title)
	if node == nil {
		return "", false
	}
	return scalarValue(node), true
}

// Set replaces the value for title, appending the title if absent.
func (s *Store) Set(title, value string) {
	s.dirty = true

	node := s.lookup(title)
	if node == nil {
		s.root.Content = append(s.root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: title},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
		return
	}

	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	node.Style = 0
	node.Value = value
}

// Dirty reports whether Set was called since the store was loaded or saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Marshal encodes the store as YAML.
func (s *Store) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save overwrites the secrets file with the current contents.
func (s *Store) Save() error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode secrets file %s: %w", s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write secrets file %s: %w", s.path, err)
	}

	s.dirty = false
	return nil
}

func (s *Store) lookup(title string) *yaml.Node {
	for i := 0; i+1 < len(s.root.Content); i += 2 {
		if s.root.Content[i].Value == title {
			return s.root.Content[i+1]
		}
	}
	return nil
}

func scalarValue(node *yaml.Node) string {
	if node.Tag == "!!null" {
		return ""
	}
	return node.Value
}
