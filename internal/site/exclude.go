package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

const excludeKey = "exclude"

// UpdateExclude adds the source page of every protected page, relative to
// root and slash separated, to the exclude list of the site's YAML config.
// The list is created when absent. The file is rewritten only when
// something was added; the added entries are returned.
func UpdateExclude(configPath, root string, pages []Page) ([]string, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", configPath, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", kerrors.ErrValidation, configPath, err)
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: failed to parse as a mapping: %s", kerrors.ErrStructural, configPath)
	}

	exclude, err := excludeList(doc.Content[0], configPath)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(exclude.Content))
	for _, item := range exclude.Content {
		present[item.Value] = true
	}

	var added []string
	for _, page := range pages {
		rel, err := filepath.Rel(root, page.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", page.Source, err)
		}
		rel = filepath.ToSlash(rel)
		if present[rel] {
			continue
		}
		present[rel] = true
		exclude.Content = append(exclude.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rel})
		added = append(added, rel)
	}

	if len(added) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode site config %s: %w", configPath, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode site config %s: %w", configPath, err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write site config %s: %w", configPath, err)
	}

	return added, nil
}

func excludeList(mapping *yaml.Node, configPath string) (*yaml.Node, error) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != excludeKey {
			continue
		}
		value := mapping.Content[i+1]
		if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
			*value = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		}
		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: %s: %q must be a list", kerrors.ErrStructural, configPath, excludeKey)
		}
		return value, nil
	}

	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: excludeKey},
		list,
	)
	return list, nil
}
