// Package optiontag parses the <args, key:value> directives used in the
// secrets file to request generated passwords.
//
// A tag is a value whose trimmed text starts with '<' and ends with '>'.
// The interior is a comma separated list of tokens. Tokens holding the
// delimiter are keyword options, the rest are positional arguments. The
// delimiter is ':' when the interior contains one anywhere, '=' otherwise.
//
//	Parse("<secret, bytes:16>") // Options, Args [secret], Kwargs {bytes: 16}
//	Parse("<>")                 // Empty
//	Parse("hunter2")            // NotTag
package optiontag

import "strings"

// Kind classifies a parsed value.
type Kind int

const (
	// NotTag is an ordinary literal value.
	NotTag Kind = iota
	// Empty is the bare "<>" tag.
	Empty
	// Options is a tag carrying at least one token.
	Options
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Options:
		return "options"
	default:
		return "not-a-tag"
	}
}

// Tag is the result of Parse. Args and Kwargs are nil unless Kind is Options.
type Tag struct {
	Kind   Kind
	Args   []string
	Kwargs map[string]string
}

// IsTag reports whether the value used tag syntax at all.
func (t Tag) IsTag() bool {
	return t.Kind != NotTag
}

// Parse decodes s. Token contents are not validated.
func Parse(s string) Tag {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return Tag{Kind: NotTag}
	}

	interior := s[1 : len(s)-1]
	if interior == "" {
		return Tag{Kind: Empty}
	}

	delim := "="
	if strings.Contains(interior, ":") {
		delim = ":"
	}

	tag := Tag{Kind: Options, Args: []string{}, Kwargs: map[string]string{}}
	for _, token := range strings.Split(interior, ",") {
		token = strings.TrimSpace(token)
		key, value, found := strings.Cut(token, delim)
		if !found {
			tag.Args = append(tag.Args, token)
			continue
		}
		tag.Kwargs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return tag
}
