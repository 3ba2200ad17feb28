// Package secrets manages the secrets file mapping page titles to passwords.
//
// The secrets file is a flat YAML mapping. Each value is either a literal
// password, an option tag such as "<secret, bytes:16>" asking for a
// generated password, or empty (also asking for a generated password):
//
//	notes: correct-horse-battery-staple
//	trip: <secret, bytes:16>
//	drafts:
//
// The file is decoded into a yaml.v3 node tree so that saving it after
// passwords were generated keeps key order and comments intact.
//
// Generated passwords are URL-safe base64 (no padding) of bytes read from
// crypto/rand.
package secrets
