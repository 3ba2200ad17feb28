// Package configs manages slp settings.
//
// Settings are optional and stored in TOML at encrypt/slp.toml relative to
// the site root. Any key left out of the file keeps its default:
//
//	layout         = "shareable-link-protected"
//	max_lines      = 50
//	secrets_file   = "encrypt/slp_secrets.yaml"
//	protected_name = "index-protected.html"
//	endpoint       = "http://127.0.0.1:49160/encrypt"
//	default_bytes  = 32
//	skip           = ["_site/**", ".git/**", "node_modules/**"]
//	site_config    = "_config.yaml"
//	kdf_iterations = 480000
//
// timeout (a duration such as "30s") and audit_log (a path) are unset by
// default: requests use the HTTP client's default behavior and no audit
// trail is written.
//
// Relative paths are resolved against the site root with Settings.Path.
package configs
