// Package site models the protected pages of a static site.
//
// A protected page is a directory whose index.html or index.md declares the
// protected layout. The directory also holds the password-gated source page
// (index-protected.html by default) and receives the encrypted artifact
// next to it with a .json extension:
//
//	notes/
//	  index.md                 layout: shareable-link-protected
//	  index-protected.html     Source
//	  index-protected.json     Output
//
// The directory name is the page title, which is also its key in the
// secrets file.
package site
