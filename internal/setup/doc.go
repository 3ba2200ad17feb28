// Package setup checks that a site is ready to be encrypted.
//
// Validation never stops at the first problem. Missing source pages,
// titles absent from the secrets file and unknown option tag arguments are
// all collected into a Report, so a single run shows everything that needs
// fixing. Passwords are generated only once every secrets entry has been
// checked and the report is still empty.
package setup
