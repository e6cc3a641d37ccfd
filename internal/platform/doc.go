// Package platform contains OS-specific helpers: the launcher data
// directory and launching apps or URLs with the platform opener.
package platform
