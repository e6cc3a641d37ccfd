// Package catalog supplies the launcher's app list: an in-memory source for
// tests and the terminal host, a SQLite-backed store for the Fyne host, and
// the sorting and filtering applied before rows reach the screen.
package catalog
