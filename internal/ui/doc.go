// Package ui holds the color themes shared by the CLI, the REPL and the
// dashboard.
package ui
