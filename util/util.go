// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/radiosan-cli/radiosan/filesystem"
	"golang.org/x/term"
)

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize retrieves the current character dimensions of the terminal window.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable prints an ephemeral message to the terminal and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Delete recursively removes a file or directory using the virtualized filesystem API.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
