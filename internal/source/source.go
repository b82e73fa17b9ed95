// SPDX-License-Identifier: MPL-2.0

// Package source loads text and key inputs that may be given either as
// a literal value or as a path to a file.
package source

import (
	"os"
	"strings"

	"cipherly/internal/issue"
)

// Load resolves an input argument. If arg names an existing regular
// file, the file's contents are used; otherwise arg itself is the
// value. Either way the result is trimmed of surrounding whitespace.
func Load(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil || !info.Mode().IsRegular() {
		return strings.TrimSpace(arg), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("read input file").
			WithResource(arg).
			WithSuggestion("Check that the file is readable").
			Wrap(err).
			BuildError()
	}
	return strings.TrimSpace(string(data)), nil
}

// IsAllDigits reports whether s is non-empty and made only of decimal
// digits. Purely numeric text inputs are rejected upstream because they
// are almost always a numval ciphertext passed with the wrong flags.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
