// SPDX-License-Identifier: MPL-2.0

package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		arg      string
		expected string
	}{
		{
			name:     "plain literal",
			arg:      "hello world",
			expected: "hello world",
		},
		{
			name:     "surrounding whitespace trimmed",
			arg:      "  hello \n",
			expected: "hello",
		},
		{
			name:     "nonexistent path is a literal",
			arg:      "/no/such/file/hopefully.txt",
			expected: "/no/such/file/hopefully.txt",
		},
		{
			name:     "empty",
			arg:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Load(tt.arg)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", tt.arg, err)
			}
			if result != tt.expected {
				t.Errorf("Load(%q) = %q, want %q", tt.arg, result, tt.expected)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(path, []byte("  attack at dawn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if result != "attack at dawn" {
		t.Errorf("Load(file) = %q, want %q", result, "attack at dawn")
	}
}

func TestLoadDirectoryIsLiteral(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	result, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", dir, err)
	}
	if result != dir {
		t.Errorf("Load(dir) = %q, want the literal %q", result, dir)
	}
}

func TestIsAllDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "digits only", input: "12345", expected: true},
		{name: "single digit", input: "0", expected: true},
		{name: "letters", input: "abc", expected: false},
		{name: "mixed", input: "12a", expected: false},
		{name: "digits with space", input: "1 2", expected: false},
		{name: "negative number", input: "-5", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if result := IsAllDigits(tt.input); result != tt.expected {
				t.Errorf("IsAllDigits(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
