// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"strings"
	"testing"
)

// qwertyKey is a fixed permutation used across the substitution tests.
const qwertyKey = "QWERTYUIOPASDFGHJKLZXCVBNM"

func TestSubstituteEncrypt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		key      string
		expected string
	}{
		{
			name:     "lowercase",
			text:     "abc",
			key:      qwertyKey,
			expected: "qwe",
		},
		{
			name:     "uppercase",
			text:     "ABC",
			key:      qwertyKey,
			expected: "QWE",
		},
		{
			name:     "mixed case and punctuation",
			text:     "Hello, World!",
			key:      qwertyKey,
			expected: "Itssg, Vgksr!",
		},
		{
			name:     "lowercase key works the same",
			text:     "abc",
			key:      strings.ToLower(qwertyKey),
			expected: "qwe",
		},
		{
			name:     "identity key",
			text:     "Hello",
			key:      upperAlphabet,
			expected: "Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := substituteEncrypt(tt.text, tt.key)
			if result != tt.expected {
				t.Errorf("substituteEncrypt(%q, %q) = %q, want %q", tt.text, tt.key, result, tt.expected)
			}
		})
	}
}

func TestSubstituteDecrypt(t *testing.T) {
	t.Parallel()

	result := substituteDecrypt("Itssg, Vgksr!", qwertyKey)
	if result != "Hello, World!" {
		t.Errorf("substituteDecrypt = %q, want %q", result, "Hello, World!")
	}
}

func TestSubstRoundTrip(t *testing.T) {
	t.Parallel()

	key, err := AlphabetKey(qwertyKey)
	if err != nil {
		t.Fatalf("AlphabetKey(%q) error: %v", qwertyKey, err)
	}

	texts := []string{"Hello, World!", "the quick brown fox", "MiXeD 123"}
	for _, text := range texts {
		enc, err := Apply(Subst, Encrypt, text, key)
		if err != nil {
			t.Fatalf("Apply(Subst, Encrypt, %q) error: %v", text, err)
		}
		dec, err := Apply(Subst, Decrypt, enc, key)
		if err != nil {
			t.Fatalf("Apply(Subst, Decrypt, %q) error: %v", enc, err)
		}
		if dec != text {
			t.Errorf("round trip: got %q, want %q", dec, text)
		}
	}
}

func TestGenerateAlphabetKey(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		out, err := Apply(Subst, Generate, "", NoKey())
		if err != nil {
			t.Fatalf("Apply(Subst, Generate) error: %v", err)
		}
		if len(out) != alphabetSize {
			t.Fatalf("generated key %q has length %d, want %d", out, len(out), alphabetSize)
		}
		var seen [alphabetSize]bool
		for j := 0; j < len(out); j++ {
			b := out[j]
			if b < 'A' || b > 'Z' {
				t.Fatalf("generated key %q contains non-uppercase byte %q", out, b)
			}
			if seen[b-'A'] {
				t.Fatalf("generated key %q repeats letter %q", out, b)
			}
			seen[b-'A'] = true
		}
		// A generated key must itself parse as a valid alphabet key.
		if _, err := AlphabetKey(out); err != nil {
			t.Fatalf("generated key %q fails validation: %v", out, err)
		}
	}
}
