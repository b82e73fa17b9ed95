// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"strconv"
	"strings"
	"testing"
)

func TestRotate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		shift    int
		expected string
	}{
		{
			name:     "simple shift",
			text:     "abc",
			shift:    1,
			expected: "bcd",
		},
		{
			name:     "wraps around alphabet end",
			text:     "xyz",
			shift:    3,
			expected: "abc",
		},
		{
			name:     "preserves case",
			text:     "Hello",
			shift:    13,
			expected: "Uryyb",
		},
		{
			name:     "non-letters pass through",
			text:     "attack at dawn!",
			shift:    3,
			expected: "dwwdfn dw gdzq!",
		},
		{
			name:     "zero shift is identity",
			text:     "Hello, World!",
			shift:    0,
			expected: "Hello, World!",
		},
		{
			name:     "negative shift",
			text:     "bcd",
			shift:    -1,
			expected: "abc",
		},
		{
			name:     "shift beyond 26 reduces modulo",
			text:     "abc",
			shift:    27,
			expected: "bcd",
		},
		{
			name:     "large negative shift",
			text:     "abc",
			shift:    -53,
			expected: "zab",
		},
		{
			name:     "empty text",
			text:     "",
			shift:    5,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := rotate(tt.text, tt.shift)
			if result != tt.expected {
				t.Errorf("rotate(%q, %d) = %q, want %q", tt.text, tt.shift, result, tt.expected)
			}
		})
	}
}

func TestRotRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{"Hello, World!", "attack at dawn", "MiXeD CaSe 123"}
	for key := -30; key <= 30; key += 7 {
		for _, text := range texts {
			enc, err := Apply(Rot, Encrypt, text, ShiftKey(key))
			if err != nil {
				t.Fatalf("Apply(Rot, Encrypt, %q, %d) error: %v", text, key, err)
			}
			dec, err := Apply(Rot, Decrypt, enc, ShiftKey(key))
			if err != nil {
				t.Fatalf("Apply(Rot, Decrypt, %q, %d) error: %v", enc, key, err)
			}
			if dec != text {
				t.Errorf("round trip with key %d: got %q, want %q", key, dec, text)
			}
		}
	}
}

func TestBruteforceRot(t *testing.T) {
	t.Parallel()

	out, err := Apply(Rot, Bruteforce, "HELLO", NoKey())
	if err != nil {
		t.Fatalf("Apply(Rot, Bruteforce) error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != alphabetSize {
		t.Fatalf("bruteforce produced %d lines, want %d", len(lines), alphabetSize)
	}
	if lines[0] != "ROT 0: HELLO" {
		t.Errorf("line 0 = %q, want %q", lines[0], "ROT 0: HELLO")
	}
	if lines[13] != "ROT 13: URYYB" {
		t.Errorf("line 13 = %q, want %q", lines[13], "ROT 13: URYYB")
	}
	for i, line := range lines {
		prefix := "ROT " + strconv.Itoa(i) + ": "
		if !strings.HasPrefix(line, prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, line, prefix)
		}
	}
}

func TestGenerateShift(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		out, err := Apply(Rot, Generate, "", NoKey())
		if err != nil {
			t.Fatalf("Apply(Rot, Generate) error: %v", err)
		}
		n, err := strconv.Atoi(out)
		if err != nil {
			t.Fatalf("generated key %q is not an integer", out)
		}
		if n < 1 || n > alphabetSize {
			t.Errorf("generated key %d outside [1, %d]", n, alphabetSize)
		}
	}
}

func TestRotInfo(t *testing.T) {
	t.Parallel()

	out, err := Apply(Rot, Info, "", NoKey())
	if err != nil {
		t.Fatalf("Apply(Rot, Info) error: %v", err)
	}
	if !strings.Contains(out, "ROT13") {
		t.Errorf("rot info text does not mention ROT13: %q", out)
	}
}
