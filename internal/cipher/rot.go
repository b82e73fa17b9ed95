// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

const rotInfoText = `# Rotation cipher (rot)

Each letter of the text is moved *key* positions ahead in the alphabet,
wrapping around after ` + "`z`" + `. With a key of 1, ` + "`a`" + ` becomes ` + "`b`" + `,
` + "`b`" + ` becomes ` + "`c`" + `, and so on. Case is preserved and characters outside
the alphabet pass through unchanged.

A common key is 13 (ROT13), where encrypting twice restores the
original text because the shift is half the alphabet.

## Operations

- ` + "`encrypt`" + ` / ` + "`decrypt`" + ` shift forward / backward by the key
- ` + "`bruteforce`" + ` prints all 26 candidate shifts when the key is unknown
- ` + "`generate`" + ` picks a random key between 1 and 26
`

// rotate shifts every letter of text by shift positions, preserving
// case and passing other characters through. shift may be any integer,
// including negative values for decryption.
func rotate(text string, shift int) string {
	offset := ((shift % alphabetSize) + alphabetSize) % alphabetSize
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			out.WriteRune('a' + (r-'a'+rune(offset))%alphabetSize)
		case r >= 'A' && r <= 'Z':
			out.WriteRune('A' + (r-'A'+rune(offset))%alphabetSize)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// bruteforceRot enumerates all 26 shifts of text, one labeled line per
// key, for use when the key is unknown.
func bruteforceRot(text string) string {
	var out strings.Builder
	for i := 0; i < alphabetSize; i++ {
		if i > 0 {
			out.WriteByte('\n')
		}
		fmt.Fprintf(&out, "ROT %d: %s", i, rotate(text, i))
	}
	return out.String()
}

// generateShift returns a uniformly random candidate key in [1, 26].
func generateShift() int {
	return rand.IntN(alphabetSize) + 1
}

func applyRot(op Operation, text string, key Key) (string, error) {
	switch op {
	case Encrypt:
		return rotate(text, key.Shift()), nil
	case Decrypt:
		return rotate(text, -key.Shift()), nil
	case Bruteforce:
		return bruteforceRot(text), nil
	case Generate:
		return strconv.Itoa(generateShift()), nil
	case Info:
		return rotInfoText, nil
	default:
		return "", &UnsupportedOperationError{Cipher: Rot, Operation: op}
	}
}
