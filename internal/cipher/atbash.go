// SPDX-License-Identifier: MPL-2.0

package cipher

import "strings"

const atbashInfoText = `# Atbash cipher (atbash)

Each letter is replaced by its mirror in the alphabet: ` + "`a <-> z`" + `,
` + "`b <-> y`" + `, and so on. Case is preserved and characters outside the
alphabet pass through unchanged.

The mapping is its own inverse, so encrypt and decrypt are the same
operation and no key is needed.
`

// mirror replaces every letter with its mirror position in the
// same-case alphabet. Applying it twice restores the input.
func mirror(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			out.WriteRune('a' + 'z' - r)
		case r >= 'A' && r <= 'Z':
			out.WriteRune('A' + 'Z' - r)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func applyAtbash(op Operation, text string) (string, error) {
	switch op {
	case Encrypt, Decrypt:
		return mirror(text), nil
	case Info:
		return atbashInfoText, nil
	default:
		return "", &UnsupportedOperationError{Cipher: Atbash, Operation: op}
	}
}
