// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"math/rand/v2"
	"strings"
)

const substInfoText = `# Substitution cipher (subst)

The key is a custom alphabet: a rearrangement of the 26 letters. Each
letter of the regular alphabet (` + "`a, b, c, ...`" + `) is replaced by the
letter at the same position in the key, matching the input's case.
Characters outside the alphabet pass through unchanged.

For example, with the key ` + "`QWERTYUIOPASDFGHJKLZXCVBNM`" + ` the letter
` + "`a`" + ` encrypts to ` + "`q`" + ` and ` + "`B`" + ` encrypts to ` + "`W`" + `.

## Operations

- ` + "`encrypt`" + ` maps alphabet position to key position
- ` + "`decrypt`" + ` applies the inverse mapping
- ` + "`generate`" + ` produces a random 26-letter key alphabet
`

// substituteEncrypt replaces each letter with the key letter at the
// same alphabet index, case-matched.
func substituteEncrypt(text, key string) string {
	keyLower := strings.ToLower(key)
	keyUpper := strings.ToUpper(key)
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			out.WriteByte(keyLower[r-'a'])
		case r >= 'A' && r <= 'Z':
			out.WriteByte(keyUpper[r-'A'])
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// substituteDecrypt looks each letter up in the key and emits the
// alphabet letter at that position. Keys are validated permutations, so
// every letter of the input has exactly one position in the key.
func substituteDecrypt(text, key string) string {
	keyLower := strings.ToLower(key)
	keyUpper := strings.ToUpper(key)
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			out.WriteByte(lowerAlphabet[strings.IndexByte(keyLower, byte(r))])
		case r >= 'A' && r <= 'Z':
			out.WriteByte(upperAlphabet[strings.IndexByte(keyUpper, byte(r))])
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// generateAlphabetKey returns a uniformly random permutation of the 26
// uppercase letters, each used exactly once.
func generateAlphabetKey() string {
	letters := []byte(upperAlphabet)
	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return string(letters)
}

func applySubst(op Operation, text string, key Key) (string, error) {
	switch op {
	case Encrypt:
		return substituteEncrypt(text, key.Alphabet()), nil
	case Decrypt:
		return substituteDecrypt(text, key.Alphabet()), nil
	case Generate:
		return generateAlphabetKey(), nil
	case Info:
		return substInfoText, nil
	default:
		return "", &UnsupportedOperationError{Cipher: Subst, Operation: op}
	}
}
