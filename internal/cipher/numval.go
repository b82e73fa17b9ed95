// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const numvalInfoText = `# Numeric value cipher (numval)

Each letter is replaced by its 1-based position in the alphabet
(` + "`A -> 1`" + `, ` + "`B -> 2`" + `, ..., ` + "`Z -> 26`" + `), spaces become ` + "`0`" + `, and
every other character is dropped. The output is case-insensitive:
input is uppercased before encoding.

Decryption reverses the mapping: whitespace-separated tokens between
0 and 26 become spaces and letters.

This cipher takes no key.
`

// ErrInvalidNumvalToken is returned when a numval decrypt token is not
// an integer between 0 and 26.
var ErrInvalidNumvalToken = errors.New("invalid numeric token")

// InvalidNumvalTokenError is returned when a numval decrypt token
// cannot be mapped back to a letter or space.
// It wraps ErrInvalidNumvalToken for errors.Is() compatibility.
type InvalidNumvalTokenError struct {
	Token string
}

// Error implements the error interface for InvalidNumvalTokenError.
func (e *InvalidNumvalTokenError) Error() string {
	return fmt.Sprintf("invalid numeric token %q: must be an integer between 0 and 26", e.Token)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidNumvalTokenError) Unwrap() error { return ErrInvalidNumvalToken }

// numericEncrypt emits one space-terminated token per kept character:
// the 1-based alphabet index for letters, "0" for spaces. Every other
// character is silently dropped. The trailing space after the last
// token is part of the output format.
func numericEncrypt(text string) string {
	var out strings.Builder
	for _, r := range strings.ToUpper(text) {
		switch {
		case r >= 'A' && r <= 'Z':
			out.WriteString(strconv.Itoa(int(r-'A') + 1))
			out.WriteByte(' ')
		case r == ' ':
			out.WriteString("0 ")
		}
	}
	return out.String()
}

// numericDecrypt maps whitespace-separated tokens back to uppercase
// letters (1..26) and spaces (0). Malformed tokens are a typed error
// rather than a crash.
func numericDecrypt(text string) (string, error) {
	var out strings.Builder
	for _, token := range strings.Fields(text) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > alphabetSize {
			return "", &InvalidNumvalTokenError{Token: token}
		}
		if n == 0 {
			out.WriteByte(' ')
			continue
		}
		out.WriteByte(upperAlphabet[n-1])
	}
	return out.String(), nil
}

func applyNumval(op Operation, text string) (string, error) {
	switch op {
	case Encrypt:
		return numericEncrypt(text), nil
	case Decrypt:
		return numericDecrypt(text)
	case Info:
		return numvalInfoText, nil
	default:
		return "", &UnsupportedOperationError{Cipher: Numval, Operation: op}
	}
}
