// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// KeyNone marks ciphers whose transform takes no key (numval, atbash).
	KeyNone KeyKind = "none"
	// KeyShift marks ciphers keyed by an integer offset (rot).
	KeyShift KeyKind = "shift"
	// KeyAlphabet marks ciphers keyed by a 26-letter permutation (subst).
	KeyAlphabet KeyKind = "alphabet"
)

var (
	// ErrInvalidShiftKey is returned when a shift key is not an integer.
	ErrInvalidShiftKey = errors.New("invalid shift key")
	// ErrInvalidAlphabetKey is returned when an alphabet key is not a
	// permutation of the 26 letters.
	ErrInvalidAlphabetKey = errors.New("invalid alphabet key")
	// ErrKeyKindMismatch is the sentinel wrapped by KeyKindMismatchError.
	ErrKeyKindMismatch = errors.New("key kind mismatch")
)

type (
	// KeyKind identifies which key variant a cipher requires.
	KeyKind string

	// Key is a typed key variant: no key, an integer shift, or a
	// 26-letter key alphabet. The zero value is the "no key" variant.
	// Keys are constructed via NoKey, ShiftKey, AlphabetKey, or ParseKey,
	// so an alphabet key always holds a validated permutation.
	Key struct {
		kind     KeyKind
		shift    int
		alphabet string
	}

	// InvalidShiftKeyError is returned when a shift key cannot be parsed
	// as an integer. It wraps ErrInvalidShiftKey for errors.Is().
	InvalidShiftKeyError struct {
		Raw string
	}

	// InvalidAlphabetKeyError is returned when an alphabet key is not an
	// exact permutation of the 26 letters. It wraps ErrInvalidAlphabetKey
	// for errors.Is().
	InvalidAlphabetKeyError struct {
		Raw    string
		Reason string
	}

	// KeyKindMismatchError is returned by Apply when the supplied key's
	// kind does not match the cipher's declared key kind.
	// It wraps ErrKeyKindMismatch for errors.Is().
	KeyKindMismatchError struct {
		Cipher Cipher
		Want   KeyKind
		Got    KeyKind
	}
)

// NoKey returns the keyless variant.
func NoKey() Key { return Key{kind: KeyNone} }

// ShiftKey returns an integer-shift key. Any integer is accepted; the
// rotation transform reduces it modulo 26.
func ShiftKey(n int) Key { return Key{kind: KeyShift, shift: n} }

// AlphabetKey returns a key-alphabet key after validating that s is an
// exact case-insensitive permutation of the 26 letters. The original
// casing is preserved; the substitution transform case-folds as needed.
func AlphabetKey(s string) (Key, error) {
	if len(s) != alphabetSize {
		return Key{}, &InvalidAlphabetKeyError{
			Raw:    s,
			Reason: fmt.Sprintf("must be exactly %d letters, got %d characters", alphabetSize, len(s)),
		}
	}
	var seen [alphabetSize]bool
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
			b -= 'a' - 'A'
		case b >= 'A' && b <= 'Z':
		default:
			return Key{}, &InvalidAlphabetKeyError{
				Raw:    s,
				Reason: fmt.Sprintf("contains non-letter character %q", s[i]),
			}
		}
		if seen[b-'A'] {
			return Key{}, &InvalidAlphabetKeyError{
				Raw:    s,
				Reason: fmt.Sprintf("letter %q appears more than once", b),
			}
		}
		seen[b-'A'] = true
	}
	return Key{kind: KeyAlphabet, alphabet: s}, nil
}

// ParseKey parses a raw key string into the key variant required by
// kind. This replaces the original best-effort int coercion with an
// explicit parser: a shift key that is not an integer and an alphabet
// key that is not a permutation are distinct, typed failures.
func ParseKey(raw string, kind KeyKind) (Key, error) {
	switch kind {
	case KeyNone:
		return NoKey(), nil
	case KeyShift:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Key{}, &InvalidShiftKeyError{Raw: raw}
		}
		return ShiftKey(n), nil
	case KeyAlphabet:
		return AlphabetKey(strings.TrimSpace(raw))
	default:
		return Key{}, fmt.Errorf("unknown key kind %q", kind)
	}
}

// Kind returns the key's variant tag. The zero value reports KeyNone.
func (k Key) Kind() KeyKind {
	if k.kind == "" {
		return KeyNone
	}
	return k.kind
}

// Shift returns the integer offset of a shift key. It is only
// meaningful when Kind() == KeyShift.
func (k Key) Shift() int { return k.shift }

// Alphabet returns the key alphabet of an alphabet key. It is only
// meaningful when Kind() == KeyAlphabet.
func (k Key) Alphabet() string { return k.alphabet }

// String returns the string representation of the KeyKind.
func (kk KeyKind) String() string { return string(kk) }

// Error implements the error interface for InvalidShiftKeyError.
func (e *InvalidShiftKeyError) Error() string {
	return fmt.Sprintf("invalid shift key %q: must be an integer", e.Raw)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidShiftKeyError) Unwrap() error { return ErrInvalidShiftKey }

// Error implements the error interface for InvalidAlphabetKeyError.
func (e *InvalidAlphabetKeyError) Error() string {
	return fmt.Sprintf("invalid alphabet key %q: %s", e.Raw, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidAlphabetKeyError) Unwrap() error { return ErrInvalidAlphabetKey }

// Error implements the error interface for KeyKindMismatchError.
func (e *KeyKindMismatchError) Error() string {
	return fmt.Sprintf("cipher %q requires a %s key, got a %s key", e.Cipher, e.Want, e.Got)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *KeyKindMismatchError) Unwrap() error { return ErrKeyKindMismatch }
