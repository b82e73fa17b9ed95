// SPDX-License-Identifier: MPL-2.0

// Package cipher implements the classical text ciphers supported by
// cipherly and the static dispatch table mapping each cipher to its
// supported operations and required key kind.
//
// All transforms are pure single-pass functions over fixed 26-letter
// ASCII alphabets. Characters outside the alphabet pass through
// unchanged unless a cipher documents otherwise.
package cipher

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// Rot is the rotation (shift) cipher.
	Rot Cipher = "rot"
	// Subst is the monoalphabetic substitution cipher.
	Subst Cipher = "subst"
	// Numval is the letter-to-number cipher.
	Numval Cipher = "numval"
	// Atbash is the mirror-alphabet cipher.
	Atbash Cipher = "atbash"

	// Encrypt transforms plaintext into ciphertext.
	Encrypt Operation = "encrypt"
	// Decrypt transforms ciphertext back into plaintext.
	Decrypt Operation = "decrypt"
	// Bruteforce enumerates every possible key for the cipher.
	Bruteforce Operation = "bruteforce"
	// Generate produces a random key suitable for the cipher.
	Generate Operation = "generate"
	// Info describes the cipher in human-readable form.
	Info Operation = "info"

	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabetSize  = 26
)

var (
	// ErrInvalidCipher is returned when a Cipher value is not recognized.
	ErrInvalidCipher = errors.New("invalid cipher")
	// ErrInvalidOperation is returned when an Operation value is not recognized.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnsupportedOperation is the sentinel wrapped by UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("operation not supported by cipher")
)

type (
	// Cipher identifies one of the supported classical ciphers.
	Cipher string

	// InvalidCipherError is returned when a Cipher value is not recognized.
	// It wraps ErrInvalidCipher for errors.Is() compatibility.
	InvalidCipherError struct {
		Value Cipher
	}

	// Operation identifies a cipher operation.
	Operation string

	// InvalidOperationError is returned when an Operation value is not recognized.
	// It wraps ErrInvalidOperation for errors.Is() compatibility.
	InvalidOperationError struct {
		Value Operation
	}

	// UnsupportedOperationError is returned by Apply when the requested
	// operation is not in the cipher's supported set.
	// It wraps ErrUnsupportedOperation for errors.Is() compatibility.
	UnsupportedOperationError struct {
		Cipher    Cipher
		Operation Operation
	}

	// Descriptor is the static record for one cipher: its supported
	// operations, the key kind it requires for encrypt/decrypt, and its
	// descriptive texts. Descriptors are immutable and process-wide.
	Descriptor struct {
		// Name is the cipher identifier (also its CLI flag name).
		Name Cipher
		// Summary is a one-line description for listings.
		Summary string
		// Operations is the set of operations the cipher supports.
		Operations []Operation
		// KeyKind is the key variant required by encrypt/decrypt.
		KeyKind KeyKind
		// InfoText is the markdown shown by the info operation.
		InfoText string
	}
)

// cipherOrder fixes the display and iteration order of the ciphers.
var cipherOrder = []Cipher{Rot, Subst, Numval, Atbash}

var descriptors = map[Cipher]Descriptor{
	Rot: {
		Name:       Rot,
		Summary:    "Rotation cipher (shift each letter by a fixed offset)",
		Operations: []Operation{Encrypt, Decrypt, Bruteforce, Generate, Info},
		KeyKind:    KeyShift,
		InfoText:   rotInfoText,
	},
	Subst: {
		Name:       Subst,
		Summary:    "Substitution cipher (custom 26-letter key alphabet)",
		Operations: []Operation{Encrypt, Decrypt, Generate, Info},
		KeyKind:    KeyAlphabet,
		InfoText:   substInfoText,
	},
	Numval: {
		Name:       Numval,
		Summary:    "Numeric value cipher (ABC -> 1 2 3)",
		Operations: []Operation{Encrypt, Decrypt, Info},
		KeyKind:    KeyNone,
		InfoText:   numvalInfoText,
	},
	Atbash: {
		Name:       Atbash,
		Summary:    "Atbash cipher (ABC -> ZYX)",
		Operations: []Operation{Encrypt, Decrypt, Info},
		KeyKind:    KeyNone,
		InfoText:   atbashInfoText,
	},
}

// String returns the string representation of the Cipher.
func (c Cipher) String() string { return string(c) }

// IsValid returns whether the Cipher is one of the defined ciphers,
// and a list of validation errors if it is not.
func (c Cipher) IsValid() (bool, []error) {
	if _, ok := descriptors[c]; !ok {
		return false, []error{&InvalidCipherError{Value: c}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCipherError.
func (e *InvalidCipherError) Error() string {
	return fmt.Sprintf("invalid cipher %q (valid: rot, subst, numval, atbash)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidCipherError) Unwrap() error { return ErrInvalidCipher }

// String returns the string representation of the Operation.
func (o Operation) String() string { return string(o) }

// IsValid returns whether the Operation is one of the defined operations,
// and a list of validation errors if it is not.
func (o Operation) IsValid() (bool, []error) {
	switch o {
	case Encrypt, Decrypt, Bruteforce, Generate, Info:
		return true, nil
	default:
		return false, []error{&InvalidOperationError{Value: o}}
	}
}

// Error implements the error interface for InvalidOperationError.
func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation %q (valid: encrypt, decrypt, bruteforce, generate, info)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// Error implements the error interface for UnsupportedOperationError.
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %q is not compatible with cipher %q", e.Operation, e.Cipher)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }

// Supports reports whether the descriptor's cipher supports op.
func (d Descriptor) Supports(op Operation) bool {
	return slices.Contains(d.Operations, op)
}

// NeedsKey reports whether op on this cipher requires a key. Only
// encrypt and decrypt consume keys; bruteforce exists precisely because
// the key is unknown, and generate/info take no inputs at all.
func (d Descriptor) NeedsKey(op Operation) bool {
	return d.KeyKind != KeyNone && (op == Encrypt || op == Decrypt)
}

// NeedsText reports whether op consumes input text.
func (d Descriptor) NeedsText(op Operation) bool {
	return op == Encrypt || op == Decrypt || op == Bruteforce
}

// Describe looks up the static descriptor for c.
func Describe(c Cipher) (Descriptor, error) {
	d, ok := descriptors[c]
	if !ok {
		return Descriptor{}, &InvalidCipherError{Value: c}
	}
	return d, nil
}

// Ciphers returns the descriptors of all ciphers in display order.
func Ciphers() []Descriptor {
	ds := make([]Descriptor, 0, len(cipherOrder))
	for _, c := range cipherOrder {
		ds = append(ds, descriptors[c])
	}
	return ds
}

// Apply runs one operation of one cipher over text with the given key.
// Dispatch is a static switch over the closed cipher set; the operation
// must be in the cipher's supported set and the key kind must match the
// descriptor for operations that consume a key.
func Apply(c Cipher, op Operation, text string, key Key) (string, error) {
	d, err := Describe(c)
	if err != nil {
		return "", err
	}
	if valid, errs := op.IsValid(); !valid {
		return "", errs[0]
	}
	if !d.Supports(op) {
		return "", &UnsupportedOperationError{Cipher: c, Operation: op}
	}
	if d.NeedsKey(op) && key.Kind() != d.KeyKind {
		return "", &KeyKindMismatchError{Cipher: c, Want: d.KeyKind, Got: key.Kind()}
	}

	switch c {
	case Rot:
		return applyRot(op, text, key)
	case Subst:
		return applySubst(op, text, key)
	case Numval:
		return applyNumval(op, text)
	case Atbash:
		return applyAtbash(op, text)
	default:
		// Unreachable: Describe already rejected unknown ciphers.
		return "", &InvalidCipherError{Value: c}
	}
}
