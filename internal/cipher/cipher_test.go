// SPDX-License-Identifier: MPL-2.0

package cipher

import (
	"errors"
	"testing"
)

func TestCipherIsValid(t *testing.T) {
	t.Parallel()

	for _, c := range []Cipher{Rot, Subst, Numval, Atbash} {
		if valid, errs := c.IsValid(); !valid {
			t.Errorf("Cipher(%q).IsValid() = false, errs %v", c, errs)
		}
	}

	valid, errs := Cipher("caesar").IsValid()
	if valid {
		t.Fatal("Cipher(\"caesar\").IsValid() = true, want false")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidCipher) {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestOperationIsValid(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{Encrypt, Decrypt, Bruteforce, Generate, Info} {
		if valid, errs := op.IsValid(); !valid {
			t.Errorf("Operation(%q).IsValid() = false, errs %v", op, errs)
		}
	}

	valid, errs := Operation("crack").IsValid()
	if valid {
		t.Fatal("Operation(\"crack\").IsValid() = true, want false")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidOperation) {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cipher  Cipher
		keyKind KeyKind
		ops     int
	}{
		{cipher: Rot, keyKind: KeyShift, ops: 5},
		{cipher: Subst, keyKind: KeyAlphabet, ops: 4},
		{cipher: Numval, keyKind: KeyNone, ops: 3},
		{cipher: Atbash, keyKind: KeyNone, ops: 3},
	}

	for _, tt := range tests {
		t.Run(tt.cipher.String(), func(t *testing.T) {
			t.Parallel()

			d, err := Describe(tt.cipher)
			if err != nil {
				t.Fatalf("Describe(%q) error: %v", tt.cipher, err)
			}
			if d.KeyKind != tt.keyKind {
				t.Errorf("KeyKind = %v, want %v", d.KeyKind, tt.keyKind)
			}
			if len(d.Operations) != tt.ops {
				t.Errorf("len(Operations) = %d, want %d", len(d.Operations), tt.ops)
			}
			if !d.Supports(Encrypt) || !d.Supports(Decrypt) || !d.Supports(Info) {
				t.Error("every cipher must support encrypt, decrypt, and info")
			}
		})
	}

	if _, err := Describe(Cipher("vigenere")); !errors.Is(err, ErrInvalidCipher) {
		t.Errorf("Describe(unknown) error = %v, want ErrInvalidCipher", err)
	}
}

func TestDescriptorNeedsKey(t *testing.T) {
	t.Parallel()

	rot, _ := Describe(Rot)
	atbash, _ := Describe(Atbash)

	if !rot.NeedsKey(Encrypt) || !rot.NeedsKey(Decrypt) {
		t.Error("rot must need a key for encrypt and decrypt")
	}
	if rot.NeedsKey(Bruteforce) || rot.NeedsKey(Generate) || rot.NeedsKey(Info) {
		t.Error("rot must not need a key outside encrypt/decrypt")
	}
	if atbash.NeedsKey(Encrypt) {
		t.Error("atbash must never need a key")
	}
}

func TestCiphersOrder(t *testing.T) {
	t.Parallel()

	ds := Ciphers()
	want := []Cipher{Rot, Subst, Numval, Atbash}
	if len(ds) != len(want) {
		t.Fatalf("Ciphers() returned %d descriptors, want %d", len(ds), len(want))
	}
	for i, d := range ds {
		if d.Name != want[i] {
			t.Errorf("Ciphers()[%d] = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestApplyRejectsUnsupportedOperation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cipher Cipher
		op     Operation
	}{
		{cipher: Subst, op: Bruteforce},
		{cipher: Numval, op: Generate},
		{cipher: Numval, op: Bruteforce},
		{cipher: Atbash, op: Generate},
		{cipher: Atbash, op: Bruteforce},
	}

	for _, tt := range tests {
		t.Run(tt.cipher.String()+"/"+tt.op.String(), func(t *testing.T) {
			t.Parallel()

			_, err := Apply(tt.cipher, tt.op, "text", NoKey())
			if !errors.Is(err, ErrUnsupportedOperation) {
				t.Errorf("Apply(%q, %q) error = %v, want ErrUnsupportedOperation", tt.cipher, tt.op, err)
			}
		})
	}
}

func TestApplyRejectsWrongKeyKind(t *testing.T) {
	t.Parallel()

	// rot wants a shift key, subst wants an alphabet key.
	if _, err := Apply(Rot, Encrypt, "text", NoKey()); !errors.Is(err, ErrKeyKindMismatch) {
		t.Errorf("Apply(Rot, Encrypt, NoKey) error = %v, want ErrKeyKindMismatch", err)
	}
	if _, err := Apply(Subst, Decrypt, "text", ShiftKey(3)); !errors.Is(err, ErrKeyKindMismatch) {
		t.Errorf("Apply(Subst, Decrypt, ShiftKey) error = %v, want ErrKeyKindMismatch", err)
	}
}

func TestApplyRejectsUnknownCipherAndOperation(t *testing.T) {
	t.Parallel()

	if _, err := Apply(Cipher("vigenere"), Encrypt, "text", NoKey()); !errors.Is(err, ErrInvalidCipher) {
		t.Errorf("unknown cipher error = %v, want ErrInvalidCipher", err)
	}
	if _, err := Apply(Rot, Operation("crack"), "text", NoKey()); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("unknown operation error = %v, want ErrInvalidOperation", err)
	}
}

func TestInfoTextsNonEmpty(t *testing.T) {
	t.Parallel()

	for _, d := range Ciphers() {
		out, err := Apply(d.Name, Info, "", NoKey())
		if err != nil {
			t.Fatalf("Apply(%q, Info) error: %v", d.Name, err)
		}
		if out == "" {
			t.Errorf("cipher %q has empty info text", d.Name)
		}
	}
}
