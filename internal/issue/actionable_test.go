// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("read text input").
		WithResource("-t/--text").
		Wrap(cause).
		Build()

	want := "failed to read text input: -t/--text: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is must find the wrapped cause")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("bad token")
	middle := fmt.Errorf("decode failed: %w", inner)
	err := NewErrorContext().
		WithOperation("decrypt numeric text").
		WithSuggestion("Check the input for stray characters").
		WithSuggestion("Tokens must be between 0 and 26").
		Wrap(middle).
		Build()

	concise := err.Format(false)
	if !strings.Contains(concise, "Check the input for stray characters") {
		t.Errorf("Format(false) missing suggestion: %q", concise)
	}
	if strings.Contains(concise, "Error chain:") {
		t.Errorf("Format(false) must not include the error chain: %q", concise)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "bad token") {
		t.Errorf("Format(true) missing inner cause: %q", verbose)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("x").Build(); err != nil {
		t.Errorf("Build without operation = %v, want nil", err)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) must return nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "parse key")
	if err == nil || !errors.Is(err, cause) {
		t.Errorf("WrapWithOperation lost the cause: %v", err)
	}
}
