// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"cipherly/internal/issue"

	"github.com/charmbracelet/log"
)

// UsageError is a validation failure detected before any cipher logic
// runs. It carries the help catalog entry for the failure class so the
// CLI layer can render guidance alongside the error message.
// Always create via newUsageError to enforce the Err-must-be-non-nil invariant.
type UsageError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the help catalog ID for this failure class.
	IssueID issue.Id
}

// newUsageError creates a UsageError with a nil-Err panic guard.
// All construction sites must use this instead of struct literals.
func newUsageError(err error, issueID issue.Id) *UsageError {
	if err == nil {
		panic("UsageError: Err must not be nil")
	}
	return &UsageError{
		Err:     err,
		IssueID: issueID,
	}
}

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *UsageError) Unwrap() error { return e.Err }

// renderUsageError renders a UsageError in the CLI layer: the styled
// error message first, then (in verbose mode) the matching help
// catalog entry.
func renderUsageError(stderr io.Writer, usageErr *UsageError) {
	if usageErr == nil {
		return
	}

	msg := usageErr.Err.Error()
	var ae *issue.ActionableError
	if errors.As(usageErr.Err, &ae) {
		msg = ae.Format(verbose)
	}
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+msg)

	if !verbose || usageErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(usageErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(catalogStyle())
		if renderErr != nil {
			log.Warn("failed to render help catalog entry", "issueID", usageErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}
