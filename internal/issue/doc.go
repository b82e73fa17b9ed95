// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types and a rendered help
// catalog for the validation failures cipherly can report.
//
// ActionableError carries structured context (operation, resource,
// suggestions, cause) so the CLI layer can format concise or verbose
// messages. The catalog maps each usage-error class to a markdown help
// entry rendered with glamour.
package issue
