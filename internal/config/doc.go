// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the cipherly configuration.
//
// The config file is CUE, validated against an embedded #Config schema
// and merged into viper over the built-in defaults. It controls the
// fallback operation used when no operation flag is given and the UI
// behavior (color scheme, verbosity).
package config
