// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cipherly.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cipherly/internal/config"
	"cipherly/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// Cipher selection flags (mutually exclusive, one required).
	useRot    bool
	useSubst  bool
	useNumval bool
	useAtbash bool

	// Operation selection flags (mutually exclusive). When none is set,
	// the configured default operation applies.
	opEncrypt    bool
	opDecrypt    bool
	opBruteforce bool
	opGenerate   bool
	opInfo       bool

	// Input flags. Values may be literals or file paths.
	textArg string
	keyArg  string

	// appConfig is the loaded configuration, set by initRootConfig.
	appConfig = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cipherly",
		Short: "Classical text ciphers on the command line",
		Long: TitleStyle.Render("cipherly") + SubtitleStyle.Render(" - classical text ciphers on the command line") + `

cipherly applies classical (pre-modern) ciphers to short texts or
files: the rotation cipher, a monoalphabetic substitution cipher, a
letter-to-number mapping, and the Atbash mirror cipher. These are for
puzzles and education, not security.

Select exactly one cipher and one operation. Text and key inputs may
be literal strings or paths to files.

` + SubtitleStyle.Render("Examples:") + `
  cipherly --rot -e -t "attack at dawn" -k 3     Encrypt with a shift of 3
  cipherly --rot -b -t "dwwdfn dw gdzq"          Try all 26 shifts
  cipherly --subst -g                            Generate a substitution key
  cipherly --numval -d -t "8 5 12 12 15"         Decode letter positions
  cipherly --atbash -i                           Describe the Atbash cipher
  cipherly list                                  Show the compatibility table`,
		RunE: runRoot,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cipherly/config.cue)")

	// Cipher selection
	rootCmd.Flags().BoolVar(&useRot, "rot", false, "rotation cipher")
	rootCmd.Flags().BoolVar(&useSubst, "subst", false, "substitution cipher")
	rootCmd.Flags().BoolVar(&useNumval, "numval", false, "numeric value cipher (ABC -> 1 2 3)")
	rootCmd.Flags().BoolVar(&useAtbash, "atbash", false, "Atbash cipher (ABC -> ZYX)")
	rootCmd.MarkFlagsOneRequired("rot", "subst", "numval", "atbash")
	rootCmd.MarkFlagsMutuallyExclusive("rot", "subst", "numval", "atbash")

	// Operation selection
	rootCmd.Flags().BoolVarP(&opEncrypt, "encrypt", "e", false, "encrypt the provided text")
	rootCmd.Flags().BoolVarP(&opDecrypt, "decrypt", "d", false, "decrypt the provided text")
	rootCmd.Flags().BoolVarP(&opBruteforce, "bruteforce", "b", false, "try all keys against the provided text, if compatible")
	rootCmd.Flags().BoolVarP(&opGenerate, "generate", "g", false, "generate a random key, if compatible")
	rootCmd.Flags().BoolVarP(&opInfo, "info", "i", false, "describe the selected cipher")
	rootCmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt", "bruteforce", "generate", "info")

	// Inputs
	rootCmd.Flags().StringVarP(&textArg, "text", "t", "", "string or file to be encrypted or decrypted")
	rootCmd.Flags().StringVarP(&keyArg, "key", "k", "", "string or file used as the key, when required")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil {
		appConfig = cfg
		// Apply verbose from config if not set via flag
		if !verbose {
			verbose = cfg.UI.Verbose
		}
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
