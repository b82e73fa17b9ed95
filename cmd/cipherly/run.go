// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"cipherly/internal/cipher"
	"cipherly/internal/config"
	"cipherly/internal/issue"
	"cipherly/internal/source"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Request captures one cipher invocation as an immutable value built
// once from the parsed flags. It is the contract between the CLI layer
// and the validation/dispatch logic; nothing downstream reads flag
// state directly.
type Request struct {
	// Cipher is the selected cipher.
	Cipher cipher.Cipher
	// Operation is the selected (or configured default) operation.
	Operation cipher.Operation
	// Text is the raw -t/--text argument (literal or file path).
	Text string
	// TextSet reports whether -t/--text was given.
	TextSet bool
	// Key is the raw -k/--key argument (literal or file path).
	Key string
	// KeySet reports whether -k/--key was given.
	KeySet bool
}

func runRoot(cmd *cobra.Command, _ []string) error {
	req := requestFromFlags(cmd)
	log.Debug("dispatching request", "cipher", req.Cipher, "operation", req.Operation)

	out, err := execute(req)
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			renderUsageError(cmd.ErrOrStderr(), usageErr)
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return &ExitError{Code: 2, Err: err}
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// requestFromFlags builds the Request value from the parsed flag state.
// Cobra guarantees exactly one cipher flag is set; when no operation
// flag is set the configured default operation applies.
func requestFromFlags(cmd *cobra.Command) Request {
	var c cipher.Cipher
	switch {
	case useRot:
		c = cipher.Rot
	case useSubst:
		c = cipher.Subst
	case useNumval:
		c = cipher.Numval
	case useAtbash:
		c = cipher.Atbash
	}

	op := appConfig.DefaultOperation
	switch {
	case opEncrypt:
		op = cipher.Encrypt
	case opDecrypt:
		op = cipher.Decrypt
	case opBruteforce:
		op = cipher.Bruteforce
	case opGenerate:
		op = cipher.Generate
	case opInfo:
		op = cipher.Info
	}

	return Request{
		Cipher:    c,
		Operation: op,
		Text:      textArg,
		TextSet:   cmd.Flags().Changed("text"),
		Key:       keyArg,
		KeySet:    cmd.Flags().Changed("key"),
	}
}

// execute validates the request against the cipher's descriptor, loads
// the inputs, and applies the transform. All validation failures are
// UsageErrors carrying a help catalog entry.
func execute(req Request) (string, error) {
	d, err := cipher.Describe(req.Cipher)
	if err != nil {
		return "", err
	}

	if !d.Supports(req.Operation) {
		return "", newUsageError(issue.NewErrorContext().
			WithOperation("validate arguments").
			WithSuggestion("Run 'cipherly list' to see which operations each cipher supports").
			Wrap(&cipher.UnsupportedOperationError{Cipher: req.Cipher, Operation: req.Operation}).
			BuildError(), issue.IncompatibleOperationId)
	}

	text, err := loadText(req, d)
	if err != nil {
		return "", err
	}

	key, err := loadKey(req, d)
	if err != nil {
		return "", err
	}

	out, err := cipher.Apply(req.Cipher, req.Operation, text, key)
	if err != nil {
		if errors.Is(err, cipher.ErrInvalidNumvalToken) {
			return "", newUsageError(issue.NewErrorContext().
				WithOperation("decrypt numeric text").
				WithResource("-t/--text").
				WithSuggestion("A numval ciphertext is whitespace-separated integers between 0 and 26").
				Wrap(err).
				BuildError(), issue.NumvalTokenInvalidId)
		}
		return "", err
	}

	if req.Operation == cipher.Info {
		return renderMarkdown(out), nil
	}
	return out, nil
}

// loadText resolves and validates the text input for the request.
func loadText(req Request, d cipher.Descriptor) (string, error) {
	if !d.NeedsText(req.Operation) {
		if req.TextSet {
			return "", newUsageError(issue.NewErrorContext().
				WithOperation("validate arguments").
				WithResource("-t/--text").
				WithSuggestion(fmt.Sprintf("The %s operation takes no text input; drop the -t/--text flag", req.Operation)).
				Wrap(fmt.Errorf("%s does not take a text input", req.Operation)).
				BuildError(), issue.SuperfluousTextId)
		}
		return "", nil
	}

	if !req.TextSet {
		return "", newUsageError(issue.NewErrorContext().
			WithOperation("read text input").
			WithResource("-t/--text").
			WithSuggestion("Pass a literal string or a file path via -t/--text").
			Wrap(fmt.Errorf("%s requires a text input", req.Operation)).
			BuildError(), issue.MissingTextId)
	}

	text, err := source.Load(req.Text)
	if err != nil {
		return "", err
	}
	log.Debug("loaded text input", "bytes", len(text), "fromFile", text != req.Text)

	if source.IsAllDigits(text) {
		return "", newUsageError(issue.NewErrorContext().
			WithOperation("validate text input").
			WithResource("-t/--text").
			WithSuggestion("To decode numbers back into letters, use --numval -d").
			Wrap(errors.New("text must be a string, not a number")).
			BuildError(), issue.NumericTextId)
	}

	return text, nil
}

// loadKey resolves and parses the key input for the request.
func loadKey(req Request, d cipher.Descriptor) (cipher.Key, error) {
	if !d.NeedsKey(req.Operation) {
		if req.KeySet {
			return cipher.Key{}, newUsageError(issue.NewErrorContext().
				WithOperation("validate arguments").
				WithResource("-k/--key").
				WithSuggestion(fmt.Sprintf("The %s cipher takes no key for %s; drop the -k/--key flag", req.Cipher, req.Operation)).
				Wrap(fmt.Errorf("%s with %s does not take a key", req.Cipher, req.Operation)).
				BuildError(), issue.SuperfluousKeyId)
		}
		return cipher.NoKey(), nil
	}

	if !req.KeySet {
		ctx := issue.NewErrorContext().
			WithOperation("read key input").
			WithResource("-k/--key").
			WithSuggestion("Pass a literal key or a file path via -k/--key").
			Wrap(fmt.Errorf("the %s cipher requires a key to %s", req.Cipher, req.Operation))
		if d.Supports(cipher.Generate) {
			ctx = ctx.WithSuggestion(fmt.Sprintf("Generate one with 'cipherly --%s -g'", req.Cipher))
		}
		return cipher.Key{}, newUsageError(ctx.BuildError(), issue.MissingKeyId)
	}

	raw, err := source.Load(req.Key)
	if err != nil {
		return cipher.Key{}, err
	}

	key, err := cipher.ParseKey(raw, d.KeyKind)
	if err != nil {
		id := issue.ShiftKeyRequiredId
		if errors.Is(err, cipher.ErrInvalidAlphabetKey) {
			id = issue.AlphabetKeyInvalidId
		}
		return cipher.Key{}, newUsageError(issue.NewErrorContext().
			WithOperation("parse key").
			WithResource("-k/--key").
			Wrap(err).
			BuildError(), id)
	}

	log.Debug("parsed key", "kind", key.Kind())
	return key, nil
}

// renderMarkdown renders cipher info text through glamour using the
// configured color scheme. On renderer failure the raw markdown is
// still usable output, so it is returned as-is.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamourStyle(), glamour.WithWordWrap(80))
	if err != nil {
		log.Warn("failed to build markdown renderer", "error", err)
		return md
	}
	rendered, err := r.Render(md)
	if err != nil {
		log.Warn("failed to render markdown", "error", err)
		return md
	}
	return rendered
}

func glamourStyle() glamour.TermRendererOption {
	switch appConfig.UI.ColorScheme {
	case config.ColorSchemeDark:
		return glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		return glamour.WithStandardStyle("light")
	default:
		return glamour.WithAutoStyle()
	}
}

// catalogStyle maps the configured color scheme to a glamour style name
// for help catalog entries.
func catalogStyle() string {
	if appConfig.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
