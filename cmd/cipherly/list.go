// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"cipherly/internal/cipher"

	"github.com/spf13/cobra"
)

// listCmd shows the cipher/operation compatibility table.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the supported ciphers and their operations",
	Long: `Show every supported cipher with its operations and the key type it
requires for encrypt and decrypt.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Ciphers"))
	fmt.Fprintln(out)

	for _, d := range cipher.Ciphers() {
		fmt.Fprintf(out, "  %s  %s\n",
			CmdStyle.Render(fmt.Sprintf("--%-7s", d.Name)),
			d.Summary)
		fmt.Fprintf(out, "            %s %s\n",
			SubtitleStyle.Render("operations:"),
			operationList(d.Operations))
		fmt.Fprintf(out, "            %s %s\n",
			SubtitleStyle.Render("key:       "),
			keyKindDescription(d.KeyKind))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("Text is required for encrypt, decrypt, and bruteforce; keys only for"))
	fmt.Fprintln(out, SubtitleStyle.Render("encrypt and decrypt with keyed ciphers."))
	return nil
}

func operationList(ops []cipher.Operation) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return strings.Join(names, ", ")
}

func keyKindDescription(kind cipher.KeyKind) string {
	switch kind {
	case cipher.KeyShift:
		return "integer shift"
	case cipher.KeyAlphabet:
		return "26-letter key alphabet"
	default:
		return "none"
	}
}
